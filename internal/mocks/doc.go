// Package mocks provides hand-written mock implementations of the store
// interfaces for testing. Each mock keeps entities in memory and behaves
// like a real backend (sentinel errors, stable ID ordering, idempotent
// deletes); individual methods can be overridden through the *Fn fields.
package mocks
