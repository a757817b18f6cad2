// Package service provides application-level services for languages, users,
// texts, and vocabularies. Services sit between the HTTP handlers and the
// store interfaces: they own cross-entity rules (uniqueness pre-checks,
// credential hashing, full-replace update semantics) and never know which
// persistence backend is active.
package service
