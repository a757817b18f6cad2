// Package mongo provides MongoDB implementations of the store interfaces.
//
// Each store persists one collection of documents whose field names follow
// MongoDB conventions (camelCase, entity IDs stored under _id). The codec in
// documents.go is the single place where that renaming happens; domain
// entities never carry bson tags.
//
// MongoDB enforces no referential integrity. Uniqueness rules are kept in
// parity with the relational backend through unique indexes created by
// EnsureIndexes at startup, but foreign-key style checks (a text's language
// existing, a vocabulary's user existing) are the caller's responsibility
// on this backend.
package mongo
