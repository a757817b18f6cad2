// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of database connections, query execution, and data
// mapping between domain entities and database records. Uniqueness and
// referential integrity are enforced by the schema itself; constraint
// violations are translated into the shared store error taxonomy rather than
// pre-validated.
package postgres
