// Package postgres holds the PostgreSQL-specific pieces of the persistence
// layer: opening the connection pool and translating driver failures from
// pgx and lib/pq into store.DatabaseError values.
package postgres
