// Package store defines the error model shared by every persistence adapter.
// Driver-specific packages translate their failures into DatabaseError so the
// HTTP layer can classify them without knowing which database is in use.
package store
