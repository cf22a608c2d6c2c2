package store

import (
	"errors"
	"fmt"
)

// Classification codes carried by DatabaseError. The values follow the
// Prisma client's numbering so clients of the original API see the same codes.
const (
	// CodeUniqueConstraint marks a duplicate value for a unique key.
	CodeUniqueConstraint = "P2002"

	// CodeForeignKey marks a reference to a row that does not exist.
	CodeForeignKey = "P2003"

	// CodeInvalidQuery marks a query whose shape or parameters are invalid.
	CodeInvalidQuery = "P2016"

	// CodeConnection marks a failure to reach or talk to the database.
	CodeConnection = "P2018"

	// CodeRecordNotFound marks an update, delete or lookup that matched no row.
	CodeRecordNotFound = "P2025"
)

// DatabaseError is a persistence-layer failure with a short classification
// code and a human-readable message. The message may span several lines.
type DatabaseError struct {
	Code    string // Classification code, e.g. "P2002"
	Message string // Driver or store message, possibly multi-line
	Err     error  // Original driver error, if any
}

// Error implements the error interface for DatabaseError.
func (e *DatabaseError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped driver error to support errors.Is/errors.As.
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError creates a DatabaseError with the given code, message and cause.
func NewDatabaseError(code, message string, err error) *DatabaseError {
	return &DatabaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsDatabaseError extracts the first DatabaseError in err's chain.
func AsDatabaseError(err error) (*DatabaseError, bool) {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr, true
	}
	return nil, false
}

// HasCode reports whether err wraps a DatabaseError with the given code.
func HasCode(err error, code string) bool {
	dbErr, ok := AsDatabaseError(err)
	return ok && dbErr.Code == code
}

// IsNotFoundError reports whether err is a record-not-found DatabaseError.
func IsNotFoundError(err error) bool {
	return HasCode(err, CodeRecordNotFound)
}

// IsDuplicateError reports whether err is a unique-constraint DatabaseError.
func IsDuplicateError(err error) bool {
	return HasCode(err, CodeUniqueConstraint)
}
