package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/phrazzld/median-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// syntaxErrorCode is reported for malformed SQL
	syntaxErrorCode = "42601"

	// undefinedColumnCode is reported when a query names a missing column
	undefinedColumnCode = "42703"

	// undefinedTableCode is reported when a query names a missing table
	undefinedTableCode = "42P01"

	// adminShutdownCode is sent when the server terminates the session
	adminShutdownCode = "57P01"

	// cannotConnectNowCode is sent while the server is starting up or shutting down
	cannotConnectNowCode = "57P03"

	// dataExceptionClass covers invalid input values (bad uuid, overflow, ...)
	dataExceptionClass = "22"

	// connectionExceptionClass covers broken or refused connections
	connectionExceptionClass = "08"
)

// MapError maps a database driver error to a *store.DatabaseError.
// Errors from pgx and lib/pq are classified by SQLSTATE, missing rows become
// store.CodeRecordNotFound and transport failures become store.CodeConnection.
// Errors that are not database errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	if _, ok := store.AsDatabaseError(err); ok {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return store.NewDatabaseError(store.CodeRecordNotFound, "No record found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return store.NewDatabaseError(classifySQLState(pgErr.Code), joinDetail(pgErr.Message, pgErr.Detail), err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return store.NewDatabaseError(classifySQLState(string(pqErr.Code)), joinDetail(pqErr.Message, pqErr.Detail), err)
	}

	if isConnectionFailure(err) {
		return store.NewDatabaseError(store.CodeConnection, err.Error(), err)
	}

	return err
}

// MapConnectionError classifies an error raised while establishing or
// checking a connection. Anything that is not already a more specific
// DatabaseError is reported as store.CodeConnection.
func MapConnectionError(err error) error {
	if err == nil {
		return nil
	}

	mapped := MapError(err)
	if _, ok := store.AsDatabaseError(mapped); ok {
		return mapped
	}
	return store.NewDatabaseError(store.CodeConnection, err.Error(), err)
}

// classifySQLState converts a SQLSTATE into a store classification code.
// Unrecognised states are passed through so they remain visible in logs.
func classifySQLState(code string) string {
	switch {
	case code == uniqueViolationCode:
		return store.CodeUniqueConstraint
	case code == foreignKeyViolationCode:
		return store.CodeForeignKey
	case strings.HasPrefix(code, dataExceptionClass),
		code == syntaxErrorCode,
		code == undefinedColumnCode,
		code == undefinedTableCode:
		return store.CodeInvalidQuery
	case strings.HasPrefix(code, connectionExceptionClass),
		code == adminShutdownCode,
		code == cannotConnectNowCode:
		return store.CodeConnection
	default:
		return code
	}
}

// joinDetail appends the server-provided detail on its own line.
func joinDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + "\n" + detail
}

// isConnectionFailure reports whether err comes from the transport rather
// than from the server's query processing.
func isConnectionFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// sqlState returns the SQLSTATE carried by a pgx or lib/pq error, if any.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	return sqlState(err) == foreignKeyViolationCode
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns a store.CodeRecordNotFound error.
// This is useful for UPDATE and DELETE operations where the absence of affected rows
// typically indicates that the target record doesn't exist.
func CheckRowsAffected(result sql.Result, entityName string) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		message := "Record to update or delete does not exist"
		if entityName != "" {
			message = fmt.Sprintf("%s to update or delete does not exist", entityName)
		}
		return store.NewDatabaseError(store.CodeRecordNotFound, message, nil)
	}

	return nil
}

// PingContext verifies the database is reachable, classifying any failure.
func PingContext(ctx context.Context, db interface{ PingContext(context.Context) error }) error {
	return MapConnectionError(db.PingContext(ctx))
}
