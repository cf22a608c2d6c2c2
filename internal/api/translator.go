package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"unicode"

	"github.com/phrazzld/median-api/internal/api/shared"
	"github.com/phrazzld/median-api/internal/store"
)

// stderr receives a note when the diagnostic logger itself fails.
var stderr io.Writer = os.Stderr

// translation is the HTTP rendering of one DatabaseError code.
type translation struct {
	status int
	prefix string
}

var databaseErrorTranslations = map[string]translation{
	store.CodeUniqueConstraint: {status: http.StatusConflict, prefix: "Unique constraint violation"},
	store.CodeForeignKey:       {status: http.StatusBadRequest, prefix: "Foreign key violation"},
	store.CodeRecordNotFound:   {status: http.StatusNotFound, prefix: "Record not found"},
	store.CodeInvalidQuery:     {status: http.StatusBadRequest, prefix: "Invalid query parameters"},
	store.CodeConnection:       {status: http.StatusInternalServerError, prefix: "Database connection error"},
}

var fallbackTranslation = translation{
	status: http.StatusInternalServerError,
	prefix: "An unexpected error occurred",
}

// DatabaseErrorTranslator turns a store.DatabaseError into the JSON error
// response sent to the client. It keeps no per-request state and is safe for
// concurrent use.
type DatabaseErrorTranslator struct {
	logger *slog.Logger
}

// NewDatabaseErrorTranslator creates a translator that reports raw errors to
// logger. A nil logger means slog.Default().
func NewDatabaseErrorTranslator(logger *slog.Logger) *DatabaseErrorTranslator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatabaseErrorTranslator{logger: logger.With("component", "database_error_translator")}
}

// Translate computes the response for dbErr without side effects.
// A nil error is treated as an unclassified error with an empty message.
func (t *DatabaseErrorTranslator) Translate(dbErr *store.DatabaseError) shared.ErrorResponse {
	var code, message string
	if dbErr != nil {
		code, message = dbErr.Code, dbErr.Message
	}

	tr, ok := databaseErrorTranslations[code]
	if !ok {
		tr = fallbackTranslation
	}

	return shared.ErrorResponse{
		StatusCode: tr.status,
		Message:    fmt.Sprintf("%s: %s", tr.prefix, flattenMessage(message)),
	}
}

// Respond logs the original error and writes exactly one JSON error response.
func (t *DatabaseErrorTranslator) Respond(w http.ResponseWriter, r *http.Request, dbErr *store.DatabaseError) {
	t.logRaw(r, dbErr)

	resp := t.Translate(dbErr)
	shared.RespondWithJSON(w, r, resp.StatusCode, resp)
}

// logRaw writes the unflattened message to the diagnostic log. A failing
// handler must not stop the response from being written.
func (t *DatabaseErrorTranslator) logRaw(r *http.Request, dbErr *store.DatabaseError) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(stderr, "database error translator: logging failed: %v\n", p)
		}
	}()

	var code, message string
	if dbErr != nil {
		code, message = dbErr.Code, dbErr.Message
	}

	t.logger.ErrorContext(r.Context(), "database error",
		"error", message,
		"code", code,
		"trace_id", shared.GetTraceID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path)
}

// flattenMessage removes line breaks so the message fits on one line.
// A break between two non-space characters becomes a single space; any
// other break is dropped.
func flattenMessage(message string) string {
	if !strings.ContainsAny(message, "\r\n") {
		return message
	}

	var b strings.Builder
	b.Grow(len(message))

	pendingBreak := false
	last := rune(-1)
	for _, r := range message {
		if r == '\n' || r == '\r' {
			pendingBreak = true
			continue
		}
		if pendingBreak {
			if last != -1 && !unicode.IsSpace(last) && !unicode.IsSpace(r) {
				b.WriteByte(' ')
			}
			pendingBreak = false
		}
		b.WriteRune(r)
		last = r
	}
	return b.String()
}
