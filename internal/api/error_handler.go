package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/median-api/internal/api/shared"
	"github.com/phrazzld/median-api/internal/store"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler converts errors returned by handlers into JSON error responses.
type ErrorHandler struct {
	translator *DatabaseErrorTranslator
}

// NewErrorHandler creates an ErrorHandler that routes persistence errors to translator.
func NewErrorHandler(translator *DatabaseErrorTranslator) *ErrorHandler {
	if translator == nil {
		translator = NewDatabaseErrorTranslator(nil)
	}
	return &ErrorHandler{translator: translator}
}

// Wrap adapts fn to http.HandlerFunc, handling any error it returns.
func (h *ErrorHandler) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.HandleError(w, r, err)
		}
	}
}

// HandleError writes the response for err. Persistence errors go to the
// database error translator; every other kind is mapped here.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		dbErr          *store.DatabaseError
		validationErrs validator.ValidationErrors
		httpErr        *shared.HTTPError
	)

	switch {
	case errors.As(err, &dbErr):
		h.translator.Respond(w, r, dbErr)
	case errors.As(err, &validationErrs):
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(validationErrs), err)
	case errors.Is(err, shared.ErrMalformedBody):
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request body", err)
	case errors.As(err, &httpErr):
		shared.RespondWithErrorAndLog(w, r, httpErr.Status, httpErr.Message, err)
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", err)
	}
}

// NotFound answers requests for unknown routes.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.HandleError(w, r, shared.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)))
}

// MethodNotAllowed answers requests whose route exists under another method.
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.HandleError(w, r, shared.NewHTTPError(http.StatusMethodNotAllowed, ""))
}
