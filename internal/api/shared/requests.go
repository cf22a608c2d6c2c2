package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody is returned when a request body is not valid JSON for the target type.
var ErrMalformedBody = errors.New("malformed request body")

// Global validator instance for reuse
var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeOption customizes request decoding.
type DecodeOption func(*json.Decoder)

// Strict rejects bodies containing properties the target struct does not declare.
// Without it unknown properties are silently dropped.
func Strict() DecodeOption {
	return func(d *json.Decoder) {
		d.DisallowUnknownFields()
	}
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}, opts ...DecodeOption) error {
	dec := json.NewDecoder(r.Body)
	for _, opt := range opts {
		opt(dec)
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}

// DecodeAndValidate decodes the request body into v and validates it.
func DecodeAndValidate(r *http.Request, v interface{}, opts ...DecodeOption) error {
	if err := DecodeJSON(r, v, opts...); err != nil {
		return err
	}
	return ValidateRequest(v)
}
