// Package api handles incoming HTTP requests and response formatting.
// It owns the translation of persistence errors into HTTP error responses,
// so handlers can return errors and leave status selection to one place.
package api
