package handler

import (
	"errors"
	"net/http"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest   = "Invalid request body"
	ErrMsgNoDocuments      = "At least one document is required"
	ErrMsgTooManyDocuments = "At most three documents are accepted per request"

	// User-facing conversion error messages
	ErrMsgEmptyConfigError   = "Config file is empty"
	ErrMsgNoTraderDataError  = "No trader data found in config"
	ErrMsgInvalidJSONError   = "Document is not valid JSON"
	ErrMsgUnknownFormatError = "Unrecognized config file format"
	ErrMsgMissingConfigError = "Config set is incomplete"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidOutputError = "Generated config failed validation"
)

// mapConversionError maps domain errors to HTTP status codes and
// user-facing messages.
func mapConversionError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return http.StatusBadRequest, ErrMsgEmptyConfigError
	case errors.Is(err, domain.ErrNoTraderData):
		return http.StatusBadRequest, ErrMsgNoTraderDataError
	case errors.Is(err, domain.ErrInvalidJSON):
		return http.StatusBadRequest, ErrMsgInvalidJSONError
	case errors.Is(err, domain.ErrUnknownConfigFormat):
		return http.StatusBadRequest, ErrMsgUnknownFormatError
	case errors.Is(err, domain.ErrMissingConfig):
		return http.StatusUnprocessableEntity, ErrMsgMissingConfigError
	case errors.Is(err, domain.ErrInvalidOutput):
		return http.StatusInternalServerError, ErrMsgInvalidOutputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
