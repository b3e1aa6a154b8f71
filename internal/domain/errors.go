package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Classification errors
	ErrMsgUnknownConfigFormat = "unknown config file format"

	// Parse errors
	ErrMsgEmptyInput    = "input is empty"
	ErrMsgInvalidJSON   = "invalid JSON document"
	ErrMsgNoTraderData  = "no trader data found"
	ErrMsgMissingConfig = "missing config document"

	// Output errors
	ErrMsgEncodeOutput  = "failed to encode output document"
	ErrMsgInvalidOutput = "output failed validation"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// ErrUnknownConfigFormat is returned when a submitted JSON document
	// matches none of the known legacy fingerprints.
	ErrUnknownConfigFormat = errors.New(ErrMsgUnknownConfigFormat)

	// ErrEmptyInput is returned when a conversion is invoked on blank text.
	ErrEmptyInput = errors.New(ErrMsgEmptyInput)

	// ErrInvalidJSON is returned when a legacy document is not parseable JSON.
	ErrInvalidJSON = errors.New(ErrMsgInvalidJSON)

	// ErrNoTraderData is returned when the line dialect yields no traders.
	ErrNoTraderData = errors.New(ErrMsgNoTraderData)

	// ErrMissingConfig is returned when assembly is attempted before the
	// three-document triplet is complete.
	ErrMissingConfig = errors.New(ErrMsgMissingConfig)

	// ErrInvalidOutput is returned when an assembled document fails
	// struct validation before emission.
	ErrInvalidOutput = errors.New(ErrMsgInvalidOutput)
)
