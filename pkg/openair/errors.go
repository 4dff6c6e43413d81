package openair

import "github.com/beetlebugorg/openair/internal/converter"

// Errors returned by a conversion. Use errors.As to inspect them; every
// error aborts the conversion and no output is produced.
type (
	// ParseError indicates a malformed coordinate or level.
	ParseError = converter.ParseError

	// SchemaError indicates a record is missing a required field.
	SchemaError = converter.SchemaError

	// ReplacementNotFoundError indicates an LOA replaces a volume id that
	// does not exist.
	ReplacementNotFoundError = converter.ReplacementNotFoundError

	// ConfigurationError indicates an unsupported option value.
	ConfigurationError = converter.ConfigurationError
)
