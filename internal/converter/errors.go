package converter

import (
	"fmt"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// ParseError indicates a coordinate or level string could not be parsed.
type ParseError struct {
	Kind  string // "coordinate", "position" or "level"
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}

// SchemaError indicates a record is missing a required field or is
// structurally unusable.
type SchemaError = yaixm.SchemaError

// ReplacementNotFoundError indicates an LOA replace instruction names a
// volume id that is not present in the airspace being merged.
type ReplacementNotFoundError struct {
	LOA string
	ID  string
}

func (e *ReplacementNotFoundError) Error() string {
	return fmt.Sprintf("LOA %q: replacement target volume %q not found", e.LOA, e.ID)
}

// ConfigurationError indicates an unsupported option value.
type ConfigurationError struct {
	Option string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid option %s=%q: %s", e.Option, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid option %s=%q", e.Option, e.Value)
}
