package report

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoJSONFound is returned when the model output contains no JSON object
	ErrNoJSONFound = errors.New("no JSON object found in model output")

	// ErrMalformedJSON is returned when the extracted payload does not parse
	ErrMalformedJSON = errors.New("model output is not valid JSON")
)

// SchemaError reports a field that failed schema validation.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: %s: %s", e.Field, e.Reason)
}

// snippetLen bounds how much offending text is carried in parse errors.
const snippetLen = 200

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	return s[:snippetLen]
}
