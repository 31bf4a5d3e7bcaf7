package report

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var fenceRe = regexp.MustCompile("```(?:json)?\\s*")

// ExtractJSON pulls the JSON payload out of free-form model text: code-fence
// markers are stripped anywhere in the text, then the substring from the
// first '{' to the last '}' is taken as the payload. Prose containing stray
// braces outside the intended object can defeat the heuristic; callers get
// whatever lies between the outermost braces.
func ExtractJSON(raw string) (string, error) {
	clean := fenceRe.ReplaceAllString(raw, "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 {
		return "", errors.Wrapf(ErrNoJSONFound, "raw: %s", snippet(raw))
	}
	return clean[start : end+1], nil
}

// Parse extracts the JSON object embedded in raw model output and validates
// it into a Report with schema defaults applied.
func Parse(raw string) (Report, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return Report{}, err
	}

	// Probe for well-formedness first so a syntax problem is reported as
	// malformed JSON rather than a schema mismatch.
	var probe any
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return Report{}, errors.Wrapf(ErrMalformedJSON, "%v (raw: %s)", err, snippet(payload))
	}

	var r Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Report{}, &SchemaError{
				Field:  typeErr.Field,
				Reason: "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
			}
		}
		return Report{}, errors.Wrapf(ErrMalformedJSON, "%v (raw: %s)", err, snippet(payload))
	}

	// Extraction never decides delivery status; the output compiler does.
	r.DeliverySent = false

	r.normalize()
	if err := r.validate(); err != nil {
		return Report{}, err
	}
	return r, nil
}
