package agent

import (
	"fmt"

	"github.com/pkg/errors"
)

// MinTranscriptChars is the minimum trimmed transcript length accepted.
const MinTranscriptChars = 50

// ErrEmptyTranscript is returned when the transcript is absent or blank
var ErrEmptyTranscript = errors.New("transcript field is required and cannot be empty")

// TranscriptTooShortError reports a transcript below the minimum length.
type TranscriptTooShortError struct {
	Length int
}

func (e *TranscriptTooShortError) Error() string {
	return fmt.Sprintf("transcript is too short (%d chars), minimum %d characters required", e.Length, MinTranscriptChars)
}
