package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adenhq/meeting-notes-agent/internal/report"
)

func TestPipelineStateMerge(t *testing.T) {
	base := PipelineState{
		Transcript:      "original transcript",
		MeetingName:     "Sync",
		ValidationError: "stale validation error",
	}
	update := PipelineState{
		RawExtraction: "{}",
		Notes:         &report.Report{Summary: "s"},
	}

	merged := base.Merge(update)

	assert.Equal(t, "original transcript", merged.Transcript)
	assert.Equal(t, "Sync", merged.MeetingName)
	assert.Equal(t, "{}", merged.RawExtraction)
	assert.NotNil(t, merged.Notes)
	assert.Empty(t, merged.ValidationError, "error markers follow the newer state")
}

func TestPipelineStateMergeKeepsNewErrorMarkers(t *testing.T) {
	base := PipelineState{Transcript: "t"}
	update := PipelineState{ParseError: "output parse/validation failed: boom"}

	merged := base.Merge(update)
	assert.Equal(t, "output parse/validation failed: boom", merged.ParseError)
}
