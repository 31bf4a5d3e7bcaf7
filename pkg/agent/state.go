package agent

import (
	"github.com/adenhq/meeting-notes-agent/internal/report"
	"github.com/adenhq/meeting-notes-agent/internal/slack"
)

// Placeholders used when meeting metadata is absent from the input.
const (
	DefaultMeetingName = "Untitled Meeting"
	DefaultMeetingDate = "Unknown Date"
)

// Input is the invocation payload.
type Input struct {
	Transcript      string `json:"transcript"`
	MeetingName     string `json:"meeting_name,omitempty"`
	MeetingDate     string `json:"meeting_date,omitempty"`
	DeliveryChannel string `json:"delivery_channel,omitempty"`
	Provider        string `json:"provider,omitempty"`
}

// Output is the final invocation result. On success it carries the full
// report plus the delivery flag; on failure it keeps the same shape with
// empty collections, Error set, and the first available error message.
type Output struct {
	Error        bool   `json:"error,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	Summary      string              `json:"summary"`
	Attendees    []string            `json:"attendees"`
	Decisions    []string            `json:"decisions"`
	ActionItems  []report.ActionItem `json:"action_items"`
	Blockers     []string            `json:"blockers"`
	FollowUps    []string            `json:"follow_ups"`
	DeliverySent bool                `json:"delivery_sent"`
}

// DeliveryResult records the outcome of the delivery attempt.
type DeliveryResult struct {
	Sent   bool           `json:"sent"`
	Reason string         `json:"reason,omitempty"`
	Result map[string]any `json:"result,omitempty"`
}

// PipelineState is the per-invocation state carried through the graph. It
// is owned exclusively by one in-flight run and discarded when the run
// ends; nothing in it is shared or persisted beyond optional checkpoints.
type PipelineState struct {
	// Invocation input, normalized in place by the validation node.
	Transcript      string
	MeetingName     string
	MeetingDate     string
	DeliveryChannel string
	Provider        string

	// Resolved model identifier for the extraction call.
	Model string

	// Raw model output from the extraction call.
	RawExtraction string

	// Parsed and validated report.
	Notes *report.Report

	// Rendered delivery payload.
	Payload *slack.Message

	// Delivery attempt outcome.
	Delivery *DeliveryResult

	// Error markers consumed by the error handler; the first available one
	// becomes the output's error message.
	ValidationError string
	ParseError      string

	// Terminal result, set by exactly one of the two terminal nodes.
	Output *Output
}

// Validate implements graph.State.
func (s PipelineState) Validate() error {
	return nil
}

// Merge combines a node's returned state into the accumulated one. Nodes
// return their full updated copy, so non-zero fields win; the error markers
// are taken from the incoming state unconditionally so a node can clear a
// stale marker.
func (s PipelineState) Merge(other PipelineState) PipelineState {
	merged := s

	if other.Transcript != "" {
		merged.Transcript = other.Transcript
	}
	if other.MeetingName != "" {
		merged.MeetingName = other.MeetingName
	}
	if other.MeetingDate != "" {
		merged.MeetingDate = other.MeetingDate
	}
	if other.DeliveryChannel != "" {
		merged.DeliveryChannel = other.DeliveryChannel
	}
	if other.Provider != "" {
		merged.Provider = other.Provider
	}
	if other.Model != "" {
		merged.Model = other.Model
	}
	if other.RawExtraction != "" {
		merged.RawExtraction = other.RawExtraction
	}
	if other.Notes != nil {
		merged.Notes = other.Notes
	}
	if other.Payload != nil {
		merged.Payload = other.Payload
	}
	if other.Delivery != nil {
		merged.Delivery = other.Delivery
	}
	if other.Output != nil {
		merged.Output = other.Output
	}

	merged.ValidationError = other.ValidationError
	merged.ParseError = other.ParseError

	return merged
}
