package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/adenhq/meeting-notes-agent/internal/graph"
	"github.com/adenhq/meeting-notes-agent/internal/report"
	"github.com/adenhq/meeting-notes-agent/internal/slack"
)

// Node names, also used in edge wiring and Info output.
const (
	NodeValidateInput = "validate-input"
	NodeExtract       = "extract-meeting-data"
	NodeParseValidate = "parse-and-validate"
	NodeFormatSlack   = "format-slack-message"
	NodePostToSlack   = "post-to-slack"
	NodeCompileOutput = "compile-final-output"
	NodeHandleError   = "handle-error"
)

func completed(s PipelineState) (graph.NodeResponse[PipelineState], error) {
	return graph.NodeResponse[PipelineState]{State: s, Status: graph.StatusCompleted}, nil
}

func failed(s PipelineState, err error) (graph.NodeResponse[PipelineState], error) {
	return graph.NodeResponse[PipelineState]{State: s, Status: graph.StatusFailed}, err
}

// validateInput trims and checks the transcript, applies metadata
// placeholders, and resolves the provider alias against the registry.
func (a *Agent) validateInput(_ context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	transcript := strings.TrimSpace(s.Transcript)
	if transcript == "" {
		s.ValidationError = "transcript field is required and cannot be empty"
		a.logger.Error("input validation failed: empty transcript")
		return failed(s, ErrEmptyTranscript)
	}

	if len(transcript) < MinTranscriptChars {
		err := &TranscriptTooShortError{Length: len(transcript)}
		s.ValidationError = err.Error()
		a.logger.Error("input validation failed: transcript too short", zap.Int("chars", len(transcript)))
		return failed(s, err)
	}

	if s.MeetingName == "" {
		s.MeetingName = DefaultMeetingName
	}
	if s.MeetingDate == "" {
		s.MeetingDate = DefaultMeetingDate
	}

	provider, model, known := a.cfg.Registry.Resolve(s.Provider)
	if !known {
		a.logger.Warn("unknown provider, falling back to default",
			zap.String("requested", s.Provider),
			zap.String("fallback", provider),
		)
	}

	s.Transcript = transcript
	s.Provider = provider
	s.Model = model
	s.ValidationError = ""

	channel := s.DeliveryChannel
	if channel == "" {
		channel = "none"
	}
	a.logger.Info("input validated",
		zap.Int("chars", len(transcript)),
		zap.String("provider", provider),
		zap.String("channel", channel),
	)
	return completed(s)
}

// extractMeetingData calls the model with the extraction prompt and stores
// the raw reply. The call is made at most once per invocation; retry policy
// belongs to the caller's runtime, not here.
func (a *Agent) extractMeetingData(ctx context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	prompt := BuildExtractionPrompt(s.Transcript, s.MeetingName, s.MeetingDate)

	a.logger.Info("calling model",
		zap.String("provider", s.Provider),
		zap.String("model", s.Model),
	)

	raw, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithModel(s.Model),
		llms.WithMaxTokens(a.cfg.MaxTokens),
		llms.WithTemperature(a.cfg.Temperature),
	)
	if err != nil {
		return failed(s, errors.Wrap(err, "model extraction"))
	}

	s.RawExtraction = raw
	a.logger.Info("model extraction complete", zap.Int("chars", len(raw)))
	return completed(s)
}

// parseAndValidate turns the raw model output into a validated report.
func (a *Agent) parseAndValidate(_ context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	notes, err := report.Parse(s.RawExtraction)
	if err != nil {
		s.ParseError = fmt.Sprintf("output parse/validation failed: %v", err)
		a.logger.Error("output parse/validation failed", zap.Error(err))
		return failed(s, err)
	}

	s.Notes = &notes
	s.ParseError = ""
	a.logger.Info("parsed model output",
		zap.Int("decisions", len(notes.Decisions)),
		zap.Int("action_items", len(notes.ActionItems)),
		zap.Int("blockers", len(notes.Blockers)),
	)
	return completed(s)
}

// formatSlackMessage renders the report into the Block Kit payload.
func (a *Agent) formatSlackMessage(_ context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	msg := slack.BuildMessage(*s.Notes, s.MeetingName, s.MeetingDate)
	s.Payload = &msg
	a.logger.Info("slack payload built", zap.Int("blocks", len(msg.Blocks)))
	return completed(s)
}

// postToSlack attempts delivery through the tool-call interface. A missing
// channel skips delivery; a failing call is recorded and absorbed. This
// node never fails the pipeline.
func (a *Agent) postToSlack(ctx context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	if s.DeliveryChannel == "" {
		s.Delivery = &DeliveryResult{Sent: false, Reason: "no_channel"}
		return completed(s)
	}

	result, err := a.tools.Call(ctx, slack.ToolName, map[string]any{
		"channel": s.DeliveryChannel,
		"blocks":  s.Payload.Blocks,
		"text":    s.Payload.Text,
	})
	if err != nil {
		a.logger.Warn("slack delivery failed (non-fatal)", zap.Error(err))
		s.Delivery = &DeliveryResult{Sent: false, Reason: err.Error()}
		return completed(s)
	}

	s.Delivery = &DeliveryResult{Sent: true, Result: result}
	a.logger.Info("slack message posted", zap.String("channel", s.DeliveryChannel))
	return completed(s)
}

// compileOutput assembles the final output from the parsed report and the
// delivery status. The parsed report itself is never mutated.
func (a *Agent) compileOutput(_ context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	sent := s.Delivery != nil && s.Delivery.Sent
	notes := s.Notes.WithDeliverySent(sent)

	s.Output = &Output{
		Summary:      notes.Summary,
		Attendees:    notes.Attendees,
		Decisions:    notes.Decisions,
		ActionItems:  notes.ActionItems,
		Blockers:     notes.Blockers,
		FollowUps:    notes.FollowUps,
		DeliverySent: notes.DeliverySent,
	}
	a.logger.Info("final output compiled", zap.Bool("delivery_sent", sent))
	return completed(s)
}

// handleError emits the fixed-shape error output. Message precedence:
// input validation error, then parse error, then a generic fallback.
func (a *Agent) handleError(_ context.Context, s PipelineState, _ graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error) {
	msg := s.ValidationError
	if msg == "" {
		msg = s.ParseError
	}
	if msg == "" {
		msg = "Unknown error occurred"
	}

	s.Output = &Output{
		Error:        true,
		ErrorMessage: msg,
		Summary:      "",
		Attendees:    []string{},
		Decisions:    []string{},
		ActionItems:  []report.ActionItem{},
		Blockers:     []string{},
		FollowUps:    []string{},
		DeliverySent: false,
	}
	a.logger.Error("agent completed with error", zap.String("error_message", msg))
	return completed(s)
}
