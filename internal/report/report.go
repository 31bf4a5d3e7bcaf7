// Package report defines the structured meeting report extracted from a
// transcript and the parsing/validation of raw model output into it.
package report

import (
	"fmt"
	"strings"
)

// Priority is an action item's urgency level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultDue is the placeholder used when the model gives no due date.
const DefaultDue = "TBD"

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ActionItem is a single assigned task with owner, due date, and priority.
type ActionItem struct {
	Task     string   `json:"task"`
	Owner    string   `json:"owner"`
	Due      string   `json:"due"`
	Priority Priority `json:"priority"`
}

// Report is the canonical extracted meeting-analysis artifact. Values are
// treated as immutable once parsed; DeliverySent is only ever set by the
// output compiler through WithDeliverySent.
type Report struct {
	Summary      string       `json:"summary"`
	Attendees    []string     `json:"attendees"`
	Decisions    []string     `json:"decisions"`
	ActionItems  []ActionItem `json:"action_items"`
	Blockers     []string     `json:"blockers"`
	FollowUps    []string     `json:"follow_ups"`
	DeliverySent bool         `json:"delivery_sent"`
}

// WithDeliverySent returns a copy of the report with the delivery flag set.
func (r Report) WithDeliverySent(sent bool) Report {
	r.DeliverySent = sent
	return r
}

// normalize applies schema defaults in place: missing optional arrays become
// empty, a missing due date becomes DefaultDue, a missing priority becomes
// medium. Out-of-enum priorities are left alone for validate to reject.
func (r *Report) normalize() {
	if r.Attendees == nil {
		r.Attendees = []string{}
	}
	if r.Decisions == nil {
		r.Decisions = []string{}
	}
	if r.ActionItems == nil {
		r.ActionItems = []ActionItem{}
	}
	if r.Blockers == nil {
		r.Blockers = []string{}
	}
	if r.FollowUps == nil {
		r.FollowUps = []string{}
	}

	for i := range r.ActionItems {
		if r.ActionItems[i].Due == "" {
			r.ActionItems[i].Due = DefaultDue
		}
		if r.ActionItems[i].Priority == "" {
			r.ActionItems[i].Priority = PriorityMedium
		}
	}
}

// validate checks required fields and enum bounds.
func (r *Report) validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return &SchemaError{Field: "summary", Reason: "required and cannot be empty"}
	}

	for i, item := range r.ActionItems {
		if strings.TrimSpace(item.Task) == "" {
			return &SchemaError{Field: fmt.Sprintf("action_items[%d].task", i), Reason: "required and cannot be empty"}
		}
		if strings.TrimSpace(item.Owner) == "" {
			return &SchemaError{Field: fmt.Sprintf("action_items[%d].owner", i), Reason: "required and cannot be empty"}
		}
		if !item.Priority.Valid() {
			return &SchemaError{
				Field:  fmt.Sprintf("action_items[%d].priority", i),
				Reason: fmt.Sprintf("must be high, medium, or low, got %q", item.Priority),
			}
		}
	}

	return nil
}
