package graph

import "context"

// Mergeable combines a node's returned state into the accumulated state.
type Mergeable[T any] interface {
	Merge(T) T
}

// State represents the base interface for any state type
type State interface {
	// Validate validates the state
	Validate() error
}

// GraphState combines both interfaces for graph states.
type GraphState[T any] interface {
	State
	Mergeable[T]
}

// NodeExecutionStatus represents the current state of node execution
type NodeExecutionStatus string

const (
	StatusCompleted NodeExecutionStatus = "completed"
	StatusPending   NodeExecutionStatus = "pending" // Waiting for user input
	StatusFailed    NodeExecutionStatus = "failed"
	StatusReady     NodeExecutionStatus = "ready" // Ready to execute
)

// NodeResponse encapsulates the execution result
type NodeResponse[T GraphState[T]] struct {
	State  T
	Status NodeExecutionStatus
}

// NodeSpec represents a node's specification
type NodeSpec[T GraphState[T]] struct {
	Name        string
	Function    func(context.Context, T, Config[T]) (NodeResponse[T], error)
	Metadata    map[string]any
	RetryPolicy *RetryPolicy
}

// RetryPolicy defines how a node should handle failures
type RetryPolicy struct {
	MaxAttempts int
	Delay       int // delay in seconds between attempts
}

// EdgeCondition decides whether an edge is followed based on the source
// node's outcome.
type EdgeCondition string

const (
	// OnSuccess edges are followed when the source node completes normally.
	OnSuccess EdgeCondition = "on_success"
	// OnFailure edges are followed when the source node returns an error.
	OnFailure EdgeCondition = "on_failure"
	// Always edges are followed regardless of the source node's outcome.
	Always EdgeCondition = "always"
)

// Edge represents a connection between nodes
type Edge struct {
	From      string
	To        string
	Condition EdgeCondition
	Metadata  map[string]any
}

// Branch represents a conditional branch in the graph
type Branch[T GraphState[T]] struct {
	Path     func(context.Context, T, Config[T]) string
	Metadata map[string]any
}

// Constants for special nodes
const (
	START = "START"
	END   = "END"
)
