package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyCompiled is returned when attempting to modify a compiled graph
	ErrAlreadyCompiled = errors.New("graph is already compiled and cannot be modified")

	// ErrDuplicateNode is returned when adding a node that already exists
	ErrDuplicateNode = errors.New("node with this name already exists")

	// ErrNodeNotFound is returned when referencing a non-existent node
	ErrNodeNotFound = errors.New("node not found")

	// ErrNoEntryPoint is returned when validating a graph with no entry point
	ErrNoEntryPoint = errors.New("entry point not set")

	// ErrNoEndPoint is returned when validating a graph with no path to END
	ErrNoEndPoint = errors.New("no path to END from entry point")

	// ErrMaxSteps is returned when execution exceeds the configured step limit
	ErrMaxSteps = errors.New("max steps reached")
)

// ExecutionError represents an error during graph execution
type ExecutionError struct {
	// Node is the name of the node being executed
	Node string
	// Err is the underlying error
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error: node %q: %v", e.Node, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError
func NewExecutionError(node string, err error) error {
	return &ExecutionError{Node: node, Err: err}
}
