// Package tools provides the tool-call surface the pipeline dispatches
// through: a Caller interface and a name-keyed registry of tools.
package tools

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownTool is returned when calling a tool that was never registered
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool is returned when registering a tool name twice
	ErrDuplicateTool = errors.New("tool already registered")
)

// Caller dispatches a named tool call with loosely typed arguments.
type Caller interface {
	Call(ctx context.Context, name string, args map[string]any) (map[string]any, error)
}

// Tool is a single callable capability.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Registry is a thread-safe name-keyed tool collection implementing Caller.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name()]; exists {
		return errors.Wrap(ErrDuplicateTool, t.Name())
	}
	r.tools[t.Name()] = t
	return nil
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Call dispatches to the named tool.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	r.mu.RLock()
	tool, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Wrap(ErrUnknownTool, name)
	}
	return tool.Call(ctx, args)
}
