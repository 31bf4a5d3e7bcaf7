package graph

import (
	"context"
	"fmt"
	"sync"
)

// CheckpointData captures everything needed to resume a run.
type CheckpointData[T GraphState[T]] struct {
	State  T
	Status NodeExecutionStatus
	// CurrentNode is the node a resumed run executes next. A pending or
	// failed node checkpoints itself; a completed one checkpoints its
	// successor.
	CurrentNode string
	Steps       int
}

// Checkpointer handles state persistence for a run
type Checkpointer[T GraphState[T]] interface {
	Save(ctx context.Context, config Config[T], data *CheckpointData[T]) error
	Load(ctx context.Context, config Config[T]) (*CheckpointData[T], error)
}

// CheckpointStore interface defines persistent storage operations
type CheckpointStore[T GraphState[T]] interface {
	Save(ctx context.Context, threadID string, data *CheckpointData[T]) error
	Load(ctx context.Context, threadID string) (*CheckpointData[T], error)
}

// StateCheckpointer manages execution state persistence
type StateCheckpointer[T GraphState[T]] struct {
	store CheckpointStore[T]
	mu    sync.RWMutex
}

func NewStateCheckpointer[T GraphState[T]](store CheckpointStore[T]) *StateCheckpointer[T] {
	return &StateCheckpointer[T]{
		store: store,
	}
}

func (sc *StateCheckpointer[T]) Save(ctx context.Context, config Config[T], data *CheckpointData[T]) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.store.Save(ctx, config.ThreadID, data)
}

func (sc *StateCheckpointer[T]) Load(ctx context.Context, config Config[T]) (*CheckpointData[T], error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.store.Load(ctx, config.ThreadID)
}

// MemoryStore is an in-memory CheckpointStore keyed by thread ID.
type MemoryStore[T GraphState[T]] struct {
	checkpoints map[string]*CheckpointData[T]
	mu          sync.RWMutex
}

func NewMemoryStore[T GraphState[T]]() *MemoryStore[T] {
	return &MemoryStore[T]{
		checkpoints: make(map[string]*CheckpointData[T]),
	}
}

func (m *MemoryStore[T]) Save(_ context.Context, threadID string, data *CheckpointData[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *data
	m.checkpoints[threadID] = &cp
	return nil
}

func (m *MemoryStore[T]) Load(_ context.Context, threadID string) (*CheckpointData[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp, exists := m.checkpoints[threadID]
	if !exists {
		return nil, fmt.Errorf("checkpoint not found: %s", threadID)
	}
	return cp, nil
}

func saveCheckpoint[T GraphState[T]](
	ctx context.Context,
	state T,
	node string,
	status NodeExecutionStatus,
	steps int,
	config Config[T],
) error {
	if config.Checkpointer == nil {
		return nil
	}

	data := &CheckpointData[T]{
		State:       state,
		CurrentNode: node,
		Status:      status,
		Steps:       steps,
	}
	return config.Checkpointer.Save(ctx, config, data)
}

func loadOrInitCheckpoint[T GraphState[T]](
	ctx context.Context,
	entryPoint string,
	initialState T,
	config Config[T],
) CheckpointData[T] {
	data := CheckpointData[T]{
		State:       initialState,
		CurrentNode: entryPoint,
		Status:      StatusReady,
		Steps:       0,
	}

	if config.Checkpointer == nil {
		return data
	}

	// Load the last checkpoint if available
	if checkpoint, err := config.Checkpointer.Load(ctx, config); err == nil {
		data.CurrentNode = checkpoint.CurrentNode
		data.State = checkpoint.State.Merge(initialState)
		data.Steps = checkpoint.Steps
	}

	return data
}
