package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore[CounterState]()
	ctx := context.Background()

	data := &CheckpointData[CounterState]{
		State:       CounterState{Value: 42},
		CurrentNode: "add1",
		Status:      StatusCompleted,
		Steps:       3,
	}
	require.NoError(t, store.Save(ctx, "thread-1", data))

	loaded, err := store.Load(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.State.Value)
	assert.Equal(t, "add1", loaded.CurrentNode)
	assert.Equal(t, 3, loaded.Steps)
}

func TestMemoryStoreMissingThread(t *testing.T) {
	store := NewMemoryStore[CounterState]()

	_, err := store.Load(context.Background(), "nope")
	require.Error(t, err)
}

func TestCheckpointerSavesEveryStep(t *testing.T) {
	g := NewGraph[CounterState]("checkpointed")

	require.NoError(t, g.AddNode("add1", visit("add1", 1), nil))
	require.NoError(t, g.AddNode("add2", visit("add2", 2), nil))
	require.NoError(t, g.AddEdge("add1", "add2", nil))
	require.NoError(t, g.AddEdge("add2", END, nil))
	require.NoError(t, g.SetEntryPoint("add1"))

	store := NewMemoryStore[CounterState]()
	compiled, err := g.Compile(WithCheckpointStore[CounterState](store))
	require.NoError(t, err)

	_, err = compiled.Run(context.Background(), CounterState{}, WithThreadID[CounterState]("t-1"))
	require.NoError(t, err)

	cp, err := store.Load(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, END, cp.CurrentNode)
	assert.Equal(t, 3, cp.State.Value)
	assert.Equal(t, 2, cp.Steps)
}

func TestResumeSkipsCompletedNodes(t *testing.T) {
	g := NewGraph[CounterState]("resumable")

	require.NoError(t, g.AddNode("add1", visit("add1", 1), nil))
	require.NoError(t, g.AddNode("add2", visit("add2", 2), nil))
	require.NoError(t, g.AddEdge("add1", "add2", nil))
	require.NoError(t, g.AddEdge("add2", END, nil))
	require.NoError(t, g.SetEntryPoint("add1"))

	store := NewMemoryStore[CounterState]()
	require.NoError(t, store.Save(context.Background(), "t-resume", &CheckpointData[CounterState]{
		State:       CounterState{Value: 1, Visited: []string{"add1"}},
		CurrentNode: "add2",
		Status:      StatusCompleted,
		Steps:       1,
	}))

	compiled, err := g.Compile(WithCheckpointStore[CounterState](store))
	require.NoError(t, err)

	result, err := compiled.Run(context.Background(), CounterState{Value: 1}, WithThreadID[CounterState]("t-resume"))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Value)
	assert.Equal(t, []string{"add1", "add2"}, result.Visited, "the first node must not run again")
}

func TestResumeFinishedRunIsIdle(t *testing.T) {
	g := NewGraph[CounterState]("finished")

	require.NoError(t, g.AddNode("add1", visit("add1", 1), nil))
	require.NoError(t, g.AddEdge("add1", END, nil))
	require.NoError(t, g.SetEntryPoint("add1"))

	store := NewMemoryStore[CounterState]()
	compiled, err := g.Compile(WithCheckpointStore[CounterState](store))
	require.NoError(t, err)

	first, err := compiled.Run(context.Background(), CounterState{}, WithThreadID[CounterState]("t-done"))
	require.NoError(t, err)
	assert.Equal(t, []string{"add1"}, first.Visited)

	second, err := compiled.Run(context.Background(), CounterState{}, WithThreadID[CounterState]("t-done"))
	require.NoError(t, err)
	assert.Equal(t, []string{"add1"}, second.Visited, "terminal node must not run twice")
}
