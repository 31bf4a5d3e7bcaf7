package graph

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxAttempts is the number of executions a node gets when it has no
// retry policy: a single attempt, no retries.
const DefaultMaxAttempts = 1

// CompiledGraph represents a validated and executable graph
type CompiledGraph[T GraphState[T]] struct {
	graph  *Graph[T]
	config Config[T]
}

// Compile validates and compiles the graph for execution
func (g *Graph[T]) Compile(opt ...CompilationOption[T]) (*CompiledGraph[T], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	g.compiled = true

	return &CompiledGraph[T]{
		graph:  g,
		config: NewConfig(g.graphID, opt...),
	}, nil
}

// Run executes the compiled graph from the given initial state. A node error
// is routed through a matching failure edge when one exists; only unrouted
// errors abort the run.
func (cg *CompiledGraph[T]) Run(ctx context.Context, initialState T, opt ...ExecutionOption[T]) (T, error) {
	config := cg.config.Clone()
	for _, o := range opt {
		o(&config)
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(config.Timeout)*time.Second)
		defer cancel()
	}

	// Load or initialize the state and checkpoint
	checkpoint := loadOrInitCheckpoint(ctx, cg.graph.entryPoint, initialState, config)
	currentNode := checkpoint.CurrentNode
	state := checkpoint.State
	steps := checkpoint.Steps

	for currentNode != END {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		if config.MaxSteps > 0 && steps >= config.MaxSteps {
			return state, ErrMaxSteps
		}

		node, exists := cg.graph.nodes[currentNode]
		if !exists {
			return state, NewExecutionError(currentNode, ErrNodeNotFound)
		}

		config.Logger.Debug("executing node",
			zap.String("node", currentNode),
			zap.Int("step", steps),
		)

		resp, nodeErr := executeNode(ctx, node, state, config)

		// Merge the response state even on failure so the node can leave
		// error markers for downstream failure handlers.
		state = state.Merge(resp.State)

		status := resp.Status
		if nodeErr != nil {
			status = StatusFailed
		}

		// If the node is pending, checkpoint the node itself so a resumed
		// run re-enters it, then return the current state.
		if nodeErr == nil && resp.Status == StatusPending {
			if err := saveCheckpoint(ctx, state, currentNode, StatusPending, steps, config); err != nil {
				return state, err
			}
			return state, nil
		}

		nextNode, ok := cg.nextNode(ctx, currentNode, state, nodeErr != nil, config)
		if !ok {
			if err := saveCheckpoint(ctx, state, currentNode, StatusFailed, steps, config); err != nil {
				return state, err
			}
			if nodeErr != nil {
				return state, NewExecutionError(currentNode, nodeErr)
			}
			return state, NewExecutionError(currentNode, ErrNoEndPoint)
		}

		// The checkpoint records where the run resumes, never the node that
		// just ran, so a resumed thread does not re-execute completed work.
		if err := saveCheckpoint(ctx, state, nextNode, status, steps+1, config); err != nil {
			return state, err
		}

		config.Logger.Debug("transition",
			zap.String("from", currentNode),
			zap.String("to", nextNode),
			zap.Bool("failed", nodeErr != nil),
		)

		currentNode = nextNode
		steps++
	}

	return state, nil
}

// nextNode resolves the outgoing transition for a node. Branches are only
// consulted on success; edges are matched against the node outcome.
func (cg *CompiledGraph[T]) nextNode(ctx context.Context, currentNode string, state T, failed bool, config Config[T]) (string, bool) {
	if !failed {
		for _, branch := range cg.graph.branches[currentNode] {
			if target := branch.Path(ctx, state, config); target != "" {
				return target, true
			}
		}
	}

	for _, edge := range cg.graph.edges {
		if edge.From != currentNode {
			continue
		}
		switch edge.Condition {
		case Always:
			return edge.To, true
		case OnFailure:
			if failed {
				return edge.To, true
			}
		default:
			if !failed {
				return edge.To, true
			}
		}
	}

	return "", false
}

func executeNode[T GraphState[T]](
	ctx context.Context,
	node NodeSpec[T],
	state T,
	config Config[T],
) (NodeResponse[T], error) {
	maxAttempts := DefaultMaxAttempts
	if node.RetryPolicy != nil {
		maxAttempts = node.RetryPolicy.MaxAttempts
	}

	var lastResp NodeResponse[T]
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && node.RetryPolicy != nil {
			time.Sleep(time.Duration(node.RetryPolicy.Delay) * time.Second)
		}

		resp, err := node.Function(ctx, state, config)
		if err == nil {
			return resp, nil
		}
		lastResp = resp
		lastErr = err
	}
	return lastResp, lastErr
}
