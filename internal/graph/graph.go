package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Graph represents the base graph structure
type Graph[T GraphState[T]] struct {
	graphID  string
	nodes    map[string]NodeSpec[T]
	edges    []Edge
	branches map[string][]Branch[T]

	entryPoint string
	compiled   bool
}

type GraphOption[T GraphState[T]] func(*Graph[T])

func WithGraphID[T GraphState[T]](id string) GraphOption[T] {
	return func(g *Graph[T]) {
		g.graphID = id
	}
}

// NewGraph creates a new graph instance
func NewGraph[T GraphState[T]](name string, opt ...GraphOption[T]) *Graph[T] {
	graphName := "graph"
	if name != "" {
		graphName = name
	}

	g := Graph[T]{
		graphID:  uuid.New().String(),
		nodes:    make(map[string]NodeSpec[T]),
		branches: make(map[string][]Branch[T]),
	}
	for _, o := range opt {
		o(&g)
	}

	// remove spaces
	graphName = strings.ReplaceAll(graphName, " ", "-")
	// prepend graph name to graphID
	g.graphID = fmt.Sprintf("%s-%s", graphName, g.graphID)
	return &g
}

// ID returns the graph identifier.
func (g *Graph[T]) ID() string {
	return g.graphID
}

// Nodes returns the names of all registered nodes, sorted for stable output.
func (g *Graph[T]) Nodes() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges returns a copy of the registered edges.
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// AddNode adds a new node to the graph
func (g *Graph[T]) AddNode(name string, fn func(context.Context, T, Config[T]) (NodeResponse[T], error), metadata map[string]any) error {
	if g.compiled {
		return ErrAlreadyCompiled
	}

	if _, exists := g.nodes[name]; exists {
		return errors.Wrapf(ErrDuplicateNode, "node %s", name)
	}

	g.nodes[name] = NodeSpec[T]{
		Name:     name,
		Function: fn,
		Metadata: metadata,
	}

	return nil
}

// AddEdge adds an unconditional success edge between two nodes
func (g *Graph[T]) AddEdge(from, to string, metadata map[string]any) error {
	return g.addEdge(from, to, OnSuccess, metadata)
}

// AddFailureEdge adds an edge that is followed when the source node fails.
// The failure is absorbed into the graph and routed to the target node.
func (g *Graph[T]) AddFailureEdge(from, to string, metadata map[string]any) error {
	return g.addEdge(from, to, OnFailure, metadata)
}

// AddAlwaysEdge adds an edge followed regardless of the source node outcome
func (g *Graph[T]) AddAlwaysEdge(from, to string, metadata map[string]any) error {
	return g.addEdge(from, to, Always, metadata)
}

func (g *Graph[T]) addEdge(from, to string, cond EdgeCondition, metadata map[string]any) error {
	if g.compiled {
		return ErrAlreadyCompiled
	}

	if err := g.validateEdgeNodes(from, []string{to}); err != nil {
		return err
	}

	g.edges = append(g.edges, Edge{
		From:      from,
		To:        to,
		Condition: cond,
		Metadata:  metadata,
	})

	return nil
}

// AddBranch adds a conditional branch from a node
func (g *Graph[T]) AddBranch(from string, path func(context.Context, T, Config[T]) string, metadata map[string]any) error {
	if g.compiled {
		return ErrAlreadyCompiled
	}

	// Validate source node
	if _, exists := g.nodes[from]; !exists {
		return errors.Wrapf(ErrNodeNotFound, "source node %s", from)
	}

	g.branches[from] = append(g.branches[from], Branch[T]{
		Path:     path,
		Metadata: metadata,
	})
	return nil
}

// AddConditionalEdge adds a conditional edge to the graph
func (g *Graph[T]) AddConditionalEdge(from string, possibleTargets []string, condition func(context.Context, T, Config[T]) string, metadata map[string]any) error {
	// Validate nodes first
	if err := g.validateEdgeNodes(from, possibleTargets); err != nil {
		return err
	}

	for _, target := range possibleTargets {
		if err := g.AddEdge(from, target, metadata); err != nil {
			return errors.Wrapf(err, "failed to add conditional edge target %s", target)
		}
	}

	// Create branch with validated condition
	return g.AddBranch(from,
		func(ctx context.Context, state T, cfg Config[T]) string {
			next := condition(ctx, state, cfg)
			// Validate target is allowed
			for _, target := range possibleTargets {
				if target == next {
					return next
				}
			}
			return ""
		},
		metadata,
	)
}

// validateEdgeNodes validates source and target nodes
func (g *Graph[T]) validateEdgeNodes(from string, targets []string) error {
	if from == END {
		return errors.New("cannot add edge from END node")
	}

	// Validate source node exists
	if _, exists := g.nodes[from]; !exists {
		return errors.Wrapf(ErrNodeNotFound, "source node %s", from)
	}

	// Validate all possible targets exist
	for _, target := range targets {
		if target == START {
			return errors.New("cannot add edge to START node")
		}
		if target != END {
			if _, exists := g.nodes[target]; !exists {
				return errors.Wrapf(ErrNodeNotFound, "target node %s", target)
			}
		}
	}

	return nil
}

// SetEntryPoint sets the entry point of the graph
func (g *Graph[T]) SetEntryPoint(name string) error {
	if g.compiled {
		return ErrAlreadyCompiled
	}

	if name == END {
		return errors.New("cannot set END as entry point")
	}

	if _, exists := g.nodes[name]; !exists {
		return errors.Wrapf(ErrNodeNotFound, "node %s", name)
	}

	g.entryPoint = name
	return nil
}

// Validate checks the graph is structurally sound: an entry point exists,
// every node is reachable from it, and END is reachable.
func (g *Graph[T]) Validate() error {
	if g.entryPoint == "" {
		return ErrNoEntryPoint
	}

	if _, exists := g.nodes[g.entryPoint]; !exists {
		return errors.Wrapf(ErrNodeNotFound, "entry point node %s", g.entryPoint)
	}

	// Validate all nodes have a path to END
	unvisited := make(map[string]bool)
	for node := range g.nodes {
		unvisited[node] = true
	}

	if !g.hasPathToEnd(g.entryPoint, unvisited) {
		return errors.Wrapf(ErrNoEndPoint, "entry point %s", g.entryPoint)
	}

	// Check for unreachable nodes
	for node := range unvisited {
		return fmt.Errorf("node %s is unreachable from entry point", node)
	}

	return nil
}

func (g *Graph[T]) hasPathToEnd(node string, unvisited map[string]bool) bool {
	if node == END {
		return true
	}

	// If we've already visited this node, check if it's in unvisited
	if !unvisited[node] {
		return false
	}

	delete(unvisited, node)
	hasPath := false

	for _, edge := range g.edges {
		if edge.From == node {
			if edge.To == END {
				hasPath = true
				continue
			}
			if g.hasPathToEnd(edge.To, unvisited) {
				hasPath = true
			}
		}
	}

	return hasPath
}
