// Package agent implements the meeting notes pipeline: a linear graph that
// validates a transcript, extracts structured notes with an LLM, renders a
// Slack message, optionally delivers it, and compiles a stable JSON output.
package agent

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/adenhq/meeting-notes-agent/internal/graph"
	"github.com/adenhq/meeting-notes-agent/internal/llm"
	"github.com/adenhq/meeting-notes-agent/internal/slack"
	"github.com/adenhq/meeting-notes-agent/internal/tools"
)

const maxPipelineSteps = 10

// Agent owns the compiled pipeline's collaborators. The model and tool
// caller are injected so tests can run the full graph without network.
type Agent struct {
	cfg    Config
	llm    llms.Model
	tools  tools.Caller
	logger *zap.Logger
}

// New builds an agent from explicit collaborators.
func New(cfg Config, model llms.Model, toolCaller tools.Caller) *Agent {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{cfg: cfg, llm: model, tools: toolCaller, logger: logger}
}

// NewFromConfig wires the default collaborators: a model client for the
// configured provider and a tool registry holding the Slack poster.
func NewFromConfig(ctx context.Context, cfg Config) (*Agent, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	provider, model, _ := cfg.Registry.Resolve(cfg.Provider)
	client, err := llm.New(ctx, provider, model, llm.Credentials{
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		GoogleAPIKey:    cfg.GoogleAPIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating model client")
	}

	registry := tools.NewRegistry()
	slackClient := slack.NewClient(cfg.SlackBotToken, logger,
		slack.WithUsername(cfg.SlackUsername),
		slack.WithIconEmoji(cfg.SlackIconEmoji),
	)
	if err := registry.Register(slack.NewMessageTool(slackClient)); err != nil {
		return nil, errors.Wrap(err, "registering slack tool")
	}

	return New(cfg, client, registry), nil
}

// BuildGraph wires the seven pipeline nodes. Every fallible stage routes
// its failure to the error handler; delivery cannot fail the run, so the
// post node continues unconditionally.
func (a *Agent) BuildGraph() (*graph.Graph[PipelineState], error) {
	g := graph.NewGraph[PipelineState]("meeting-notes-agent")

	nodes := []struct {
		name string
		fn   func(context.Context, PipelineState, graph.Config[PipelineState]) (graph.NodeResponse[PipelineState], error)
	}{
		{NodeValidateInput, a.validateInput},
		{NodeExtract, a.extractMeetingData},
		{NodeParseValidate, a.parseAndValidate},
		{NodeFormatSlack, a.formatSlackMessage},
		{NodePostToSlack, a.postToSlack},
		{NodeCompileOutput, a.compileOutput},
		{NodeHandleError, a.handleError},
	}
	for _, n := range nodes {
		if err := g.AddNode(n.name, n.fn, nil); err != nil {
			return nil, err
		}
	}

	type pair struct{ from, to string }
	for _, e := range []pair{
		{NodeValidateInput, NodeExtract},
		{NodeExtract, NodeParseValidate},
		{NodeParseValidate, NodeFormatSlack},
		{NodeFormatSlack, NodePostToSlack},
	} {
		if err := g.AddEdge(e.from, e.to, nil); err != nil {
			return nil, err
		}
	}
	for _, e := range []pair{
		{NodeValidateInput, NodeHandleError},
		{NodeExtract, NodeHandleError},
		{NodeParseValidate, NodeHandleError},
	} {
		if err := g.AddFailureEdge(e.from, e.to, nil); err != nil {
			return nil, err
		}
	}
	if err := g.AddAlwaysEdge(NodePostToSlack, NodeCompileOutput, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdge(NodeCompileOutput, graph.END, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdge(NodeHandleError, graph.END, nil); err != nil {
		return nil, err
	}
	if err := g.SetEntryPoint(NodeValidateInput); err != nil {
		return nil, err
	}

	return g, nil
}

// Run executes the pipeline once for the given input. The returned Output
// is always well formed: either the compiled report or the error shape.
func (a *Agent) Run(ctx context.Context, in Input) (Output, error) {
	g, err := a.BuildGraph()
	if err != nil {
		return Output{}, errors.Wrap(err, "building pipeline graph")
	}

	compiled, err := g.Compile(
		graph.WithMaxSteps[PipelineState](maxPipelineSteps),
		graph.WithLogger[PipelineState](a.logger),
	)
	if err != nil {
		return Output{}, errors.Wrap(err, "compiling pipeline graph")
	}

	initial := PipelineState{
		Transcript:      in.Transcript,
		MeetingName:     in.MeetingName,
		MeetingDate:     in.MeetingDate,
		DeliveryChannel: in.DeliveryChannel,
		Provider:        in.Provider,
	}

	final, err := compiled.Run(ctx, initial)
	if err != nil {
		return Output{}, errors.Wrap(err, "running pipeline")
	}
	if final.Output == nil {
		return Output{}, errors.New("pipeline finished without producing output")
	}
	return *final.Output, nil
}

// Validate checks the pipeline wiring without executing it.
func (a *Agent) Validate() error {
	g, err := a.BuildGraph()
	if err != nil {
		return err
	}
	return g.Validate()
}

// NodeInfo describes one pipeline node for introspection.
type NodeInfo struct {
	Name string `json:"name"`
}

// EdgeInfo describes one pipeline edge for introspection.
type EdgeInfo struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Condition string `json:"condition"`
}

// Info summarizes the agent's metadata and topology without executing it.
type Info struct {
	Metadata   Metadata   `json:"metadata"`
	EntryPoint string     `json:"entry_point"`
	Nodes      []NodeInfo `json:"nodes"`
	Edges      []EdgeInfo `json:"edges"`
	Terminals  []string   `json:"terminals"`
}

// Describe reports the pipeline topology and agent metadata.
func (a *Agent) Describe() (Info, error) {
	g, err := a.BuildGraph()
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Metadata:   DefaultMetadata(),
		EntryPoint: NodeValidateInput,
		Terminals:  []string{NodeCompileOutput, NodeHandleError},
	}
	for _, name := range g.Nodes() {
		info.Nodes = append(info.Nodes, NodeInfo{Name: name})
	}
	for _, e := range g.Edges() {
		info.Edges = append(info.Edges, EdgeInfo{From: e.From, To: e.To, Condition: string(e.Condition)})
	}
	return info, nil
}
