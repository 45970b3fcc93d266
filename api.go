package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdrpinto/astargraph/graph"
)

const tracerName = "github.com/pdrpinto/astargraph"

// Graph is the read-only view of a graph that the search needs.
// NodeType must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	HasNode(node NodeType) bool
	Node(node NodeType) (any, error)
	OutgoingEdges(node NodeType) ([]NodeType, error)
	EdgeValue(from NodeType, to NodeType) (any, bool, error)
}

var _ Graph[string] = (*graph.Graph)(nil)

// CostFunc returns the cost of traversing an edge with the given value.
type CostFunc func(edgeValue any) float64

// HeuristicFunc estimates the remaining cost between two nodes from their
// payloads. It must not overestimate if optimal paths are required.
type HeuristicFunc func(fromPayload any, toPayload any) float64

// DefaultCost uses numeric edge values as their own cost and charges 1 for
// anything else.
func DefaultCost(edgeValue any) float64 {
	if cost, ok := graph.Numeric(edgeValue); ok {
		return cost
	}
	return 1
}

// InfiniteHeuristic is the default heuristic. It makes every open node tie, so
// nodes are expanded in the order they were discovered.
func InfiniteHeuristic(any, any) float64 {
	return math.Inf(1)
}

// Result contains the outcome of a search.
// Path excludes the start node. When start and goal are the same node, Found
// is true and Path is empty.
type Result[NodeType comparable] struct {
	Path          []NodeType `json:"path"`
	TotalCost     float64    `json:"total_cost"`
	ExpandedNodes int        `json:"expanded_nodes"`
	Found         bool       `json:"found"`
}

// Options defines parameters for the search.
type Options struct {
	Cost      CostFunc
	Heuristic HeuristicFunc
	Logger    *slog.Logger
	Tracer    trace.Tracer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCost sets the edge cost function.
func WithCost(cost CostFunc) Option {
	return func(options *Options) { options.Cost = cost }
}

// WithHeuristic sets the heuristic used to estimate the remaining cost.
func WithHeuristic(heuristic HeuristicFunc) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithLogger sets the logger that receives search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithTracer sets the tracer used for search spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(options *Options) { options.Tracer = tracer }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Cost == nil {
		searchOptions.Cost = DefaultCost
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = InfiniteHeuristic
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if searchOptions.Tracer == nil {
		searchOptions.Tracer = otel.Tracer(tracerName)
	}
	return searchOptions
}

// PathFinder runs A* searches with a fixed cost function and heuristic.
// A PathFinder holds no search state and can be shared between goroutines, as
// long as the graphs it searches are not mutated concurrently.
type PathFinder[NodeType comparable] struct {
	options Options
}

// New returns a PathFinder. Without options it uses DefaultCost and
// InfiniteHeuristic.
func New[NodeType comparable](options ...Option) *PathFinder[NodeType] {
	return &PathFinder[NodeType]{options: applyOptions(options)}
}

// Search finds the cheapest path from startNode to goalNode.
func (finder *PathFinder[NodeType]) Search(
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
) (Result[NodeType], error) {
	return finder.SearchContext(context.Background(), graph, startNode, goalNode)
}

// SearchContext is Search with a context. The context is checked between node
// expansions.
//
// An unknown start or goal node fails with graph.ErrUnknownNode. When no path
// exists the Result has Found set to false and the error is nil.
func (finder *PathFinder[NodeType]) SearchContext(
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
) (Result[NodeType], error) {
	contextObject, span := finder.options.Tracer.Start(contextObject, "astar.Search")
	defer span.End()

	result, err := finder.search(contextObject, graph, startNode, goalNode)
	span.SetAttributes(
		attribute.Int("astar.expanded_nodes", result.ExpandedNodes),
		attribute.Bool("astar.found", result.Found),
		attribute.Int("astar.path_length", len(result.Path)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		finder.options.Logger.DebugContext(contextObject, "astar search failed",
			slog.Any("from", startNode), slog.Any("to", goalNode), slog.Any("error", err))
		return result, err
	}

	finder.options.Logger.DebugContext(contextObject, "astar search finished",
		slog.Any("from", startNode),
		slog.Any("to", goalNode),
		slog.Bool("found", result.Found),
		slog.Int("expanded", result.ExpandedNodes),
		slog.Float64("cost", result.TotalCost),
	)
	return result, nil
}

func (finder *PathFinder[NodeType]) search(
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
) (Result[NodeType], error) {
	if err := validateEndpoints(graph, startNode, goalNode); err != nil {
		return Result[NodeType]{}, err
	}
	if startNode == goalNode {
		return Result[NodeType]{Path: []NodeType{}, Found: true}, nil
	}

	stepper, err := newStepper(graph, startNode, goalNode, finder.options)
	if err != nil {
		return Result[NodeType]{}, err
	}
	for !stepper.done {
		if err := contextObject.Err(); err != nil {
			return stepper.result(), err
		}
		if err := stepper.advance(); err != nil {
			return stepper.result(), err
		}
	}
	return stepper.result(), nil
}

// Search executes an A* search with a one-off PathFinder.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (Result[NodeType], error) {
	return New[NodeType](options...).SearchContext(contextObject, graph, startNode, goalNode)
}

func validateEndpoints[NodeType comparable](g Graph[NodeType], startNode, goalNode NodeType) error {
	if !g.HasNode(startNode) {
		return fmt.Errorf("start: %w: %v", graph.ErrUnknownNode, startNode)
	}
	if !g.HasNode(goalNode) {
		return fmt.Errorf("goal: %w: %v", graph.ErrUnknownNode, goalNode)
	}
	return nil
}
