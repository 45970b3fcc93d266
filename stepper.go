package astar

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/pdrpinto/astargraph/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs a search one node expansion at a time.
// A Stepper is not safe for concurrent use.
type Stepper[NodeType comparable] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	goalData  any
	cost      CostFunc
	heuristic HeuristicFunc

	openSet   *frontier[NodeType]
	closedSet map[NodeType]bool
	cameFrom  map[NodeType]NodeType
	gScore    map[NodeType]float64

	current   NodeType
	path      []NodeType
	stepCount int
	done      bool
	found     bool
}

// NewStepper creates a stepper using the same expansion logic as Search.
// Unknown start or goal nodes fail with graph.ErrUnknownNode.
func NewStepper[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (*Stepper[NodeType], error) {
	if err := validateEndpoints(graph, startNode, goalNode); err != nil {
		return nil, err
	}
	return newStepper(graph, startNode, goalNode, applyOptions(options))
}

func newStepper[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options Options,
) (*Stepper[NodeType], error) {
	goalData, err := graph.Node(goalNode)
	if err != nil {
		return nil, err
	}
	startData, err := graph.Node(startNode)
	if err != nil {
		return nil, err
	}

	s := &Stepper[NodeType]{
		graph:     graph,
		start:     startNode,
		goal:      goalNode,
		goalData:  goalData,
		cost:      options.Cost,
		heuristic: options.Heuristic,
		openSet:   newFrontier[NodeType](),
		closedSet: make(map[NodeType]bool),
		cameFrom:  make(map[NodeType]NodeType),
		gScore:    map[NodeType]float64{startNode: 0},
	}
	s.openSet.discover(startNode)
	s.openSet.setScore(startNode, s.heuristic(startData, goalData))
	return s, nil
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if err := s.advance(); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// Result returns the outcome so far. It is final once a snapshot reports Done.
func (s *Stepper[NodeType]) Result() Result[NodeType] {
	return s.result()
}

// advance expands the open node with the lowest f score; ties go to the node
// that entered the open set first.
func (s *Stepper[NodeType]) advance() error {
	if s.done {
		return nil
	}
	current, ok := s.popReached()
	if !ok {
		s.done = true
		return nil
	}

	s.stepCount++
	s.current = current

	if current == s.goal {
		s.done = true
		s.found = true
		s.path = internal.ReconstructPath(s.cameFrom, current, s.start)
		return nil
	}
	s.closedSet[current] = true

	neighbors, err := s.graph.OutgoingEdges(current)
	if err != nil {
		s.done = true
		return fmt.Errorf("expanding %v: %w", current, err)
	}
	for _, neighbor := range neighbors {
		if s.closedSet[neighbor] {
			continue
		}
		// Edges may point at ids without a node record; those lead nowhere.
		if !s.graph.HasNode(neighbor) {
			continue
		}
		s.openSet.discover(neighbor)

		edgeValue, _, err := s.graph.EdgeValue(current, neighbor)
		if err != nil {
			s.done = true
			return fmt.Errorf("expanding %v: %w", current, err)
		}
		tentativeG := s.gScore[current] + s.cost(edgeValue)
		if tentativeG >= s.score(neighbor) {
			continue
		}

		neighborData, err := s.graph.Node(neighbor)
		if err != nil {
			s.done = true
			return fmt.Errorf("expanding %v: %w", current, err)
		}
		s.cameFrom[neighbor] = current
		s.gScore[neighbor] = tentativeG
		s.openSet.setScore(neighbor, tentativeG+s.heuristic(neighborData, s.goalData))
	}
	return nil
}

// popReached pops open nodes until one has a g score. Nodes that were
// discovered but never relaxed (every edge into them cost +Inf) are dropped
// without closing them, so a finite route found later can still open them.
func (s *Stepper[NodeType]) popReached() (NodeType, bool) {
	for s.openSet.Len() > 0 {
		node := s.openSet.pop()
		if _, reached := s.gScore[node]; reached {
			return node, true
		}
	}
	var zero NodeType
	return zero, false
}

func (s *Stepper[NodeType]) score(node NodeType) float64 {
	if g, exists := s.gScore[node]; exists {
		return g
	}
	return math.Inf(1)
}

func (s *Stepper[NodeType]) result() Result[NodeType] {
	result := Result[NodeType]{ExpandedNodes: s.stepCount, Found: s.found}
	if s.found {
		result.Path = s.path
		result.TotalCost = s.score(s.goal)
	}
	return result
}

func (s *Stepper[NodeType]) snapshot() StepSnapshot[NodeType] {
	return StepSnapshot[NodeType]{
		Current:   s.current,
		Open:      s.openSet.members(),
		Closed:    maps.Clone(s.closedSet),
		CameFrom:  maps.Clone(s.cameFrom),
		Done:      s.done,
		Found:     s.found,
		Path:      slices.Clone(s.path),
		StepIndex: s.stepCount,
	}
}
