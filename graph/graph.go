// Package graph provides an in-memory directed graph whose nodes carry an
// optional payload and whose edges carry an arbitrary value.
//
// A Graph can be created bidirectional, in which case every edge mutation is
// mirrored so that a→b and b→a always hold the same value.
//
// A Graph is not safe for concurrent mutation. Concurrent readers are fine as
// long as nobody mutates the graph at the same time.
package graph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrUnknownNode is returned when an operation references a node id that
	// is not present in the graph.
	ErrUnknownNode = errors.New("unknown node")
	// ErrMalformed is returned when a serialized graph cannot be decoded.
	ErrMalformed = errors.New("malformed serialized graph")
)

// DefaultEdgeValue is stored when AddEdge is given a nil value.
const DefaultEdgeValue = true

// Options defines construction parameters for a Graph.
type Options struct {
	Bidirectional bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithBidirectional makes every edge mutation apply to both directions.
func WithBidirectional(bidirectional bool) Option {
	return func(options *Options) { options.Bidirectional = bidirectional }
}

type nodeRecord struct {
	data  any
	edges map[string]any
	// order keeps edge targets in insertion order so OutgoingEdges is stable.
	order []string
}

func newNodeRecord(data any) *nodeRecord {
	return &nodeRecord{data: data, edges: make(map[string]any)}
}

func (record *nodeRecord) setEdge(to string, value any) {
	if _, exists := record.edges[to]; !exists {
		record.order = append(record.order, to)
	}
	record.edges[to] = value
}

func (record *nodeRecord) deleteEdge(to string) {
	if _, exists := record.edges[to]; !exists {
		return
	}
	delete(record.edges, to)
	if i := slices.Index(record.order, to); i >= 0 {
		record.order = slices.Delete(record.order, i, i+1)
	}
}

// Graph stores nodes keyed by id, each with its outgoing edge map.
type Graph struct {
	bidirectional bool
	nodes         map[string]*nodeRecord
}

// New returns an empty graph. Graphs are directed unless WithBidirectional(true)
// is given.
func New(options ...Option) *Graph {
	graphOptions := Options{}
	for _, option := range options {
		option(&graphOptions)
	}
	return &Graph{
		bidirectional: graphOptions.Bidirectional,
		nodes:         make(map[string]*nodeRecord),
	}
}

// Bidirectional reports whether edge mutations are mirrored.
func (g *Graph) Bidirectional() bool { return g.bidirectional }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of stored directed edges. A mirrored pair in a
// bidirectional graph counts twice, a self-loop once.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, record := range g.nodes {
		count += len(record.edges)
	}
	return count
}

// NodeIDs returns all node ids in ascending order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddNode inserts a node, replacing any existing node with the same id.
// Replacing a node discards its outgoing edges. A nil data means the node has
// no payload.
func (g *Graph) AddNode(id string, data any) {
	g.nodes[id] = newNodeRecord(data)
}

// AddEdge sets the edge from → to to value, overwriting any previous value.
// A nil value stores DefaultEdgeValue. The from node must exist; in a
// bidirectional graph the to node must exist as well and the mirror edge is
// written with the same value.
func (g *Graph) AddEdge(from, to string, value any) error {
	if value == nil {
		value = DefaultEdgeValue
	}
	fromRecord, err := g.lookup(from)
	if err != nil {
		return err
	}
	if !g.bidirectional {
		fromRecord.setEdge(to, value)
		return nil
	}

	toRecord, err := g.lookup(to)
	if err != nil {
		return err
	}
	fromRecord.setEdge(to, value)
	toRecord.setEdge(from, value)
	return nil
}

// RemoveEdge deletes the edge from → to, and its mirror in a bidirectional
// graph. Removing an edge that does not exist is a no-op.
func (g *Graph) RemoveEdge(from, to string) error {
	fromRecord, err := g.lookup(from)
	if err != nil {
		return err
	}
	fromRecord.deleteEdge(to)
	if g.bidirectional {
		if toRecord, exists := g.nodes[to]; exists {
			toRecord.deleteEdge(from)
		}
	}
	return nil
}

// RemoveNode deletes the node and every edge pointing at it, regardless of
// direction.
func (g *Graph) RemoveNode(id string) error {
	if _, err := g.lookup(id); err != nil {
		return err
	}
	delete(g.nodes, id)
	for _, record := range g.nodes {
		record.deleteEdge(id)
	}
	return nil
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, exists := g.nodes[id]
	return exists
}

// Node returns the payload of id. Nodes added without a payload return nil.
func (g *Graph) Node(id string) (any, error) {
	record, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return record.data, nil
}

// HasEdge reports whether the edge from → to exists, whatever its value.
func (g *Graph) HasEdge(from, to string) bool {
	record, exists := g.nodes[from]
	if !exists {
		return false
	}
	_, exists = record.edges[to]
	return exists
}

// EdgeValue returns the value stored on from → to. The boolean is false when
// the edge does not exist; zero values such as 0 or false are still reported
// as present.
func (g *Graph) EdgeValue(from, to string) (any, bool, error) {
	record, err := g.lookup(from)
	if err != nil {
		return nil, false, err
	}
	value, exists := record.edges[to]
	return value, exists, nil
}

// OutgoingEdges returns the targets of id's edges in the order they were first
// added. The returned slice is a copy.
func (g *Graph) OutgoingEdges(id string) ([]string, error) {
	record, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(record.order), nil
}

// HasOutgoingEdges reports whether id has at least one outgoing edge.
func (g *Graph) HasOutgoingEdges(id string) (bool, error) {
	record, err := g.lookup(id)
	if err != nil {
		return false, err
	}
	return len(record.edges) > 0, nil
}

// HasIncomingEdges reports whether any other node has an edge to id. It scans
// every node, so it costs O(V).
func (g *Graph) HasIncomingEdges(id string) (bool, error) {
	if _, err := g.lookup(id); err != nil {
		return false, err
	}
	for otherID, record := range g.nodes {
		if otherID == id {
			continue
		}
		if _, exists := record.edges[id]; exists {
			return true, nil
		}
	}
	return false, nil
}

// HasEdges reports whether id has any outgoing or incoming edge.
func (g *Graph) HasEdges(id string) (bool, error) {
	outgoing, err := g.HasOutgoingEdges(id)
	if err != nil || outgoing {
		return outgoing, err
	}
	return g.HasIncomingEdges(id)
}

func (g *Graph) lookup(id string) (*nodeRecord, error) {
	record, exists := g.nodes[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return record, nil
}
