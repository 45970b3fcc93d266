package graph

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"

	"gopkg.in/yaml.v3"
)

// SerializedForm is the exchange representation of a Graph.
type SerializedForm struct {
	Bidirectional bool                      `json:"bidirectional" yaml:"bidirectional"`
	Nodes         map[string]SerializedNode `json:"nodes" yaml:"nodes"`
}

// SerializedNode is one node of a SerializedForm.
type SerializedNode struct {
	Edges map[string]any `json:"edges" yaml:"edges"`
	Data  any            `json:"data,omitempty" yaml:"data,omitempty"`
}

// Serialize returns the graph as a SerializedForm. Edge maps are copied;
// payloads are shared.
func (g *Graph) Serialize() SerializedForm {
	form := SerializedForm{
		Bidirectional: g.bidirectional,
		Nodes:         make(map[string]SerializedNode, len(g.nodes)),
	}
	for id, record := range g.nodes {
		form.Nodes[id] = SerializedNode{
			Edges: maps.Clone(record.edges),
			Data:  record.data,
		}
	}
	return form
}

// FromSerialized builds a Graph from form. The edge maps of form are copied,
// so later mutation of the graph never reaches form. Nodes and edges are
// inserted in ascending id order.
//
// A bidirectional form must already be symmetric: every edge needs a target
// node holding the reverse edge with an equal value. Anything else fails with
// ErrMalformed.
func FromSerialized(form SerializedForm) (*Graph, error) {
	if form.Nodes == nil {
		return nil, fmt.Errorf("%w: missing nodes", ErrMalformed)
	}

	g := New(WithBidirectional(form.Bidirectional))
	ids := make([]string, 0, len(form.Nodes))
	for id := range form.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		serializedNode := form.Nodes[id]
		if serializedNode.Edges == nil {
			return nil, fmt.Errorf("%w: node %q has no edges mapping", ErrMalformed, id)
		}
		record := newNodeRecord(serializedNode.Data)
		targets := make([]string, 0, len(serializedNode.Edges))
		for to := range serializedNode.Edges {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		for _, to := range targets {
			record.setEdge(to, serializedNode.Edges[to])
		}
		g.nodes[id] = record
	}
	if g.bidirectional {
		if err := g.checkMirrored(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) checkMirrored() error {
	for _, from := range g.NodeIDs() {
		record := g.nodes[from]
		for _, to := range record.order {
			target, exists := g.nodes[to]
			if !exists {
				return fmt.Errorf("%w: edge %q -> %q points at a missing node", ErrMalformed, from, to)
			}
			reverse, exists := target.edges[from]
			if !exists {
				return fmt.Errorf("%w: edge %q -> %q has no reverse edge", ErrMalformed, from, to)
			}
			if !valuesEqual(record.edges[to], reverse) {
				return fmt.Errorf("%w: edges %q <-> %q disagree on their value", ErrMalformed, from, to)
			}
		}
	}
	return nil
}

// MarshalJSON encodes the graph's SerializedForm.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Serialize())
}

// UnmarshalJSON replaces g with the graph decoded from data.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var form SerializedForm
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	decoded, err := FromSerialized(form)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

// MarshalYAML encodes the graph's SerializedForm.
func (g *Graph) MarshalYAML() (any, error) {
	return g.Serialize(), nil
}

// UnmarshalYAML replaces g with the graph decoded from value.
func (g *Graph) UnmarshalYAML(value *yaml.Node) error {
	var form SerializedForm
	if err := value.Decode(&form); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	decoded, err := FromSerialized(form)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}
