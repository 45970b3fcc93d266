package graph

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	build := func(t *testing.T, bidirectional bool) *Graph {
		t.Helper()
		g, err := FromSerialized(SerializedForm{
			Bidirectional: bidirectional,
			Nodes: map[string]SerializedNode{
				"1": {Edges: map[string]any{"2": true, "3": true}},
				"2": {Edges: map[string]any{"1": true}},
				"3": {Edges: map[string]any{"1": true}},
			},
		})
		require.NoError(t, err)
		return g
	}

	t.Run("is equal if nodes and edges are the same", func(t *testing.T) {
		g, other := build(t, true), build(t, true)
		assert.True(t, g.Equal(other))
		assert.True(t, other.Equal(g))
	})

	t.Run("is not equal if there are more nodes", func(t *testing.T) {
		g, other := build(t, true), build(t, true)
		other.AddNode("4", nil)
		assert.False(t, g.Equal(other))
		assert.False(t, other.Equal(g))
	})

	t.Run("is not equal if there are more edges", func(t *testing.T) {
		g, other := build(t, true), build(t, true)
		require.NoError(t, other.AddEdge("3", "2", nil))
		assert.False(t, g.Equal(other))
		assert.False(t, other.Equal(g))
	})

	t.Run("is not equal if an edge value differs", func(t *testing.T) {
		g, other := build(t, false), build(t, false)
		require.NoError(t, other.AddEdge("1", "2", 0))
		assert.False(t, g.Equal(other))
	})

	t.Run("is not equal if a payload differs", func(t *testing.T) {
		g, other := build(t, false), build(t, false)
		g.AddNode("4", map[string]any{"x": 1})
		other.AddNode("4", map[string]any{"x": 2})
		assert.False(t, g.Equal(other))
	})

	t.Run("does not care about options", func(t *testing.T) {
		g, other := build(t, true), build(t, false)
		assert.True(t, g.Equal(other))
		assert.True(t, other.Equal(g))
	})

	t.Run("does not care about edge insertion order", func(t *testing.T) {
		g, other := newTriangleFixture(t), newTriangleFixture(t)
		require.NoError(t, g.AddEdge("1", "2", nil))
		require.NoError(t, g.AddEdge("1", "3", nil))
		require.NoError(t, other.AddEdge("1", "3", nil))
		require.NoError(t, other.AddEdge("1", "2", nil))
		assert.True(t, g.Equal(other))
	})

	t.Run("is equal to itself with NaN values", func(t *testing.T) {
		g := newTriangleFixture(t)
		g.AddNode("4", map[string]any{"weight": math.NaN()})
		require.NoError(t, g.AddEdge("1", "2", math.NaN()))
		assert.True(t, g.Equal(g))

		decoded, err := FromSerialized(g.Serialize())
		require.NoError(t, err)
		assert.True(t, decoded.Equal(g))
	})

	t.Run("handles nil graphs", func(t *testing.T) {
		var missing *Graph
		assert.True(t, missing.Equal(nil))
		assert.False(t, build(t, true).Equal(nil))
	})
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"int and float", 23, 23.0, true},
		{"json number", json.Number("4"), int64(4), true},
		{"different numbers", 1, 2, false},
		{"number and string", 1, "1", false},
		{"nested maps", map[string]any{"x": 0, "tags": []any{1, "a"}}, map[string]any{"x": 0.0, "tags": []any{1.0, "a"}}, true},
		{"map sizes", map[string]any{"x": 0}, map[string]any{"x": 0, "y": 1}, false},
		{"slice lengths", []any{1}, []any{1, 2}, false},
		{"nil payloads", nil, nil, true},
		{"nil and value", nil, false, false},
		{"booleans", true, true, true},
		{"structs", struct{ X int }{1}, struct{ X int }{1}, true},
		{"NaN", math.NaN(), float32(math.NaN()), true},
		{"NaN and number", math.NaN(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, valuesEqual(tt.a, tt.b))
			assert.Equal(t, tt.expected, valuesEqual(tt.b, tt.a))
		})
	}
}
