package graph

import (
	"encoding/json"
	"math"
	"reflect"
)

// Equal reports whether both graphs hold the same node ids, payloads, edge
// targets and edge values. The bidirectional flag and edge insertion order are
// ignored.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for id, record := range g.nodes {
		otherRecord, exists := other.nodes[id]
		if !exists {
			return false
		}
		if !valuesEqual(record.data, otherRecord.data) {
			return false
		}
		if len(record.edges) != len(otherRecord.edges) {
			return false
		}
		for to, value := range record.edges {
			otherValue, exists := otherRecord.edges[to]
			if !exists || !valuesEqual(value, otherValue) {
				return false
			}
		}
	}
	return true
}

// valuesEqual compares payloads and edge values. Numbers compare by value
// across Go numeric types so that a graph decoded from JSON or YAML equals the
// one it was encoded from. NaN equals NaN.
func valuesEqual(a, b any) bool {
	if aNumber, ok := Numeric(a); ok {
		bNumber, ok := Numeric(b)
		if !ok {
			return false
		}
		return aNumber == bNumber || (math.IsNaN(aNumber) && math.IsNaN(bNumber))
	}

	switch aTyped := a.(type) {
	case map[string]any:
		bTyped, ok := b.(map[string]any)
		if !ok || len(aTyped) != len(bTyped) {
			return false
		}
		for key, aValue := range aTyped {
			bValue, exists := bTyped[key]
			if !exists || !valuesEqual(aValue, bValue) {
				return false
			}
		}
		return true
	case []any:
		bTyped, ok := b.([]any)
		if !ok || len(aTyped) != len(bTyped) {
			return false
		}
		for i := range aTyped {
			if !valuesEqual(aTyped[i], bTyped[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Numeric converts any Go numeric value, or a json.Number, to float64. The
// boolean is false for non-numeric values.
func Numeric(value any) (float64, bool) {
	switch number := value.(type) {
	case int:
		return float64(number), true
	case int8:
		return float64(number), true
	case int16:
		return float64(number), true
	case int32:
		return float64(number), true
	case int64:
		return float64(number), true
	case uint:
		return float64(number), true
	case uint8:
		return float64(number), true
	case uint16:
		return float64(number), true
	case uint32:
		return float64(number), true
	case uint64:
		return float64(number), true
	case float32:
		return float64(number), true
	case float64:
		return number, true
	case json.Number:
		parsed, err := number.Float64()
		return parsed, err == nil
	}
	return 0, false
}
