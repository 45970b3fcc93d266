package cli

import (
	"fmt"
	"math"

	astar "github.com/pdrpinto/astargraph"
	"github.com/pdrpinto/astargraph/graph"
)

func heuristicByName(name string) (astar.HeuristicFunc, error) {
	switch name {
	case "", "none":
		return astar.InfiniteHeuristic, nil
	case "euclidean":
		return euclidean, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want none or euclidean)", name)
	}
}

// euclidean measures the straight-line distance between payloads carrying
// numeric "x" and "y" keys. Payloads without coordinates estimate 0.
func euclidean(from, to any) float64 {
	fromX, fromY, ok := coordinates(from)
	if !ok {
		return 0
	}
	toX, toY, ok := coordinates(to)
	if !ok {
		return 0
	}
	return math.Hypot(fromX-toX, fromY-toY)
}

func coordinates(payload any) (float64, float64, bool) {
	point, ok := payload.(map[string]any)
	if !ok {
		return 0, 0, false
	}
	x, okX := graph.Numeric(point["x"])
	y, okY := graph.Numeric(point["y"])
	return x, y, okX && okY
}
