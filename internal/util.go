package internal

import "slices"

// ReconstructPath rebuilds the path from the cameFrom map. The returned path
// runs from the start's successor to current; the start itself is left out, so
// the path is empty when current is the start.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{}
	for current != start {
		path = append(path, current)
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		current = previousNode
	}
	slices.Reverse(path)

	return path
}
