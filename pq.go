package astar

import (
	"container/heap"
	"math"
)

// PriorityQueueItem is an open-set entry. Sequence is the order in which the
// node entered the open set and breaks FCost ties.
type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// frontier is the open set: a PriorityQueue plus an index by node so scores
// can be lowered in place.
type frontier[NodeType comparable] struct {
	queue        PriorityQueue[NodeType]
	items        map[NodeType]*PriorityQueueItem[NodeType]
	nextSequence uint64
}

func newFrontier[NodeType comparable]() *frontier[NodeType] {
	return &frontier[NodeType]{
		queue: make(PriorityQueue[NodeType], 0),
		items: make(map[NodeType]*PriorityQueueItem[NodeType]),
	}
}

func (open *frontier[NodeType]) Len() int { return open.queue.Len() }

func (open *frontier[NodeType]) contains(node NodeType) bool {
	_, exists := open.items[node]
	return exists
}

// discover adds node with an unknown score (+Inf). Nodes already open keep
// their place.
func (open *frontier[NodeType]) discover(node NodeType) {
	if open.contains(node) {
		return
	}
	item := &PriorityQueueItem[NodeType]{
		Node:     node,
		FCost:    math.Inf(1),
		Sequence: open.nextSequence,
	}
	open.nextSequence++
	heap.Push(&open.queue, item)
	open.items[node] = item
}

// setScore changes the FCost of an open node.
func (open *frontier[NodeType]) setScore(node NodeType, fCost float64) {
	item, exists := open.items[node]
	if !exists {
		return
	}
	item.FCost = fCost
	heap.Fix(&open.queue, item.IndexInQueue)
}

func (open *frontier[NodeType]) pop() NodeType {
	item := heap.Pop(&open.queue).(*PriorityQueueItem[NodeType])
	delete(open.items, item.Node)
	return item.Node
}

func (open *frontier[NodeType]) members() map[NodeType]bool {
	members := make(map[NodeType]bool, len(open.items))
	for node := range open.items {
		members[node] = true
	}
	return members
}
