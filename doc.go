// Package astar provides an A* shortest-path search over graphs whose nodes
// carry payloads and whose edges carry values.
//
// It exposes two main entry points:
//
//   - PathFinder.Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Edge costs come from a CostFunc applied to edge values, and the estimate of
// the remaining distance comes from a HeuristicFunc applied to node payloads.
// The default heuristic is +Inf for every node, so every open node ties and the
// frontier is expanded in discovery order. Ties are always broken by the order
// in which nodes entered the open set, which keeps results deterministic for a
// given graph.
//
// The graph package provides the in-memory graph the search is usually run on.
package astar
