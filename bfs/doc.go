// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph, returning hop
// counts, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - BFSResult holds Order (visit sequence), Depth (label → hops) and
//     Parent (label → predecessor in the BFS tree).
//   - OnVisit hook may abort the walk with an error.
//   - MaxDepth limit (d>0) or no limit (d==0).
//   - Edges are followed in both directions unless WithLegacyOrientation
//     is given.
//
// Why
//
//	The set of vertices BFS reaches is exactly the set dijkstra.ShortestPaths
//	marks reachable under the same orientation rule, which makes BFS an
//	independent check of reachability.
//
// Determinism
//
//	Neighbors are enqueued in edge-list order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the adjacency built from the edge list.
package bfs
