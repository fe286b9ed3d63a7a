// Package settle computes single-source shortest distances on undirected,
// non-negatively weighted graphs by greedy settlement.
//
// Each round the engine picks, among all edges with exactly one settled end,
// the one minimizing dist(settled end) + weight and settles the other end.
// Vertices left over when no such edge exists are unreachable.
//
// Layout:
//
//	core/       Graph, Vertex, Edge; label registry and edge arena
//	dijkstra/   ShortestPaths engine (scan and heap strategies) and Table
//	apsp/       Floyd–Warshall all-pairs oracle
//	bfs/        breadth-first reachability and hop counts
//	adjlist/    tab/comma adjacency-list decoder and encoder
//	builder/    seeded random graph generator
//	report/     text and Graphviz DOT output
//	cmd/settle  command line: run, verify, gen
//
// Quick example:
//
//	    1───4───2
//	     \     /
//	      1   1
//	       \ /
//	        3
//
//	settle run --input triangle.txt prints distances 0, 2 and 1.
package settle
