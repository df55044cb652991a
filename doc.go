// Package gridbfs is a shortest-path primitive for grid simulations and
// visualizations: build a walled grid once, then ask for routes between
// cells as often as needed.
//
// What is in the box?
//
//	grid/ — Point, generic dense Grid[T], orthogonal neighbor enumeration
//	bfs/  — Pathfinder: wall generation, BFS routes, distances, regions, rendering
//
// Movement is orthogonal with unit cost, so breadth-first search gives
// exact shortest routes in O(W×H) per query. Walls never change after a
// Pathfinder is built, and routes are reproducible: ties between
// equal-length routes are broken by the fixed grid.Offsets order.
//
// Quick ASCII example (10×20 map, route (1,1) → (8,1)):
//
//	##########
//	#S#*****E#
//	#*#*....##
//	   ...
//	#***....##
//	##########
//
//	go get github.com/karloid/gridbfs
package gridbfs
