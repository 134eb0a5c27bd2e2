// Package mcdiver plays the sewer diver: find the ring, collect coins, get out.
//
// The module is organized into small packages, bottom-up:
//
//	core/       — weighted undirected graph of chambers (vertices with coins) and pipes
//	heap/       — generic indexable binary heap with in-place priority updates
//	dijkstra/   — single-pair and single-source shortest paths over core, path cost/reward
//	bfs/, dfs/  — hop-distance search, traversal, connectivity and cycle checks
//	builder/    — seeded random sewer layouts (spanning tree plus loop pipes)
//	diver/      — the seek walk and the budgeted greedy scram collector
//	sim/        — YAML scenarios, the game state, single and batch runs
//	cmd/mcdiver — command line: run, gen, batch
//
// Quick start:
//
//	sc, _ := sim.Generate(42, 8, 8)
//	rep, err := sim.Run(sc)
//	fmt.Println(rep.Coins, rep.Escaped, err)
//
// Everything except sim.RunBatch is single-threaded; independent games may
// run concurrently because they share no state.
package mcdiver
