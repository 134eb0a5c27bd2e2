// SPDX-License-Identifier: MIT

// Package diver implements the two phases of a sewer dive as plain functions
// over a state capability:
//
//   - Seek walks to the ring using only local hints (each neighbor's distance
//     to the ring). It is a backtracking depth-first walk that tries closer
//     neighbors first and stops the moment the ring is underfoot.
//   - Scram walks to the exit while picking up coins, and never spends steps
//     it would need to get out.
//
// Scram is a small state machine that re-plans after every single move:
//
//	Evaluate        cost c of a shortest path to the exit; if budget ≤ c go
//	                to Exit-Direct. Otherwise score every vertex that still
//	                holds coins by ratio = pathCost / rewardSum (lower is
//	                better, ties go to the lowest vertex ID) and pick the best.
//	Commit          if budget − cost(path to dest) > cost(dest → exit), take
//	                one step toward dest and Evaluate again.
//	Partial-Advance otherwise, take the first step x of that path only if
//	                budget > edge(cur, x) + cost(x → exit); else Exit-Direct.
//	Exit-Direct     follow one fixed shortest-path tree grown from the exit
//	                until the exit is reached.
//
// Every reward-seeking step is gated on the cost of getting out afterwards,
// so with a connected graph and a starting budget that covers the way out,
// the diver always reaches the exit with a non-negative budget.
//
// Zero-weight pipes do not spend budget, so two equal-cost routes could
// otherwise trade places between re-plans forever. Evaluate remembers every
// (vertex, budget, coins left) it has seen and heads for the exit when one
// repeats; Exit-Direct never re-plans its route.
//
// Options:
//
//	– WithLogger(l)       decisions are logged at Debug level.
//	– WithOnDecision(fn)  observe every planning decision (tests, tracing).
package diver
