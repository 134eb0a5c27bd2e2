// Package builder generates random sewer layouts for the diver.
//
// A layout is a rows×cols grid of chambers joined by pipes. Every pipe of
// the 4-neighborhood grid draws a weight; the layout keeps the minimum
// spanning tree of those weights (Kruskal, equal weights ordered at random),
// so every chamber is reachable and cheap pipes are preferred, plus extra
// "loop" pipes that close cycles with a configurable probability.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:            a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight and coin functions, loop probability.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Coin distributions (CoinFn implementations):
//     – NoCoins:           empty chambers.
//     – ScatterCoinFn:     each chamber holds 1..max coins with probability p.
//   - Sewer(rows, cols, opts...): the generator itself, returning a Layout.
//
// Guarantees:
//
//   - Determinism: the same rows, cols, options and seed give an identical
//     graph, including edge insertion order.
//   - Fast-fail on invalid option parameters via panics in option constructors,
//     except WithLoopProbability, which is reported as ErrInvalidProbability
//     by Sewer so that CLI input can be validated without recover.
//   - Sentinel errors for invalid build parameters, wrapped with the method name.
//
// Vertex IDs are row-major: chamber (r, c) has ID r*cols + c.
package builder
