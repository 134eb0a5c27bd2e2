// Package sim runs a diver through a sewer.
//
// A Scenario describes the sewer (chambers, pipes, coins) and its landmarks
// (entrance, ring, exit, step budget). It is loaded from YAML or built from
// a generated builder.Layout. Run plays one game: the seek phase walks from
// the entrance to the ring using the hop-distance hint, then the scram
// phase collects coins on the way to the exit within the step budget.
// RunBatch plays independent games in parallel.
//
// The Game owns position, budget and coins, and hands diver.Seek and
// diver.Scram two narrow views of itself. A single game is not safe for
// concurrent use; separate games share nothing.
package sim
