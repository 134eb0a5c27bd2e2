// SPDX-License-Identifier: MIT

package diver

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcdiver/core"
)

// Sentinel errors returned by Seek and Scram.
var (
	// ErrNilState indicates a nil state capability.
	ErrNilState = errors.New("diver: state is nil")

	// ErrRingNotFound indicates Seek exhausted every reachable vertex
	// without standing on the ring.
	ErrRingNotFound = errors.New("diver: ring not found")

	// ErrNoRoute indicates the exit cannot be reached from the current vertex.
	ErrNoRoute = errors.New("diver: no route to exit")

	// ErrInsufficientBudget indicates the remaining steps do not cover the
	// cheapest way out; no move is made.
	ErrInsufficientBudget = errors.New("diver: budget does not cover the way out")
)

// NodeStatus is what the seek phase can see of a neighbor.
type NodeStatus struct {
	ID             int64
	DistanceToRing int
}

// Less orders neighbors closest to the ring first, then by ID.
func (n NodeStatus) Less(o NodeStatus) bool {
	if n.DistanceToRing != o.DistanceToRing {
		return n.DistanceToRing < o.DistanceToRing
	}

	return n.ID < o.ID
}

// SeekState is the capability handed to Seek.
type SeekState interface {
	// CurrentLocation returns the ID of the vertex the diver stands on.
	CurrentLocation() int64
	// Neighbors returns the neighbors of the current vertex.
	Neighbors() []NodeStatus
	// DistanceToRing returns the hint for the current vertex; 0 on the ring.
	DistanceToRing() int
	// MoveTo steps to an adjacent vertex.
	MoveTo(id int64) error
}

// ScramState is the capability handed to Scram. MoveTo must decrement
// StepsToGo by the traversed edge weight and take the coins on arrival.
type ScramState interface {
	CurrentNode() *core.Vertex
	Exit() *core.Vertex
	AllNodes() []*core.Vertex
	StepsToGo() int64
	MoveTo(v *core.Vertex) error
}

// Phase names a state of the Scram machine.
type Phase int

const (
	// PhaseCommit is a full step toward the chosen coin vertex.
	PhaseCommit Phase = iota
	// PhasePartial is a single guarded step toward an unaffordable coin vertex.
	PhasePartial
	// PhaseExit is a step along a shortest path to the exit.
	PhaseExit
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseCommit:
		return "commit"
	case PhasePartial:
		return "partial"
	case PhaseExit:
		return "exit"
	}

	return "unknown"
}

// Decision describes one move chosen by Scram.
type Decision struct {
	Phase  Phase
	From   *core.Vertex
	To     *core.Vertex
	Dest   *core.Vertex // chosen coin vertex; nil in PhaseExit
	Ratio  float64      // pathCost / rewardSum of Dest; 0 in PhaseExit
	Budget int64        // steps left before the move
}

// Options configures Seek and Scram.
type Options struct {
	Logger     logrus.FieldLogger
	OnDecision func(Decision)
}

// Option represents a functional option for Seek and Scram.
type Option func(*Options)

// WithLogger routes decision logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("diver: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnDecision installs fn, called before every Scram move. Panics on nil.
func WithOnDecision(fn func(Decision)) Option {
	if fn == nil {
		panic("diver: WithOnDecision(nil)")
	}
	return func(o *Options) {
		o.OnDecision = fn
	}
}

// DefaultOptions returns Options with a discarding logger and no hook.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:     l,
		OnDecision: func(Decision) {},
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
