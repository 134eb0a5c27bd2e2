// SPDX-License-Identifier: MIT

package diver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// seeker holds the state of one Seek call.
type seeker struct {
	s       SeekState
	log     logrus.FieldLogger
	visited map[int64]bool
}

// Seek walks from the current vertex until it stands on the ring.
//
// The walk is a depth-first search over unvisited vertices. At each vertex
// the neighbors are tried closest-to-ring first (ties by lower ID); after an
// unsuccessful subtree the diver steps back to the vertex it came from.
//
// Returns ErrRingNotFound if every reachable vertex was visited, and wraps
// any MoveTo error.
func Seek(s SeekState, opts ...Option) error {
	if s == nil {
		return ErrNilState
	}
	cfg := resolve(opts)

	w := &seeker{
		s:       s,
		log:     cfg.Logger.WithField("phase", "seek"),
		visited: make(map[int64]bool),
	}
	found, err := w.walk()
	if err != nil {
		return err
	}
	if !found {
		return ErrRingNotFound
	}
	w.log.WithField("vertex", s.CurrentLocation()).Debug("standing on the ring")

	return nil
}

// walk visits the current vertex and recurses into its unvisited neighbors.
// It reports true, leaving the diver in place, once the ring is reached.
func (w *seeker) walk() (bool, error) {
	if w.s.DistanceToRing() == 0 {
		return true, nil
	}

	cur := w.s.CurrentLocation()
	w.visited[cur] = true

	nbs := append([]NodeStatus(nil), w.s.Neighbors()...)
	sort.Slice(nbs, func(i, j int) bool { return nbs[i].Less(nbs[j]) })

	for _, n := range nbs {
		if w.visited[n.ID] {
			continue
		}
		if err := w.s.MoveTo(n.ID); err != nil {
			return false, fmt.Errorf("diver: seek %d→%d: %w", cur, n.ID, err)
		}
		found, err := w.walk()
		if err != nil || found {
			return found, err
		}
		// backtrack
		if err = w.s.MoveTo(cur); err != nil {
			return false, fmt.Errorf("diver: seek backtrack %d→%d: %w", n.ID, cur, err)
		}
	}

	return false, nil
}
