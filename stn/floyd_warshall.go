// File: floyd_warshall.go
// Role: all-pairs-shortest-paths propagation and negative-cycle detection.
//
// Grounded on matrix/impl_floydwarshall.go's fixed k->i->j loop order and
// in-place relaxation discipline, adapted from lvlath's dense +Inf-means-
// no-edge matrix to a sparse STN: only vertices currently present
// participate, contingent edges contribute their [lo,hi] bounds to the
// distance graph (i->j <= hi, j->i <= -lo) without being rewritten, and a
// negative vertex-to-itself distance is the STNU notion of inconsistency
// (a "negative cycle" in spec.md's vocabulary), not lvlath's "no path".
package stn

import (
	"math"
	"sort"
)

// FloydWarshall runs all-pairs-shortest-paths over the current vertex set
// and returns false iff a negative cycle (temporal inconsistency) is
// detected. On success, every derived requirement constraint is written
// back into the STN in minimized form; contingent edges are left
// untouched so that contingent fidelity (spec.md P3) is never disturbed by
// propagation.
func (s *STN) FloydWarshall() bool {
	ids := make([]int, 0, len(s.verts))
	for id := range s.verts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	n := len(ids)
	idx := make(map[int]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
	}

	for p, e := range s.edges {
		i, j := idx[p.I], idx[p.J]
		if e.Contingent {
			if e.Hi < dist[i][j] {
				dist[i][j] = e.Hi
			}
			if -e.Lo < dist[j][i] {
				dist[j][i] = -e.Lo
			}
			continue
		}
		if e.Weight < dist[i][j] {
			dist[i][j] = e.Weight
		}
	}

	// Fixed k -> i -> j relaxation order (matrix/impl_floydwarshall.go).
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if math.IsInf(dkj, 1) {
					continue
				}
				if cand := dik + dkj; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return false
		}
	}

	for i, fromID := range ids {
		for j, toID := range ids {
			if i == j || math.IsInf(dist[i][j], 1) {
				continue
			}
			p := Pair{fromID, toID}
			if existing, ok := s.edges[p]; ok && existing.Contingent {
				continue
			}
			s.edges[p] = &Edge{I: fromID, J: toID, Weight: dist[i][j]}
		}
	}
	return true
}
