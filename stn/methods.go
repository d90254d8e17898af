// File: methods.go
// Role: incoming-edge queries, edge update/lookup, assignment introspection,
// and vertex removal — the STN ADT surface §6 of the spec requires.
package stn

import "fmt"

// GetIncoming returns every requirement edge whose target is v, i.e. v's
// requirement predecessors. Contingent edges into v are excluded; use
// GetIncomingContingent for those.
func (s *STN) GetIncoming(v int) []*Edge {
	var out []*Edge
	for p, e := range s.edges {
		if p.J == v && !e.Contingent {
			out = append(out, e)
		}
	}
	return out
}

// GetIncomingContingent returns the unique contingent edge into v, or nil
// if v is not a received timepoint.
func (s *STN) GetIncomingContingent(v int) *Edge {
	if _, ok := s.received[v]; !ok {
		return nil
	}
	for p, e := range s.edges {
		if p.J == v && e.Contingent {
			return e
		}
	}
	return nil
}

// UpdateEdge creates or overwrites the requirement edge i->j with weight w.
// If create is false and the edge does not exist, ErrEdgeNotFound is
// returned. If the edge exists and force is false, the call is a no-op;
// force=true always overwrites (turning a contingent edge into a plain
// requirement edge, if present). This mirrors the STN ADT contract's
// update_edge(i, j, w, create, force); the simulator always calls it with
// create=true, force=true when pinning an assignment.
func (s *STN) UpdateEdge(i, j int, w float64, create, force bool) error {
	p := Pair{i, j}
	_, ok := s.edges[p]
	if !ok {
		if !create {
			return fmt.Errorf("UpdateEdge(%d,%d): %w", i, j, ErrEdgeNotFound)
		}
		s.edges[p] = &Edge{I: i, J: j, Weight: w}
		return nil
	}
	if !force {
		return nil
	}
	s.edges[p] = &Edge{I: i, J: j, Weight: w}
	return nil
}

// GetAssignedTime returns the weight of the (Z,v) requirement edge, or the
// negated weight of the (v,Z) requirement edge, and ok=false if neither
// exists. Z itself is always at time 0. Any such requirement edge counts,
// whether written by an assignment, added with AddRequirementEdge, or
// derived by FloydWarshall; v's executed flag is not checked, so ok=true
// does not by itself mean that v has been assigned.
func (s *STN) GetAssignedTime(v int) (float64, bool) {
	if v == ZVertex {
		return 0, true
	}
	if e, ok := s.edges[Pair{ZVertex, v}]; ok && !e.Contingent {
		return e.Weight, true
	}
	if e, ok := s.edges[Pair{v, ZVertex}]; ok && !e.Contingent {
		return -e.Weight, true
	}
	return 0, false
}

// GetEdgeWeight returns the current upper bound of edge i->j, or +Inf-like
// absence via ok=false if no such edge exists.
func (s *STN) GetEdgeWeight(i, j int) (float64, bool) {
	e, ok := s.edges[Pair{i, j}]
	if !ok {
		return 0, false
	}
	if e.Contingent {
		return e.Hi, true
	}
	return e.Weight, true
}

// OutgoingExecuted reports whether every outgoing edge from v targets an
// already-executed vertex. Used by cleanup to decide whether v can be
// pruned from the working STN.
func (s *STN) OutgoingExecuted(v int) bool {
	for p := range s.edges {
		if p.I != v {
			continue
		}
		target := s.verts[p.J]
		if target == nil || !target.IsExecuted() {
			return false
		}
	}
	return true
}

// RemoveVertex deletes v and every edge incident to it. Returns
// ErrVertexNotFound if v is absent. Removing Z is a no-op error: Z is
// never pruned.
func (s *STN) RemoveVertex(v int) error {
	if v == ZVertex {
		return fmt.Errorf("RemoveVertex(Z): %w", ErrVertexNotFound)
	}
	if _, ok := s.verts[v]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	delete(s.verts, v)
	delete(s.received, v)
	for p := range s.edges {
		if p.I == v || p.J == v {
			delete(s.edges, p)
		}
	}
	return nil
}
