package stn

import "fmt"

// STN is a mutable graph of timepoints and edges: a mapping from vertex id
// to Vertex, a mapping from ordered pair to Edge, and the set of vertex ids
// that are the target of a contingent edge ("received" timepoints).
//
// STN is not safe for concurrent use; each simulation owns one working
// copy, one guide copy, and one assignment copy (see package simulator).
type STN struct {
	verts    map[int]*Vertex
	edges    map[Pair]*Edge
	received map[int]struct{}
}

// New returns an STN containing only the Z vertex (id 0, time 0). Z is
// marked executed from the start: it is the reference timepoint, already
// "fired" before the simulation begins, and is never assigned via the
// normal dispatch path.
func New() *STN {
	s := &STN{
		verts:    make(map[int]*Vertex),
		edges:    make(map[Pair]*Edge),
		received: make(map[int]struct{}),
	}
	z := &Vertex{ID: ZVertex}
	z.Execute()
	s.verts[ZVertex] = z
	return s
}

// AddVertex inserts a new, unexecuted timepoint. Returns ErrVertexExists if
// id is already present.
func (s *STN) AddVertex(id int) error {
	if _, ok := s.verts[id]; ok {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrVertexExists)
	}
	s.verts[id] = &Vertex{ID: id}
	return nil
}

// AddRequirementEdge adds or overwrites the controllable constraint
// t_j - t_i <= weight.
func (s *STN) AddRequirementEdge(i, j int, weight float64) error {
	if _, ok := s.verts[i]; !ok {
		return fmt.Errorf("AddRequirementEdge: source %d: %w", i, ErrVertexNotFound)
	}
	if _, ok := s.verts[j]; !ok {
		return fmt.Errorf("AddRequirementEdge: target %d: %w", j, ErrVertexNotFound)
	}
	s.edges[Pair{i, j}] = &Edge{I: i, J: j, Weight: weight}
	return nil
}

// AddContingentEdge adds the contingent duration i->j drawn from [lo,hi]
// (via dist, or the sampler's default if dist is nil). Returns
// ErrInvalidBounds if 0 <= lo <= hi does not hold, or
// ErrMultipleContingentParents if j already receives a contingent edge.
func (s *STN) AddContingentEdge(i, j int, lo, hi float64, dist Distribution) error {
	if _, ok := s.verts[i]; !ok {
		return fmt.Errorf("AddContingentEdge: source %d: %w", i, ErrVertexNotFound)
	}
	if _, ok := s.verts[j]; !ok {
		return fmt.Errorf("AddContingentEdge: target %d: %w", j, ErrVertexNotFound)
	}
	if lo < 0 || lo > hi {
		return fmt.Errorf("AddContingentEdge(%d,%d,%g,%g): %w", i, j, lo, hi, ErrInvalidBounds)
	}
	if _, ok := s.received[j]; ok {
		return fmt.Errorf("AddContingentEdge: target %d: %w", j, ErrMultipleContingentParents)
	}
	s.edges[Pair{i, j}] = &Edge{I: i, J: j, Contingent: true, Lo: lo, Hi: hi, Dist: dist}
	s.received[j] = struct{}{}
	return nil
}

// GetVertex returns the vertex with the given id, or nil if absent.
func (s *STN) GetVertex(id int) *Vertex {
	return s.verts[id]
}

// Verts returns the live vertex-id-to-Vertex map. Callers must not mutate
// the map itself (individual *Vertex fields may be mutated through their
// own methods).
func (s *STN) Verts() map[int]*Vertex {
	return s.verts
}

// ReceivedTimepoints returns the ids that are the target of a contingent
// edge (spec.md's "received" timepoints).
func (s *STN) ReceivedTimepoints() []int {
	out := make([]int, 0, len(s.received))
	for id := range s.received {
		out = append(out, id)
	}
	return out
}

// ContingentEdges returns every contingent edge in the STN, keyed by its
// (source,target) pair.
func (s *STN) ContingentEdges() map[Pair]*Edge {
	out := make(map[Pair]*Edge, len(s.received))
	for p, e := range s.edges {
		if e.Contingent {
			out[p] = e
		}
	}
	return out
}

// HasVertex reports whether id is present in the STN.
func (s *STN) HasVertex(id int) bool {
	_, ok := s.verts[id]
	return ok
}
