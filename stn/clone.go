// File: clone.go
// Role: deep copy, matching core/methods_clone.go's Clone discipline:
// every Vertex and Edge is duplicated so that mutating the copy never
// touches the original.
package stn

// Copy returns a deep copy of s: independent Vertex and Edge instances, so
// that executed flags and edge weights on the copy never alias the
// original. Sampled contingent durations are carried over unchanged, so
// copies taken after a Resample (such as guides built from the working
// STN) hold the same draws.
func (s *STN) Copy() *STN {
	out := &STN{
		verts:    make(map[int]*Vertex, len(s.verts)),
		edges:    make(map[Pair]*Edge, len(s.edges)),
		received: make(map[int]struct{}, len(s.received)),
	}
	for id, v := range s.verts {
		out.verts[id] = &Vertex{ID: v.ID, executed: v.executed}
	}
	for p, e := range s.edges {
		ne := *e
		out.edges[p] = &ne
	}
	for id := range s.received {
		out.received[id] = struct{}{}
	}
	return out
}
