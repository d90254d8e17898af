// File: cleanup.go
// Role: prunes timepoints which carry no further information, bounding
// per-iteration Floyd-Warshall cost as execution progresses. Direct port of
// the Python original's remove_old_timepoints.
package stn

// Prune removes every non-Z vertex that is executed and whose outgoing
// edges all target already-executed vertices, along with its incident
// edges. Z is never pruned.
func (s *STN) Prune() {
	ids := make([]int, 0, len(s.verts))
	for id := range s.verts {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if id == ZVertex {
			continue
		}
		v := s.verts[id]
		if v == nil || !v.IsExecuted() {
			continue
		}
		if s.OutgoingExecuted(id) {
			_ = s.RemoveVertex(id)
		}
	}
}
