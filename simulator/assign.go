package simulator

import "github.com/dream-stnu/simcore/stn"

// assignTimepoint pins vertexID to time on net: it force-writes both the
// (Z,vertexID) and (vertexID,Z) requirement edges and marks the vertex
// executed. Z itself is never re-pinned. Direct port of
// montsim.py.Simulator.assign_timepoint.
func assignTimepoint(net *stn.STN, vertexID int, t float64) {
	if vertexID != stn.ZVertex {
		_ = net.UpdateEdge(stn.ZVertex, vertexID, t, true, true)
		_ = net.UpdateEdge(vertexID, stn.ZVertex, -t, true, true)
	}
	net.GetVertex(vertexID).Execute()
}

// propagateConstraints minimizes net's requirement edges via
// Floyd-Warshall and reports whether the result is still consistent.
// Direct port of montsim.py.Simulator.propagate_constraints.
func propagateConstraints(net *stn.STN) bool {
	return net.FloydWarshall()
}

// allAssigned reports whether every vertex in net has been executed.
// Direct port of montsim.py.Simulator.all_assigned.
func allAssigned(net *stn.STN) bool {
	for _, v := range net.Verts() {
		if !v.IsExecuted() {
			return false
		}
	}
	return true
}
