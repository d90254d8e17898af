package stn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dream-stnu/simcore/stn"
)

func TestNew_HasOnlyZ(t *testing.T) {
	s := stn.New()
	require.True(t, s.HasVertex(stn.ZVertex))
	require.Len(t, s.Verts(), 1)
	z, ok := s.GetAssignedTime(stn.ZVertex)
	require.True(t, ok)
	require.Equal(t, 0.0, z)
}

func TestAddVertex_Duplicate(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.ErrorIs(t, s.AddVertex(1), stn.ErrVertexExists)
}

func TestAddRequirementEdge_MissingVertex(t *testing.T) {
	s := stn.New()
	require.ErrorIs(t, s.AddRequirementEdge(0, 7, 5), stn.ErrVertexNotFound)
}

func TestAddContingentEdge_InvalidBounds(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.ErrorIs(t, s.AddContingentEdge(1, 2, 5, 2, nil), stn.ErrInvalidBounds)
}

func TestAddContingentEdge_SecondParentRejected(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddVertex(3))
	require.NoError(t, s.AddContingentEdge(1, 3, 1, 2, nil))
	require.ErrorIs(t, s.AddContingentEdge(2, 3, 1, 2, nil), stn.ErrMultipleContingentParents)
}

func TestGetIncoming_ExcludesContingent(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddVertex(3))
	require.NoError(t, s.AddRequirementEdge(1, 3, 10))
	require.NoError(t, s.AddContingentEdge(2, 3, 1, 2, nil))

	reqs := s.GetIncoming(3)
	require.Len(t, reqs, 1)
	require.Equal(t, 1, reqs[0].I)

	cont := s.GetIncomingContingent(3)
	require.NotNil(t, cont)
	require.Equal(t, 2, cont.I)
}

func TestUpdateEdge_ForceVsNoForce(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddRequirementEdge(0, 1, 5))

	require.NoError(t, s.UpdateEdge(0, 1, 9, false, false))
	w, ok := s.GetEdgeWeight(0, 1)
	require.True(t, ok)
	require.Equal(t, 5.0, w, "no-force update on an existing edge is a no-op")

	require.NoError(t, s.UpdateEdge(0, 1, 9, false, true))
	w, ok = s.GetEdgeWeight(0, 1)
	require.True(t, ok)
	require.Equal(t, 9.0, w)

	require.ErrorIs(t, s.UpdateEdge(5, 6, 1, false, false), stn.ErrEdgeNotFound)
}

func TestAssignTimepointPattern(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.UpdateEdge(stn.ZVertex, 1, 5, true, true))
	require.NoError(t, s.UpdateEdge(1, stn.ZVertex, -5, true, true))
	s.GetVertex(1).Execute()

	tm, ok := s.GetAssignedTime(1)
	require.True(t, ok)
	require.Equal(t, 5.0, tm)
	require.True(t, s.GetVertex(1).IsExecuted())
}

func TestOutgoingExecutedAndPrune(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddRequirementEdge(1, 2, 3))

	require.False(t, s.OutgoingExecuted(1))
	s.GetVertex(2).Execute()
	require.True(t, s.OutgoingExecuted(1))

	s.GetVertex(1).Execute()
	s.Prune()
	require.False(t, s.HasVertex(1), "fully-executed vertex with all outgoing targets executed should be pruned")
	require.False(t, s.HasVertex(2), "2 is executed and has no outgoing edges, so it is pruned as well")
	require.True(t, s.HasVertex(stn.ZVertex), "Z is never pruned")
}

func TestCopy_IsIndependent(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddRequirementEdge(0, 1, 4))

	c := s.Copy()
	c.GetVertex(1).Execute()
	require.False(t, s.GetVertex(1).IsExecuted(), "mutating the copy must not affect the original")

	require.NoError(t, c.UpdateEdge(0, 1, 99, false, true))
	w, _ := s.GetEdgeWeight(0, 1)
	require.Equal(t, 4.0, w, "mutating the copy's edges must not affect the original")
}

func TestFloydWarshall_DetectsNegativeCycle(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddRequirementEdge(0, 1, 1))
	require.NoError(t, s.AddRequirementEdge(1, 0, -5))

	require.False(t, s.FloydWarshall())
}

func TestFloydWarshall_MinimizesAndFillsClosure(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddRequirementEdge(0, 1, 10))
	require.NoError(t, s.AddRequirementEdge(1, 2, 5))

	require.True(t, s.FloydWarshall())
	w, ok := s.GetEdgeWeight(0, 2)
	require.True(t, ok, "closure should derive 0->2 from 0->1->2")
	require.Equal(t, 15.0, w)
}

func TestFloydWarshall_LeavesContingentEdgesUntouched(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddContingentEdge(1, 2, 2, 4, nil))
	require.NoError(t, s.AddRequirementEdge(0, 1, 0))

	require.True(t, s.FloydWarshall())
	edge := s.GetIncomingContingent(2)
	require.NotNil(t, edge)
	require.Equal(t, 2.0, edge.Lo)
	require.Equal(t, 4.0, edge.Hi)
}

func TestResample_IsDeterministicGivenSeed(t *testing.T) {
	s1 := stn.New()
	require.NoError(t, s1.AddVertex(1))
	require.NoError(t, s1.AddVertex(2))
	require.NoError(t, s1.AddContingentEdge(1, 2, 2, 4, nil))

	s2 := s1.Copy()

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for _, e := range s1.ContingentEdges() {
		e.Resample(r1)
	}
	for _, e := range s2.ContingentEdges() {
		e.Resample(r2)
	}

	for p, e1 := range s1.ContingentEdges() {
		e2 := s2.ContingentEdges()[p]
		d1, err1 := e1.SampledTime()
		d2, err2 := e2.SampledTime()
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, d1, d2)
		require.GreaterOrEqual(t, d1, 2.0)
		require.LessOrEqual(t, d1, 4.0)
	}
}
