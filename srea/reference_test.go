package srea_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dream-stnu/simcore/srea"
	"github.com/dream-stnu/simcore/stn"
)

func TestReference_ConsistentNetworkYieldsGuide(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddRequirementEdge(0, 1, 5))
	require.NoError(t, s.AddContingentEdge(1, 2, 2, 4, nil))

	alpha, guide, ok := srea.Reference{}.Srea(s)
	require.True(t, ok)
	require.NotNil(t, guide)
	require.GreaterOrEqual(t, alpha, 0.0)
	require.LessOrEqual(t, alpha, 1.0)
}

func TestReference_InconsistentNetworkIsInfeasible(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddRequirementEdge(0, 1, 1))
	require.NoError(t, s.AddRequirementEdge(1, 0, -5))

	_, guide, ok := srea.Reference{}.Srea(s)
	require.False(t, ok)
	require.Nil(t, guide)
}

func TestReference_OriginalNetworkUnmodified(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	require.NoError(t, s.AddVertex(2))
	require.NoError(t, s.AddContingentEdge(1, 2, 2, 4, nil))

	_, _, ok := srea.Reference{}.Srea(s)
	require.True(t, ok)

	edge := s.GetIncomingContingent(2)
	require.Equal(t, 2.0, edge.Lo)
	require.Equal(t, 4.0, edge.Hi)
}
