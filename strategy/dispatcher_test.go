package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dream-stnu/simcore/strategy"
	"github.com/dream-stnu/simcore/stn"
)

// stubOracle returns a scripted sequence of responses, one per call, and
// records how many times Srea was invoked.
type stubOracle struct {
	responses []stubResponse
	calls     int
}

type stubResponse struct {
	alpha float64
	guide *stn.STN
	ok    bool
}

func (s *stubOracle) Srea(_ *stn.STN) (float64, *stn.STN, bool) {
	r := s.responses[s.calls]
	s.calls++
	return r.alpha, r.guide, r.ok
}

func newNet(t *testing.T) *stn.STN {
	t.Helper()
	s := stn.New()
	require.NoError(t, s.AddVertex(1))
	return s
}

func TestLookup_UnknownNameReturnsError(t *testing.T) {
	_, err := strategy.Lookup("bogus")
	require.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestLookup_AllSevenNamesResolve(t *testing.T) {
	for _, name := range []strategy.Name{
		strategy.Early, strategy.SREA, strategy.DREA, strategy.DREASI,
		strategy.DREAALP, strategy.DREAAR, strategy.ARSI,
	} {
		d, err := strategy.Lookup(name)
		require.NoError(t, err)
		require.NotNil(t, d)
	}
}

func TestEarlyDispatcher_ReturnsWorkingAtAlphaOne(t *testing.T) {
	working := newNet(t)
	d, err := strategy.Lookup(strategy.Early)
	require.NoError(t, err)

	alpha, guide := d.GetGuide(&strategy.Context{Working: working, Counters: &strategy.Counters{}})
	require.Equal(t, 1.0, alpha)
	require.Same(t, working, guide)
}

func TestSREAOnceDispatcher_ReschedulesOnlyOnFirstRun(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.2, guide: guide1, ok: true}}}
	d, err := strategy.Lookup(strategy.SREA)
	require.NoError(t, err)

	counters := &strategy.Counters{}
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, Opts: strategy.Options{FirstRun: true}, Counters: counters,
	})
	require.Equal(t, 0.2, alpha)
	require.Same(t, guide1, guide)
	require.Equal(t, 1, counters.NumReschedules)
	require.Equal(t, 1, counters.NumSentSchedules)

	alpha2, guide2 := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, PreviousAlpha: alpha, PreviousGuide: guide,
		Opts: strategy.Options{FirstRun: false}, Counters: counters,
	})
	require.Equal(t, alpha, alpha2)
	require.Same(t, guide, guide2)
	require.Equal(t, 1, oracle.calls)
}

func TestDreaDispatcher_FollowsPreviousGuideWithoutContingentExecution(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	d, err := strategy.Lookup(strategy.DREA)
	require.NoError(t, err)

	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.5, guide: guide1, ok: true}}}
	counters := &strategy.Counters{}
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, Opts: strategy.Options{FirstRun: false, ExecutedContingent: false},
		PreviousAlpha: 0.3, PreviousGuide: working, Counters: counters,
	})
	require.Equal(t, 0.3, alpha)
	require.Same(t, working, guide)
	require.Zero(t, oracle.calls)
}

func TestDreaSIDispatcher_RejectsBelowThreshold(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	// alpha unchanged -> p1-p0 == 0, never exceeds a positive threshold.
	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.3, guide: guide1, ok: true}}}
	d, err := strategy.Lookup(strategy.DREASI)
	require.NoError(t, err)

	counters := &strategy.Counters{}
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, PreviousAlpha: 0.3, PreviousGuide: working,
		Opts: strategy.Options{FirstRun: false, ExecutedContingent: true, SIThreshold: 0.01}, Counters: counters,
	})
	require.Equal(t, 0.3, alpha)
	require.Same(t, working, guide)
	require.Equal(t, 1, counters.NumReschedules)
	require.Zero(t, counters.NumSentSchedules)
}

func TestDreaALPDispatcher_AcceptsWhenAlphaDiffExceedsThreshold(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.9, guide: guide1, ok: true}}}
	d, err := strategy.Lookup(strategy.DREAALP)
	require.NoError(t, err)

	counters := &strategy.Counters{}
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, PreviousAlpha: 0.1, PreviousGuide: working,
		Opts: strategy.Options{FirstRun: false, ExecutedContingent: true, ALPThreshold: 0.2}, Counters: counters,
	})
	require.Equal(t, 0.9, alpha)
	require.Same(t, guide1, guide)
	require.Equal(t, 1, counters.NumSentSchedules)
}

func TestDreaARDispatcher_WaitsUntilEligibleBeforeRescheduling(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.5, guide: guide1, ok: true}}}
	d, err := strategy.Lookup(strategy.DREAAR)
	require.NoError(t, err)

	counters := &strategy.Counters{}
	// previousAlpha=0 and a high threshold means n is large; a single
	// contingent execution should not yet be eligible to reschedule.
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, PreviousAlpha: 0.0, PreviousGuide: working,
		Opts: strategy.Options{FirstRun: false, ExecutedContingent: true, ARThreshold: 0.99}, Counters: counters,
	})
	require.Equal(t, 0.0, alpha)
	require.Same(t, working, guide)
	require.Zero(t, oracle.calls)
}

func TestARSIDispatcher_FirstRunAlwaysReschedules(t *testing.T) {
	working := newNet(t)
	guide1 := newNet(t)
	oracle := &stubOracle{responses: []stubResponse{{alpha: 0.4, guide: guide1, ok: true}}}
	d, err := strategy.Lookup(strategy.ARSI)
	require.NoError(t, err)

	counters := &strategy.Counters{}
	alpha, guide := d.GetGuide(&strategy.Context{
		Working: working, Oracle: oracle, Opts: strategy.Options{FirstRun: true}, Counters: counters,
	})
	require.Equal(t, 0.4, alpha)
	require.Same(t, guide1, guide)
	require.Equal(t, 1, counters.NumReschedules)
}
