package strategy

import "github.com/dream-stnu/simcore/stn"

// earlyDispatcher always dispatches the working STN itself at alpha=1.0,
// i.e. execute every timepoint as early as its constraints allow. Ports
// montsim.py's get_guide "early" branch, which returns (1.0, self.stn)
// unconditionally.
type earlyDispatcher struct{}

func (earlyDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	return 1.0, ctx.Working
}
