package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SearchStats collects counts for each pruning/cutoff mechanism.
type SearchStats struct {
	Nodes           uint64
	TTHits          uint64
	TTCutoffs       uint64
	FutilityPrunes  uint64
	LateMoveReduced uint64
	ReSearches      uint64
	BetaCutoffs     uint64
	Passes          uint64
	AspirationFails uint64
}

// Add accumulates o into st.
func (st *SearchStats) Add(o SearchStats) {
	st.Nodes += o.Nodes
	st.TTHits += o.TTHits
	st.TTCutoffs += o.TTCutoffs
	st.FutilityPrunes += o.FutilityPrunes
	st.LateMoveReduced += o.LateMoveReduced
	st.ReSearches += o.ReSearches
	st.BetaCutoffs += o.BetaCutoffs
	st.Passes += o.Passes
	st.AspirationFails += o.AspirationFails
}

// MarshalZerologObject lets the stats ride along on any log event.
func (st SearchStats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", st.Nodes).
		Uint64("tt-hits", st.TTHits).
		Uint64("tt-cutoffs", st.TTCutoffs).
		Uint64("futility", st.FutilityPrunes).
		Uint64("lmr", st.LateMoveReduced).
		Uint64("re-searches", st.ReSearches).
		Uint64("beta-cutoffs", st.BetaCutoffs).
		Uint64("passes", st.Passes).
		Uint64("aspiration-fails", st.AspirationFails)
}

func dumpCutStats(st SearchStats) {
	log.Debug().EmbedObject(st).Msg("cut-statistics")
}
