// Package integrator implements the Monte Carlo light transport
// estimators: MIS path tracing with next-event estimation, and the
// gradient-domain extension that shoots offset paths alongside the
// primal.
package integrator

import (
	"math"

	"github.com/lumenrender/lumen/internal/logging"
)

// PowerHeuristic computes the two-strategy power-heuristic MIS weight for
// pdfA against pdfB (beta=2). A zero or non-finite result is a numerical
// hazard (§7 category 2): logged once and replaced with zero rather than
// propagated. Grounded on original_source/src/integrators/mod.rs's
// mis_weight.
func PowerHeuristic(pdfA, pdfB float64) float64 {
	if pdfA == 0 {
		logging.WarnOnce("mis-zero-pdf", "MIS weight requested for zero PDF")
		return 0
	}
	w := (pdfA * pdfA) / (pdfA*pdfA + pdfB*pdfB)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		logging.WarnOnce("mis-non-finite", "non-finite MIS weight")
		return 0
	}
	return w
}
