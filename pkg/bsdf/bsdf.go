// Package bsdf defines the material capability every integrator programs
// against: a single interface covering sampling, evaluation, PDF queries,
// and the two boolean/roughness hints integrators need to branch on (NEE
// eligibility, MIS weighting, gradient-domain shift-mapping choice).
package bsdf

import "github.com/lumenrender/lumen/pkg/core"

// SampledDirection is the result of a successful BSDF sample: an outgoing
// local direction, its weight (already divided by PDF and including the
// cosine term), and the PDF it was drawn under.
type SampledDirection struct {
	Direction core.Vec3
	Weight    core.Color
	PDF       core.PDF
}

// BSDF is the capability every material implements. d_in/d_out are always
// local-frame directions (see core.Frame); UV is optional per-point
// parameterization, with HasUV false when the surface carries none.
type BSDF interface {
	// Sample draws an outgoing direction given the incoming direction and a
	// 2D uniform sample. ok is false when no direction could be sampled
	// (e.g. total internal reflection).
	Sample(uv core.Vec2, hasUV bool, dIn core.Vec3, u core.Vec2) (sampled SampledDirection, ok bool)

	// Eval returns f_r(d_in,d_out)*cos(theta_out) under the given domain,
	// zero when the pair is not representable in that domain.
	Eval(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.Color

	// Pdf returns the density of sampling d_out given d_in under domain,
	// zero on miss.
	Pdf(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.PDF

	// Roughness is a heuristic in [0,1] used by gradient-domain shift
	// mapping to choose between diffuse reconnection and half-vector copy.
	Roughness(uv core.Vec2, hasUV bool) float64

	// IsSmooth reports whether every lobe is delta-like (purely specular).
	IsSmooth() bool

	// IsTwosided reports whether the material behaves identically when lit
	// from either side; materials that transmit return false.
	IsTwosided() bool
}
