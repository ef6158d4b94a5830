package bsdf

import "github.com/lumenrender/lumen/pkg/core"

// Blend is a composite BSDF routing the first half of the 1D selector to
// one child and the second half to the other, then re-normalizing the
// sampled weight through the composite's own Pdf/Eval rather than reusing
// the child's sampled weight directly. Both children must be non-smooth and
// two-sided; combining with a delta lobe is a contract violation, not a
// recoverable edge case, matching the original's panic on a smooth child.
type Blend struct {
	A, B BSDF
}

// NewBlend builds a Blend of two non-smooth, two-sided BSDFs.
func NewBlend(a, b BSDF) *Blend {
	return &Blend{A: a, B: b}
}

func (bl *Blend) Sample(uv core.Vec2, hasUV bool, dIn core.Vec3, u core.Vec2) (SampledDirection, bool) {
	if bl.A.IsSmooth() || bl.B.IsSmooth() {
		panic("bsdf: Blend requires non-smooth children")
	}

	var sampled SampledDirection
	var ok bool
	if u.X < 0.5 {
		scaled := core.NewVec2(u.X*2.0, u.Y)
		sampled, ok = bl.A.Sample(uv, hasUV, dIn, scaled)
	} else {
		scaled := core.NewVec2((u.X-0.5)*2.0, u.Y)
		sampled, ok = bl.B.Sample(uv, hasUV, dIn, scaled)
	}
	if !ok {
		return SampledDirection{}, false
	}

	pdf := bl.Pdf(uv, hasUV, dIn, sampled.Direction, core.DomainSolidAngleValue)
	if pdf.IsZero() {
		return SampledDirection{}, false
	}
	weight := bl.Eval(uv, hasUV, dIn, sampled.Direction, core.DomainSolidAngleValue).Div(pdf.Value)
	return SampledDirection{Direction: sampled.Direction, Weight: weight, PDF: pdf}, true
}

func (bl *Blend) Eval(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.Color {
	return bl.A.Eval(uv, hasUV, dIn, dOut, domain).Add(bl.B.Eval(uv, hasUV, dIn, dOut, domain))
}

func (bl *Blend) Pdf(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.PDF {
	pa := bl.A.Pdf(uv, hasUV, dIn, dOut, domain)
	pb := bl.B.Pdf(uv, hasUV, dIn, dOut, domain)
	if pa.Kind != core.PDFSolidAngle || pb.Kind != core.PDFSolidAngle {
		panic("bsdf: Blend children disagree on PDF domain")
	}
	return core.NewSolidAnglePDF((pa.Value + pb.Value) * 0.5)
}

func (bl *Blend) Roughness(uv core.Vec2, hasUV bool) float64 {
	ra, rb := bl.A.Roughness(uv, hasUV), bl.B.Roughness(uv, hasUV)
	if ra < rb {
		return ra
	}
	return rb
}

// IsSmooth always reports false for a valid Blend; constructing one from
// smooth children is rejected at Sample time as a contract violation.
func (bl *Blend) IsSmooth() bool {
	if bl.A.IsSmooth() || bl.B.IsSmooth() {
		panic("bsdf: IsSmooth on Blend with a smooth child")
	}
	return false
}

func (bl *Blend) IsTwosided() bool {
	if !bl.A.IsTwosided() || !bl.B.IsTwosided() {
		panic("bsdf: IsTwosided on Blend with a one-sided child")
	}
	return true
}
