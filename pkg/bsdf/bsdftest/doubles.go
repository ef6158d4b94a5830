// Package bsdftest provides minimal BSDF test doubles shared by pkg/bsdf's
// Blend tests and pkg/scenecap/scenetest's scene double. It is not a
// material library: each double fixes its parameters at construction and
// ignores UV entirely.
package bsdftest

import (
	"math"
	"math/rand"

	"github.com/lumenrender/lumen/pkg/bsdf"
	"github.com/lumenrender/lumen/pkg/core"
)

// Lambertian is a cosine-weighted diffuse BSDF test double.
type Lambertian struct {
	Albedo core.Color
	Rnd    *rand.Rand
}

// NewLambertian builds a Lambertian test double with the given albedo,
// drawing its cosine-weighted samples from rnd.
func NewLambertian(albedo core.Color, rnd *rand.Rand) *Lambertian {
	return &Lambertian{Albedo: albedo, Rnd: rnd}
}

func cosineHemisphere(rnd *rand.Rand) core.Vec3 {
	u1, u2 := rnd.Float64(), rnd.Float64()
	r := math.Sqrt(u1)
	theta := 2 * math.Pi * u2
	return core.NewVec3(r*math.Cos(theta), r*math.Sin(theta), math.Sqrt(math.Max(0, 1-u1)))
}

func (l *Lambertian) Sample(uv core.Vec2, hasUV bool, dIn core.Vec3, u core.Vec2) (bsdf.SampledDirection, bool) {
	dOut := cosineHemisphere(l.Rnd)
	pdf := l.Pdf(uv, hasUV, dIn, dOut, core.DomainSolidAngleValue)
	if pdf.IsZero() {
		return bsdf.SampledDirection{}, false
	}
	weight := l.Eval(uv, hasUV, dIn, dOut, core.DomainSolidAngleValue).Div(pdf.Value)
	return bsdf.SampledDirection{Direction: dOut, Weight: weight, PDF: pdf}, true
}

func (l *Lambertian) Eval(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.Color {
	if dOut.Z <= 0 {
		return core.ColorBlack
	}
	return l.Albedo.Scale(dOut.Z / math.Pi)
}

func (l *Lambertian) Pdf(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.PDF {
	if dOut.Z <= 0 {
		return core.NewSolidAnglePDF(0)
	}
	return core.NewSolidAnglePDF(dOut.Z / math.Pi)
}

func (l *Lambertian) Roughness(uv core.Vec2, hasUV bool) float64 { return 1.0 }
func (l *Lambertian) IsSmooth() bool                             { return false }
func (l *Lambertian) IsTwosided() bool                           { return true }

// Mirror is a perfectly specular reflector test double with a Discrete
// PDF, used as the smooth child in the Blend contract-violation test.
type Mirror struct{}

// NewMirror builds a Mirror test double.
func NewMirror() *Mirror { return &Mirror{} }

func (m *Mirror) Sample(uv core.Vec2, hasUV bool, dIn core.Vec3, u core.Vec2) (bsdf.SampledDirection, bool) {
	dOut := core.NewVec3(-dIn.X, -dIn.Y, dIn.Z)
	return bsdf.SampledDirection{Direction: dOut, Weight: core.ColorWhite, PDF: core.NewDiscretePDF(1)}, true
}

func (m *Mirror) Eval(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.Color {
	return core.ColorBlack
}

func (m *Mirror) Pdf(uv core.Vec2, hasUV bool, dIn, dOut core.Vec3, domain core.Domain) core.PDF {
	return core.NewDiscretePDF(0)
}

func (m *Mirror) Roughness(uv core.Vec2, hasUV bool) float64 { return 0 }
func (m *Mirror) IsSmooth() bool                             { return true }
func (m *Mirror) IsTwosided() bool                           { return true }
