// Package scenecap defines the Scene capability the integrators program
// against: tracing, occlusion queries, light sampling, and image/render
// configuration accessors. It deliberately carries no shape list, BSDF
// library, or acceleration structure — those are external collaborators
// per the core's scope, resolved by whatever concrete scene a caller
// supplies.
package scenecap

import (
	"github.com/lumenrender/lumen/pkg/bsdf"
	"github.com/lumenrender/lumen/pkg/core"
)

// LightSample is the result of sampling an emitter from a reference point:
// the sampled point, the direction from the reference point to it, the
// already-PDF-divided weight, and the PDF it was drawn under.
type LightSample struct {
	Point     core.Vec3
	Direction core.Vec3
	Weight    core.Color
	PDF       core.PDF
}

// IsValid reports whether the sample carries any usable contribution.
func (s LightSample) IsValid() bool {
	return !s.PDF.IsZero() && !s.Weight.IsZero()
}

// Camera is the capability that turns a continuous pixel coordinate into a
// primary ray.
type Camera interface {
	Generate(pixel core.Vec2) core.Ray
}

// Scene is the capability every integrator is built against.
type Scene interface {
	// Trace intersects ray against the scene, returning the closest hit
	// and the BSDF attached to it.
	Trace(ray core.Ray) (its core.Intersection, material bsdf.BSDF, ok bool)

	// Occluded reports whether the segment between from and to is blocked
	// by any geometry (a shadow-ray query).
	Occluded(from, to core.Vec3) bool

	// SampleLight samples a point on an emitter visible (in principle)
	// from point, using u1/u2 as the selection and position samples.
	SampleLight(point core.Vec3, u1 float64, u2 core.Vec2) (LightSample, bool)

	// DirectPDF returns the solid-angle PDF of having sampled its via
	// SampleLight, given the ray that hit it — used to MIS-weight a BSDF
	// sample that happens to land on a light.
	DirectPDF(ray core.Ray, its core.Intersection) core.PDF

	// EnvironmentLuminance returns the background radiance along a miss
	// direction.
	EnvironmentLuminance(direction core.Vec3) core.Color

	Camera() Camera

	ImageWidth() int
	ImageHeight() int
	SamplesPerPixel() int
	Threads() int
}
