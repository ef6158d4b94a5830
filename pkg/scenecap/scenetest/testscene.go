// Package scenetest provides a tiny brute-force two-sphere scene
// implementing scenecap.Scene, shared by pkg/integrator and pkg/mc's
// end-to-end property tests. Like pkg/bsdf/bsdftest, this lives in an
// exported subpackage rather than a _test.go file: Go test files are
// package-private, and both pkg/integrator and pkg/mc need the same
// scene double.
//
// The two spheres and their intersection math are grounded on
// original_source/../df07-go-progressive-raytracer's
// pkg/geometry/sphere.go Hit method (quadratic sphere intersection,
// outward-normal UV derivation); the overall "assemble a couple of
// shapes with materials into a Scene" shape follows
// pkg/scene/cornell.go's NewCornellScene.
package scenetest

import (
	"math"
	"math/rand"

	"github.com/lumenrender/lumen/pkg/bsdf"
	"github.com/lumenrender/lumen/pkg/bsdf/bsdftest"
	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// sphere is a brute-force intersectable primitive with a fixed material
// and, if emissive, a fixed radiance.
type sphere struct {
	center   core.Vec3
	radius   float64
	material bsdf.BSDF
	emission core.Color
	isLight  bool
}

func (s *sphere) IsLight() bool        { return s.isLight }
func (s *sphere) Emission() core.Color { return s.emission }

func (s *sphere) hit(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < ray.TMin || root > ray.TMax {
		root = (-halfB + sqrtD) / a
		if root < ray.TMin || root > ray.TMax {
			return core.Intersection{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.center).Multiply(1.0 / s.radius)

	its := core.NewIntersection(root, normal, normal, point, core.Vec2{}, false, s, ray.Direction)
	return its, true
}

// TestScene is a furnace-style scene: one emissive sphere overhead and one
// diffuse sphere below it, lit by nothing else. Small enough that its
// analytic radiance can be reasoned about in tests, but with enough
// structure (occlusion, NEE, MIS) to exercise a full path-tracing pass.
type TestScene struct {
	Light  *sphere
	Ground *sphere
	Width  int
	Height int
	Spp    int
	NThreads int
	rnd    *rand.Rand
}

// NewFurnaceScene builds a TestScene with a spherical light of the given
// radiance directly above a Lambertian ground sphere.
func NewFurnaceScene(lightRadiance core.Color, albedo core.Color) *TestScene {
	rnd := rand.New(rand.NewSource(1))
	return &TestScene{
		Light: &sphere{
			center:   core.NewVec3(0, 5, 0),
			radius:   1.0,
			material: bsdftest.NewLambertian(core.ColorBlack, rnd),
			emission: lightRadiance,
			isLight:  true,
		},
		Ground: &sphere{
			center:   core.NewVec3(0, -1000, 0),
			radius:   1000,
			material: bsdftest.NewLambertian(albedo, rnd),
		},
		Width:  4,
		Height: 4,
		Spp:    16,
		NThreads: 1,
		rnd:    rnd,
	}
}

func (t *TestScene) shapes() []*sphere { return []*sphere{t.Light, t.Ground} }

// Trace implements scenecap.Scene.
func (t *TestScene) Trace(ray core.Ray) (core.Intersection, bsdf.BSDF, bool) {
	var closest core.Intersection
	var material bsdf.BSDF
	found := false
	best := ray.TMax

	for _, s := range t.shapes() {
		bounded := ray
		bounded.TMax = best
		its, ok := s.hit(bounded)
		if !ok {
			continue
		}
		found = true
		best = its.Distance
		closest = its
		material = s.material
	}
	return closest, material, found
}

// Occluded implements scenecap.Scene.
func (t *TestScene) Occluded(from, to core.Vec3) bool {
	d := to.Subtract(from)
	dist := d.Length()
	if dist < core.RayEpsilon {
		return false
	}
	ray := core.NewRay(from, d.Normalize())
	ray.TMax = dist - core.RayEpsilon*10
	for _, s := range t.shapes() {
		if _, ok := s.hit(ray); ok {
			return true
		}
	}
	return false
}

// SampleLight implements scenecap.Scene, sampling a point on the sphere
// light uniformly over its visible solid angle is more than this double
// needs; it samples uniformly over the full sphere surface instead and
// accepts the resulting variance.
func (t *TestScene) SampleLight(point core.Vec3, u1 float64, u2 core.Vec2) (scenecap.LightSample, bool) {
	z := 1 - 2*u2.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2.Y
	localPoint := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z).Multiply(t.Light.radius)
	surfacePoint := t.Light.center.Add(localPoint)

	toLight := surfacePoint.Subtract(point)
	dist2 := toLight.LengthSquared()
	if dist2 < 1e-12 {
		return scenecap.LightSample{}, false
	}
	dist := math.Sqrt(dist2)
	dir := toLight.Multiply(1 / dist)

	normal := localPoint.Multiply(1.0 / t.Light.radius)
	cosLight := normal.Dot(dir.Negate())
	if cosLight <= 0 {
		return scenecap.LightSample{}, false
	}

	area := 4 * math.Pi * t.Light.radius * t.Light.radius
	pdfArea := 1.0 / area
	pdfSolidAngle := pdfArea * dist2 / cosLight

	weight := t.Light.emission.Scale(1 / pdfSolidAngle)
	return scenecap.LightSample{
		Point:     surfacePoint,
		Direction: dir,
		Weight:    weight,
		PDF:       core.NewSolidAnglePDF(pdfSolidAngle),
	}, true
}

// DirectPDF implements scenecap.Scene for a BSDF sample that happens to
// land on the light sphere.
func (t *TestScene) DirectPDF(ray core.Ray, its core.Intersection) core.PDF {
	toLight := its.Point.Subtract(ray.Origin)
	dist2 := toLight.LengthSquared()
	cosLight := its.NormalGeometry.Dot(ray.Direction.Negate())
	if cosLight <= 0 {
		return core.NewSolidAnglePDF(0)
	}
	area := 4 * math.Pi * t.Light.radius * t.Light.radius
	pdfArea := 1.0 / area
	return core.NewSolidAnglePDF(pdfArea * dist2 / cosLight)
}

// EnvironmentLuminance implements scenecap.Scene; this furnace has no
// background radiance.
func (t *TestScene) EnvironmentLuminance(direction core.Vec3) core.Color {
	return core.ColorBlack
}

type pinholeCamera struct {
	origin core.Vec3
	width  int
	height int
}

func (c *pinholeCamera) Generate(pixel core.Vec2) core.Ray {
	u := (pixel.X/float64(c.width))*2 - 1
	v := (pixel.Y/float64(c.height))*2 - 1
	dir := core.NewVec3(u, -3, v).Normalize()
	return core.NewRay(c.origin, dir)
}

// Camera implements scenecap.Scene with a fixed downward-looking pinhole
// above the ground sphere.
func (t *TestScene) Camera() scenecap.Camera {
	return &pinholeCamera{origin: core.NewVec3(0, 2, 0), width: t.Width, height: t.Height}
}

func (t *TestScene) ImageWidth() int       { return t.Width }
func (t *TestScene) ImageHeight() int      { return t.Height }
func (t *TestScene) SamplesPerPixel() int  { return t.Spp }
func (t *TestScene) Threads() int          { return t.NThreads }
