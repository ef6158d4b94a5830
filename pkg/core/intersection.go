package core

// MeshHandle is the opaque per-primitive data an Intersection carries. It
// exposes only what the integrators need directly (is this surface a light,
// and what does it emit); the BSDF itself is resolved through the scene
// capability rather than stored here, so pkg/core never has to import the
// bsdf package.
type MeshHandle interface {
	IsLight() bool
	Emission() Color
}

// Intersection describes a hit point on a traced ray.
type Intersection struct {
	Distance       float64
	NormalGeometry Vec3
	NormalShading  Vec3
	Point          Vec3
	UV             Vec2
	HasUV          bool
	Mesh           MeshHandle
	Frame          Frame
	Wi             Vec3 // incoming direction, in Frame-local space
}

// NewIntersection builds an Intersection, deriving the shading frame and the
// local incoming direction from the shading normal and world-space ray
// direction the way the hit was generated.
func NewIntersection(dist float64, ng, ns, p Vec3, uv Vec2, hasUV bool, mesh MeshHandle, rayDir Vec3) Intersection {
	frame := NewFrame(ns)
	return Intersection{
		Distance:       dist,
		NormalGeometry: ng,
		NormalShading:  ns,
		Point:          p,
		UV:             uv,
		HasUV:          hasUV,
		Mesh:           mesh,
		Frame:          frame,
		Wi:             frame.ToLocal(rayDir.Negate()),
	}
}

// CosTheta returns the cosine of the angle between the local incoming
// direction and the shading normal's local Z axis.
func (its Intersection) CosTheta() float64 {
	return its.Wi.Z
}
