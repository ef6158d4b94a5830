package core

// DomainKind tags which measure a BSDF evaluation or PDF query is expressed
// in, mirroring the PDF tag below so eval/pdf calls agree on units.
type DomainKind int

const (
	// DomainSolidAngle measures directions by solid angle, the default for
	// continuous BSDF lobes.
	DomainSolidAngle DomainKind = iota
	// DomainDiscrete measures a finite set of directions, each with its own
	// selection probability (perfectly specular lobes).
	DomainDiscrete
)

// Domain is a tagged value naming which measure a query is in. It carries no
// payload of its own (unlike PDF, whose value depends on the tag) — it is
// only ever passed in, never returned.
type Domain struct {
	Kind DomainKind
}

// DomainSolidAngleValue is the solid-angle Domain singleton.
var DomainSolidAngleValue = Domain{Kind: DomainSolidAngle}

// DomainDiscreteValue is the discrete Domain singleton.
var DomainDiscreteValue = Domain{Kind: DomainDiscrete}
