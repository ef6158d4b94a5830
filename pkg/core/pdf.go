package core

// PDFKind tags which measure a PDF value is expressed in. Callers must
// switch on Kind before combining two PDFs (e.g. in an MIS weight) — adding
// a PDF in SolidAngle measure to one in Area measure without converting is a
// contract violation, not a numeric one.
type PDFKind int

const (
	// PDFSolidAngle is density per unit solid angle, used by continuous
	// BSDF lobes and most light sampling strategies.
	PDFSolidAngle PDFKind = iota
	// PDFArea is density per unit surface area, used when a light or BSDF
	// sample is generated by picking a point on a surface.
	PDFArea
	// PDFDiscrete is a selection probability over a finite set of outcomes
	// (perfectly specular lobes, discrete light picking).
	PDFDiscrete
	// PDFLength is density per unit path length, used by participating
	// media distance sampling. Carried for completeness even though this
	// renderer has no volumetric integrator.
	PDFLength
)

// PDF is a tagged probability density. The zero value is
// PDFSolidAngle-tagged zero density.
type PDF struct {
	Kind  PDFKind
	Value float64
}

// NewSolidAnglePDF builds a solid-angle-measure PDF.
func NewSolidAnglePDF(v float64) PDF { return PDF{Kind: PDFSolidAngle, Value: v} }

// NewAreaPDF builds an area-measure PDF.
func NewAreaPDF(v float64) PDF { return PDF{Kind: PDFArea, Value: v} }

// NewDiscretePDF builds a discrete-measure PDF.
func NewDiscretePDF(v float64) PDF { return PDF{Kind: PDFDiscrete, Value: v} }

// NewLengthPDF builds a length-measure PDF.
func NewLengthPDF(v float64) PDF { return PDF{Kind: PDFLength, Value: v} }

// IsZero reports whether the density is zero, regardless of measure.
func (p PDF) IsZero() bool {
	return p.Value == 0
}
