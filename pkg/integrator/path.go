package integrator

import (
	"github.com/lumenrender/lumen/pkg/bsdf"
	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/sampler"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// PathIntegrator is unidirectional path tracing with next-event
// estimation and MIS, grounded step-for-step on
// original_source/src/integrators/path.rs's compute_pixel.
type PathIntegrator struct {
	// MaxDepth bounds the number of bounces; nil means unbounded.
	MaxDepth *int
	// MinDepth is the first depth at which contributions count; nil means
	// every depth counts.
	MinDepth *int
	NextEventEstimation bool
	// MaxSurvivalProb caps the Russian-roulette continuation probability.
	// Zero means use the default of 0.95.
	MaxSurvivalProb float64
}

func (p *PathIntegrator) maxSurvivalProb() float64 {
	if p.MaxSurvivalProb <= 0 {
		return 0.95
	}
	return p.MaxSurvivalProb
}

func depthAllowed(depth int, max *int) bool {
	return max == nil || depth < *max
}

func depthCounts(depth int, min *int) bool {
	return min == nil || depth >= *min
}

// SamplePixel traces a single path starting at the given primary ray and
// returns its radiance estimate.
func (p *PathIntegrator) SamplePixel(scene scenecap.Scene, samp sampler.Sampler, ray core.Ray) core.Color {
	li := core.ColorBlack
	throughput := core.ColorWhite

	its, material, ok := scene.Trace(ray)
	if !ok {
		return throughput.Mul(scene.EnvironmentLuminance(ray.Direction))
	}

	depth := 1
	for depthAllowed(depth, p.MaxDepth) {
		if its.CosTheta() > 0 && depthCounts(depth, p.MinDepth) && depth == 1 {
			li = li.Add(throughput.Mul(its.Mesh.Emission()))
		}

		if !material.IsSmooth() && p.NextEventEstimation {
			li = li.Add(p.sampleLight(scene, samp, its, material, throughput, depth))
		}

		sampled, ok := material.Sample(its.UV, its.HasUV, its.Wi, samp.Next2D())
		if !ok {
			return li
		}
		if sampled.PDF.IsZero() {
			return li
		}

		throughput = throughput.Mul(sampled.Weight)

		dOutWorld := its.Frame.ToWorld(sampled.Direction)
		nextRay := core.NewRay(its.Point, dOutWorld)

		nextIts, nextMaterial, hit := scene.Trace(nextRay)
		if !hit {
			li = li.Add(throughput.Mul(scene.EnvironmentLuminance(nextRay.Direction)))
			return li
		}

		if nextIts.Mesh.IsLight() && nextIts.CosTheta() > 0 {
			weightBSDF := 1.0
			if p.NextEventEstimation {
				switch sampled.PDF.Kind {
				case core.PDFSolidAngle:
					lightPDF := scene.DirectPDF(nextRay, nextIts)
					weightBSDF = PowerHeuristic(sampled.PDF.Value, lightPDF.Value)
				case core.PDFDiscrete:
					weightBSDF = 1.0
				default:
					panic("integrator: unsupported PDF domain at BSDF-sample MIS junction")
				}
			}
			if depthCounts(depth, p.MinDepth) && weightBSDF > 0 {
				li = li.Add(throughput.Mul(nextIts.Mesh.Emission()).Scale(weightBSDF))
			}
		}

		its, material = nextIts, nextMaterial

		rrPDF := throughput.ChannelMax()
		if cap := p.maxSurvivalProb(); rrPDF > cap {
			rrPDF = cap
		}
		if rrPDF < samp.Next1D() {
			break
		}
		throughput = throughput.Div(rrPDF)
		depth++
	}

	return li
}

func (p *PathIntegrator) sampleLight(scene scenecap.Scene, samp sampler.Sampler, its core.Intersection, material bsdf.BSDF, throughput core.Color, depth int) core.Color {
	lightSample, ok := scene.SampleLight(its.Point, samp.Next1D(), samp.Next2D())
	if !ok || lightSample.PDF.Kind != core.PDFSolidAngle {
		return core.ColorBlack
	}

	dOutLocal := its.Frame.ToLocal(lightSample.Direction)
	if !lightSample.IsValid() || dOutLocal.Z <= 0 || scene.Occluded(its.Point, lightSample.Point) {
		return core.ColorBlack
	}

	pdfBSDF := material.Pdf(its.UV, its.HasUV, its.Wi, dOutLocal, core.DomainSolidAngleValue)
	if pdfBSDF.Kind != core.PDFSolidAngle {
		panic("integrator: unsupported PDF domain at NEE junction")
	}

	weightLight := PowerHeuristic(lightSample.PDF.Value, pdfBSDF.Value)
	if !depthCounts(depth, p.MinDepth) || weightLight == 0 {
		return core.ColorBlack
	}

	eval := material.Eval(its.UV, its.HasUV, its.Wi, dOutLocal, core.DomainSolidAngleValue)
	return throughput.Mul(eval).Mul(lightSample.Weight).Scale(weightLight)
}
