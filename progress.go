package smolder

import "fmt"

// This file is the reference implementation of the progress compositor:
// the math that turns one elapsed-progress scalar into the per-phase,
// per-pixel masks an effect's fragment shader evaluates. The Kage helper
// snippet emitted by SourceBuilder mirrors these functions exactly, so
// shader output can be predicted (and golden-tested) from Go.

// blurWidth is the antialiasing width of every traveling wipe boundary,
// as a fraction of the folded gradient. Must stay positive and match the
// blurWidth constant in the Kage helper snippet.
const blurWidth = 0.01

// Directed converts raw elapsed progress into shape progress. Effects
// author their shape for closing (forward time); opening plays the
// identical shape in reverse. The input is clamped to [0, 1] defensively
// even though hosts are expected to supply normalized values.
func Directed(p float64, forOpening bool) float64 {
	p = clamp01(p)
	if forOpening {
		return 1 - p
	}
	return p
}

// Smoothstep is the cubic ease 3t²-2t³ on the clamped input: 0 at t=0,
// 1 at t=1, zero slope at both ends.
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// EdgeGradient folds a normalized coordinate u around the midpoint,
// giving 0 at both edges and 1 at the center.
func EdgeGradient(u float64) float64 {
	u = clamp01(u)
	if u < 0.5 {
		return 2 * u
	}
	return 2 - 2*u
}

// TravelingMask combines a phase's eased progress with a spatial gradient
// into a soft boundary antialiased over blurWidth. At eased=0 the mask is
// 1 everywhere; as eased approaches 1 the boundary sweeps from the
// gradient's extremes (g=0) toward its center (g=1).
//
// blurWidth must be positive; it is a compile-time constant in every
// shipped effect, validated by Phase checking at configuration time.
func TravelingMask(eased, gradient, blurWidth float64) float64 {
	return 1 - Smoothstep(clamp01((eased-gradient)/blurWidth))
}

// MixRGB linearly blends each channel of a toward b by t. Alpha is left
// untouched; the caller owns the final alpha computation.
func MixRGB(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A,
	}
}

// UnpremultiplyRGB converts a premultiplied color to straight alpha,
// guarded against zero alpha. This conversion happens at exactly one
// point in the compositing pipeline: before the color blend.
func UnpremultiplyRGB(c Color) Color {
	if c.A <= 0 {
		return Color{A: c.A}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// --- Timing phases ---

// Phase is a named sub-interval of transition progress. Each phase drives
// one independent spatial mask; phases may overlap in time.
type Phase struct {
	Name string
	// Start is the progress fraction at which the phase begins, in [0, 1].
	Start float64
	// Duration is the progress fraction the phase spans. Must be positive.
	Duration float64
}

// Validate reports whether the phase's timing parameters are usable.
// Zero-duration phases are rejected here, at configuration time, so the
// per-frame math never divides by zero.
func (ph Phase) Validate() error {
	if ph.Start < 0 || ph.Start > 1 {
		return fmt.Errorf("phase %q: start %v outside [0, 1]", ph.Name, ph.Start)
	}
	if ph.Duration <= 0 {
		return fmt.Errorf("phase %q: duration %v must be positive", ph.Name, ph.Duration)
	}
	return nil
}

// Local returns the phase-local progress: how far through this phase the
// overall progress is, clamped to [0, 1]. Monotonically non-decreasing in
// progress for any valid phase.
func (ph Phase) Local(progress float64) float64 {
	return clamp01((clamp01(progress) - ph.Start) / ph.Duration)
}

// Eased returns the smoothed phase-local progress.
func (ph Phase) Eased(progress float64) float64 {
	return Smoothstep(ph.Local(progress))
}

// validatePhases panics on the first invalid phase. Effects call this
// once, at construction, so a bad phase table is caught before any
// transition runs.
func validatePhases(phases []Phase) {
	for _, ph := range phases {
		if err := ph.Validate(); err != nil {
			panic("smolder: " + err.Error())
		}
	}
}
