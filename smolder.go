package smolder

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied; premultiplication happens inside the shader where it is
// needed, never in uniform values.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default flash/tint color.
var ColorWhite = Color{1, 1, 1, 1}

// Version identifies a host compositor release as major.minor.
type Version struct {
	Major, Minor int
}

// AtLeast reports whether v is the same as or newer than min.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// Actor is the window-like object a transition applies to. It is borrowed
// from the host for the duration of one transition; smolder never stores
// an Actor beyond the AnimationContext that carries it.
type Actor interface {
	// Size returns the actor's current dimensions in pixels.
	Size() (w, h int)
}

// AnimationContext carries the per-transition inputs sampled by an
// effect's configuration step. It exists only for the duration of one
// transition; create a fresh one for each open or close.
//
// Geometry-dependent uniforms are sampled from the context exactly once,
// at transition start. Resizing the actor mid-transition does not rewrite
// already-configured uniforms.
type AnimationContext struct {
	// Actor is the window being opened or closed. Borrowed, not owned.
	Actor Actor
	// StageWidth and StageHeight are the host's output dimensions in
	// pixels, sampled at transition start.
	StageWidth, StageHeight int
	// ForOpening selects the direction: effects author their shape for
	// closing (forward time) and play it in reverse when opening.
	ForOpening bool
	// TestMode forces deterministic override values for any geometry- or
	// timing-dependent uniform, so rendered output is reproducible for
	// golden-image testing regardless of the real stage size.
	TestMode bool
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
