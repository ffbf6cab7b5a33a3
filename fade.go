package smolder

import (
	"time"

	"github.com/tanema/gween/ease"
)

// The Fade effect dissolves the window over a single full-length phase
// while the host scales the actor between the configured scale floor and
// full size. The shader has no spatial gradient and no tint — it exists
// as the minimal demonstration of the effect contract.

var fadePhases = []Phase{
	{Name: "fade", Start: 0, Duration: 1},
}

const fadeBody = `	mask := 1 - easedPhase(progress, 0.0, 1.0)
	alpha := px.a * mask
	return vec4(px.rgb*alpha, alpha)
`

func fadeBuilder() *SourceBuilder {
	return NewSourceBuilder().Fragment(fadeBody)
}

// FadeEffect is the "Fade" transition.
type FadeEffect struct {
	pool *Pool
}

// NewFadeEffect creates the effect.
func NewFadeEffect() *FadeEffect {
	validatePhases(fadePhases)
	return &FadeEffect{}
}

// ID returns "fade".
func (e *FadeEffect) ID() string { return "fade" }

// Label returns the display name.
func (e *FadeEffect) Label() string { return "Fade" }

// MinHostVersion returns the oldest supported host release.
func (e *FadeEffect) MinHostVersion() Version { return Version{3, 36} }

// PreferencesPage describes the Fade settings rows.
func (e *FadeEffect) PreferencesPage(b *PageBuilder) *PrefsPage {
	b.Duration("fade-animation-time", "Animation time",
		50*time.Millisecond, 2*time.Second, defaultFadeTime)
	b.Slider("fade-scale", "Scale", 0.1, 1, defaultFadeScale)
	return b.Page(e.ID(), e.Label())
}

// Shader acquires a pooled instance for one transition. Fade declares no
// per-transition uniforms beyond the host globals, so configuration has
// nothing to overwrite.
func (e *FadeEffect) Shader(ctx AnimationContext, cfg Config) *Instance {
	if e.pool == nil {
		e.pool = NewPool(func() *Instance {
			return newInstance(e.ID(), fadeBuilder())
		})
	}
	return e.pool.Acquire()
}

// TweakTransition scales the actor from the configured floor up to full
// size on opening (eased out), and back down on closing (eased in), with
// the constant opacity baseline alongside.
func (e *FadeEffect) TweakTransition(ctx AnimationContext, cfg Config) CurveSet {
	set := baselineCurves()
	from, to := cfg.Fade.Scale, 1.0
	easing := ease.OutQuad
	if !ctx.ForOpening {
		from, to = 1.0, cfg.Fade.Scale
		easing = ease.InQuad
	}
	set[CurveScaleX] = TweenCurve{From: from, To: to, Ease: easing}
	set[CurveScaleY] = TweenCurve{From: from, To: to, Ease: easing}
	return set
}

// CleanUp drains the effect's pool.
func (e *FadeEffect) CleanUp() {
	if e.pool != nil {
		e.pool.DrainAll()
		e.pool = nil
	}
}

// fadeFinalMask is the Go reference for the shader's mask math. Kept in
// sync with fadeBody.
func fadeFinalMask(p float64, forOpening bool) float64 {
	return 1 - fadePhases[0].Eased(Directed(p, forOpening))
}
