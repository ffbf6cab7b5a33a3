package smolder

import (
	"math"
	"time"
)

// The TV effect collapses the window like an old CRT switching off: a
// top/bottom wipe squeezes it toward the horizontal center line, a
// delayed left/right wipe squeezes the remaining line toward a dot, and a
// short final fade removes what is left. The window is tinted toward the
// flash color as it collapses. Opening plays the same shape in reverse.

// Phase timing, as fractions of transition progress. The three phases
// overlap; each drives one independent mask.
const (
	tvTopBottomDuration = 0.7
	tvLeftRightStart    = 0.6
	tvLeftRightDuration = 0.4
	tvFadeStart         = 0.9
	tvFadeDuration      = 0.1
)

var tvPhases = []Phase{
	{Name: "top-bottom", Start: 0, Duration: tvTopBottomDuration},
	{Name: "left-right", Start: tvLeftRightStart, Duration: tvLeftRightDuration},
	{Name: "fade", Start: tvFadeStart, Duration: tvFadeDuration},
}

// tvBody is the effect's fragment code block, inserted at the builder's
// hook point. px is the straight-alpha window sample, progress the
// direction-corrected shape progress.
const tvBody = `	uv := normCoord(src)
	sv := clamp((uv.y-0.5)*ScaleY+0.5, 0, 1)
	tb := easedPhase(progress, 0.0, topBottomDuration)
	lr := easedPhase(progress, leftRightStart, leftRightDuration)
	ff := easedPhase(progress, fadeStart, fadeDuration)
	mask := travelingMask(tb, edgeGradient(sv)) *
		travelingMask(lr, edgeGradient(uv.x)) *
		(1 - ff)
	rgb := mix(px.rgb, FlashColor.rgb, smoothstep(0, 1, progress))
	alpha := px.a * mask
	return vec4(rgb*alpha, alpha)
`

func tvBuilder() *SourceBuilder {
	return NewSourceBuilder().
		Const("topBottomDuration", tvTopBottomDuration).
		Const("leftRightStart", tvLeftRightStart).
		Const("leftRightDuration", tvLeftRightDuration).
		Const("fadeStart", tvFadeStart).
		Const("fadeDuration", tvFadeDuration).
		Uniform("FlashColor", UniformVec4).
		Uniform("ScaleY", UniformFloat).
		Fragment(tvBody)
}

// TVEffect is the "TV" transition.
type TVEffect struct {
	pool *Pool
}

// NewTVEffect creates the effect. The shader pipeline is not built here;
// it compiles lazily on the first Shader call.
func NewTVEffect() *TVEffect {
	validatePhases(tvPhases)
	return &TVEffect{}
}

// ID returns "tv".
func (e *TVEffect) ID() string { return "tv" }

// Label returns the display name.
func (e *TVEffect) Label() string { return "TV" }

// MinHostVersion returns the oldest supported host release.
func (e *TVEffect) MinHostVersion() Version { return Version{3, 36} }

// PreferencesPage describes the TV settings rows.
func (e *TVEffect) PreferencesPage(b *PageBuilder) *PrefsPage {
	b.Duration("tv-animation-time", "Animation time",
		50*time.Millisecond, 2*time.Second, defaultTVTime)
	b.Color("tv-flash-color", "Flash color", defaultTVFlashColor)
	return b.Page(e.ID(), e.Label())
}

// Shader acquires a pooled instance and writes its uniforms for one
// transition. Actor geometry is sampled here, once — resizing during the
// transition does not rewrite the scale uniform.
func (e *TVEffect) Shader(ctx AnimationContext, cfg Config) *Instance {
	if e.pool == nil {
		e.pool = NewPool(func() *Instance {
			return newInstance(e.ID(), tvBuilder())
		})
	}
	inst := e.pool.Acquire()
	inst.SetColor("FlashColor", cfg.TV.FlashColor)
	inst.SetFloat("ScaleY", tvScale(ctx))
	return inst
}

// TweakTransition returns the constant opacity baseline; the TV shape is
// entirely shader-driven.
func (e *TVEffect) TweakTransition(ctx AnimationContext, cfg Config) CurveSet {
	return baselineCurves()
}

// CleanUp drains the effect's pool. The next Shader call re-creates it.
func (e *TVEffect) CleanUp() {
	if e.pool != nil {
		e.pool.DrainAll()
		e.pool = nil
	}
}

// tvScale derives the vertical gradient scale from the actor's height
// relative to the stage, so the collapse line sweeps at a consistent
// on-screen speed regardless of window size. Test mode forces 1 so
// rendered output is reproducible on any stage.
func tvScale(ctx AnimationContext) float64 {
	if ctx.TestMode {
		return 1
	}
	_, h := ctx.Actor.Size()
	if h < 1 {
		h = 1
	}
	return 2 * math.Max(1, float64(ctx.StageHeight)/float64(h))
}

// tvFinalMask is the Go reference for the shader's mask math, evaluated
// at normalized coordinate (u, v). Kept in sync with tvBody.
func tvFinalMask(p float64, forOpening bool, u, v, scaleY float64) float64 {
	progress := Directed(p, forOpening)
	sv := clamp01((v-0.5)*scaleY + 0.5)
	tb := tvPhases[0].Eased(progress)
	lr := tvPhases[1].Eased(progress)
	ff := tvPhases[2].Eased(progress)
	return TravelingMask(tb, EdgeGradient(sv), blurWidth) *
		TravelingMask(lr, EdgeGradient(u), blurWidth) *
		(1 - ff)
}
