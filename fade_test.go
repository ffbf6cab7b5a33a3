package smolder

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFadeDescriptor(t *testing.T) {
	e := NewFadeEffect()
	if e.ID() != "fade" {
		t.Errorf("ID() = %q, want fade", e.ID())
	}
	if e.Label() != "Fade" {
		t.Errorf("Label() = %q, want Fade", e.Label())
	}
	if v := e.MinHostVersion(); v != (Version{3, 36}) {
		t.Errorf("MinHostVersion() = %v, want {3 36}", v)
	}
}

func TestFadeShaderSourceCompiles(t *testing.T) {
	if _, err := ebiten.NewShader(fadeBuilder().Source()); err != nil {
		t.Fatalf("fade shader does not compile: %v", err)
	}
}

// --- Mask reference math ---

func TestFadeFinalMaskEndpoints(t *testing.T) {
	if m := fadeFinalMask(0, false); m != 1 {
		t.Errorf("closing mask(0) = %v, want 1", m)
	}
	if m := fadeFinalMask(1, false); m != 0 {
		t.Errorf("closing mask(1) = %v, want 0", m)
	}
	if m := fadeFinalMask(0, true); m != 0 {
		t.Errorf("opening mask(0) = %v, want 0", m)
	}
	if m := fadeFinalMask(1, true); m != 1 {
		t.Errorf("opening mask(1) = %v, want 1", m)
	}
}

func TestFadeFinalMaskMonotonic(t *testing.T) {
	prev := 2.0
	for p := 0.0; p <= 1.0001; p += 0.01 {
		m := fadeFinalMask(p, false)
		if m > prev {
			t.Fatalf("closing mask increased at p=%v: %v > %v", p, m, prev)
		}
		prev = m
	}
}

func TestFadeFinalMaskTimeReversalSymmetry(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		opening := fadeFinalMask(p, true)
		closing := fadeFinalMask(1-p, false)
		if math.Abs(opening-closing) > 1e-9 {
			t.Errorf("open(%v) = %v, close(%v) = %v, want equal", p, opening, 1-p, closing)
		}
	}
}

// --- Tweak curves ---

func TestFadeTweakTransitionOpening(t *testing.T) {
	e := NewFadeEffect()
	cfg := DefaultConfig()
	cfg.Fade.Scale = 0.7

	set := e.TweakTransition(AnimationContext{ForOpening: true}, cfg)
	if _, ok := set[CurveOpacity]; !ok {
		t.Fatal("tweak set missing the required opacity baseline curve")
	}
	sx := set[CurveScaleX]
	if sx.From != 0.7 || sx.To != 1 {
		t.Errorf("opening scale-x = %v→%v, want 0.7→1", sx.From, sx.To)
	}
	sy := set[CurveScaleY]
	if sy.From != sx.From || sy.To != sx.To {
		t.Error("scale-x and scale-y curves should match")
	}
}

func TestFadeTweakTransitionClosing(t *testing.T) {
	e := NewFadeEffect()
	cfg := DefaultConfig()
	cfg.Fade.Scale = 0.7

	set := e.TweakTransition(AnimationContext{ForOpening: false}, cfg)
	sx := set[CurveScaleX]
	if sx.From != 1 || sx.To != 0.7 {
		t.Errorf("closing scale-x = %v→%v, want 1→0.7", sx.From, sx.To)
	}
}

// --- Pooling ---

func TestFadeShaderReusesReleasedInstance(t *testing.T) {
	e := NewFadeEffect()
	defer e.CleanUp()

	ctx := AnimationContext{Actor: &testActor{w: 100, h: 100}, StageHeight: 1080, TestMode: true}
	a := e.Shader(ctx, DefaultConfig())
	a.Free()
	b := e.Shader(ctx, DefaultConfig())
	defer b.Free()
	if a != b {
		t.Error("expected the released instance to be reused")
	}
}
