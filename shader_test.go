package smolder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testBuilder() *SourceBuilder {
	return NewSourceBuilder().
		Const("halfLife", 0.5).
		Uniform("Tint", UniformVec4).
		Uniform("Spread", UniformFloat).
		Fragment(`	g := edgeGradient(normCoord(src).x)
	w := travelingMask(easedPhase(progress, 0.0, halfLife), g)
	return px * Spread * Tint.a * w
`)
}

// --- SourceBuilder ---

func TestSourceBuilderDeterministic(t *testing.T) {
	a := testBuilder().Source()
	b := testBuilder().Source()
	if !bytes.Equal(a, b) {
		t.Error("two builds of the same builder should be byte-identical")
	}
}

func TestSourceBuilderSectionOrder(t *testing.T) {
	src := string(testBuilder().Source())

	sections := []string{
		"//kage:unit pixels",
		"package main",
		"const halfLife = 0.5",
		"var Progress float",
		"var ForOpening float",
		"var Tint vec4",
		"var Spread float",
		"func travelingMask(",
		"func Fragment(dst vec4, src vec2, color vec4) vec4 {",
		"px := imageSrc0At(src)",
	}
	last := -1
	for _, want := range sections {
		idx := strings.Index(src, want)
		if idx < 0 {
			t.Fatalf("source missing %q:\n%s", want, src)
		}
		if idx < last {
			t.Fatalf("section %q out of order", want)
		}
		last = idx
	}
}

func TestSourceBuilderUniformsInDeclarationOrder(t *testing.T) {
	src := string(testBuilder().Source())
	if strings.Index(src, "var Tint vec4") > strings.Index(src, "var Spread float") {
		t.Error("uniforms should be emitted in declaration order")
	}
}

func TestSourceBuilderCompiles(t *testing.T) {
	if _, err := ebiten.NewShader(testBuilder().Source()); err != nil {
		t.Fatalf("builder output does not compile: %v", err)
	}
}

// --- Instance uniform table ---

func TestInstanceUniformTableFixedAtConstruction(t *testing.T) {
	inst := newInstance("test", testBuilder())
	inst.SetFloat("Spread", 2.5)
	inst.SetColor("Tint", Color{1, 0.5, 0.25, 1})

	if got := inst.uniforms["Spread"].(float32); got != 2.5 {
		t.Errorf("Spread = %v, want 2.5", got)
	}
	tint := inst.uniforms["Tint"].([]float32)
	if tint[0] != 1 || tint[1] != 0.5 || tint[2] != 0.25 || tint[3] != 1 {
		t.Errorf("Tint = %v, want [1 0.5 0.25 1]", tint)
	}
}

func TestInstanceSetColorReusesBuffer(t *testing.T) {
	inst := newInstance("test", testBuilder())
	before := inst.uniforms["Tint"].([]float32)
	inst.SetColor("Tint", Color{0.5, 0.5, 0.5, 0.5})
	after := inst.uniforms["Tint"].([]float32)
	if &before[0] != &after[0] {
		t.Error("SetColor should write into the persistent buffer, not reallocate")
	}
}

func TestInstanceSetColorIsStraightAlpha(t *testing.T) {
	inst := newInstance("test", testBuilder())
	inst.SetColor("Tint", Color{1, 1, 1, 0.5})
	tint := inst.uniforms["Tint"].([]float32)
	// Not premultiplied: RGB stays at 1 regardless of alpha.
	if tint[0] != 1 || tint[3] != 0.5 {
		t.Errorf("Tint = %v, want straight-alpha [1 1 1 0.5]", tint)
	}
}

func TestInstanceUnknownUniformPanics(t *testing.T) {
	inst := newInstance("test", testBuilder())
	defer func() {
		if recover() == nil {
			t.Error("expected panic writing an undeclared uniform")
		}
	}()
	inst.SetFloat("Nope", 1)
}

func TestInstanceWrongKindPanics(t *testing.T) {
	inst := newInstance("test", testBuilder())
	defer func() {
		if recover() == nil {
			t.Error("expected panic writing a vec4 uniform as float")
		}
	}()
	inst.SetFloat("Tint", 1)
}

func TestNewInstanceBadSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on shader compile failure")
		}
	}()
	newInstance("broken", NewSourceBuilder().Fragment("	this is not kage\n"))
}
