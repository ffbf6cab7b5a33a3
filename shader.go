package smolder

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage source builder ---

// UniformKind is the type of a shader uniform declared on a SourceBuilder.
type UniformKind uint8

const (
	// UniformFloat is a scalar float uniform.
	UniformFloat UniformKind = iota
	// UniformVec4 is a four-component uniform (colors, straight alpha).
	UniformVec4
)

func (k UniformKind) kageType() string {
	if k == UniformVec4 {
		return "vec4"
	}
	return "float"
}

// commonSnippet holds the shared compositor helpers injected into every
// effect shader. The functions mirror the Go reference implementation in
// progress.go; keep the two in sync.
const commonSnippet = `const blurWidth = 0.01

func normCoord(src vec2) vec2 {
	return (src - imageSrc0Origin()) / imageSrc0Size()
}

func easedPhase(progress, start, duration float) float {
	return smoothstep(0, 1, clamp((progress-start)/duration, 0, 1))
}

func edgeGradient(u float) float {
	if u < 0.5 {
		return 2 * u
	}
	return 2 - 2*u
}

func travelingMask(eased, gradient float) float {
	return 1 - smoothstep(0, 1, clamp((eased-gradient)/blurWidth, 0, 1))
}
`

// fragmentPrologue runs at the fixed hook point before every effect body:
// it samples the window texture, converts premultiplied to straight alpha
// (exactly once in the pipeline, guarded against zero), and derives the
// direction-corrected shape progress from the host globals.
const fragmentPrologue = `	px := imageSrc0At(src)
	if px.a > 0 {
		px.rgb /= px.a
	}
	progress := clamp(Progress, 0, 1)
	if ForOpening > 0.5 {
		progress = 1 - progress
	}
`

type constDecl struct {
	name  string
	value float64
}

type uniformDecl struct {
	name string
	kind UniformKind
}

// SourceBuilder assembles a Kage fragment shader from typed snippet
// objects: constant declarations, uniform declarations, shared helper
// functions, and an effect body inserted at a fixed fragment-stage hook
// point. Output is deterministic — everything is emitted in declaration
// order, with no runtime interpolation of settings values.
//
// Two uniforms are always declared: Progress (the host's [0,1] elapsed
// scalar) and ForOpening (1 for opening, 0 for closing). Instance.Draw
// writes both each frame.
type SourceBuilder struct {
	consts   []constDecl
	uniforms []uniformDecl
	body     string
}

// NewSourceBuilder creates an empty builder.
func NewSourceBuilder() *SourceBuilder {
	return &SourceBuilder{}
}

// Const declares a shader-level constant.
func (b *SourceBuilder) Const(name string, value float64) *SourceBuilder {
	b.consts = append(b.consts, constDecl{name, value})
	return b
}

// Uniform declares a per-transition uniform written by the effect's
// configuration step.
func (b *SourceBuilder) Uniform(name string, kind UniformKind) *SourceBuilder {
	b.uniforms = append(b.uniforms, uniformDecl{name, kind})
	return b
}

// Fragment sets the effect's code block. The body has access to the
// Fragment parameters (dst, src, color), the sampled straight-alpha pixel
// px, the direction-corrected progress, every declared uniform, and the
// shared helpers (normCoord, easedPhase, edgeGradient, travelingMask).
// It must return the output vec4, premultiplied.
func (b *SourceBuilder) Fragment(body string) *SourceBuilder {
	b.body = body
	return b
}

// Source returns the complete Kage program.
func (b *SourceBuilder) Source() []byte {
	var sb strings.Builder
	sb.WriteString("//kage:unit pixels\npackage main\n\n")

	for _, c := range b.consts {
		sb.WriteString("const ")
		sb.WriteString(c.name)
		sb.WriteString(" = ")
		sb.WriteString(strconv.FormatFloat(c.value, 'g', -1, 64))
		sb.WriteString("\n")
	}
	if len(b.consts) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("var Progress float\nvar ForOpening float\n")
	for _, u := range b.uniforms {
		sb.WriteString("var ")
		sb.WriteString(u.name)
		sb.WriteString(" ")
		sb.WriteString(u.kind.kageType())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(commonSnippet)
	sb.WriteString("\nfunc Fragment(dst vec4, src vec2, color vec4) vec4 {\n")
	sb.WriteString(fragmentPrologue)
	sb.WriteString(b.body)
	sb.WriteString("}\n")
	return []byte(sb.String())
}

// --- Shader instance ---

// Instance is a compiled, reusable shader program for one effect type.
// Its uniform table is fixed at construction — the set of writable names
// never changes afterward, only their values. Instances are created
// lazily on pool miss and reused across transitions; uniform values left
// over from a previous transition are stale until the next configuration
// step overwrites them.
type Instance struct {
	effectID string
	shader   *ebiten.Shader
	declared map[string]UniformKind
	uniforms map[string]any
	vecBufs  map[string][]float32 // persistent buffers for vec4 uniforms
	acquired bool
	pool     *Pool
	op       ebiten.DrawRectShaderOptions
}

// newInstance compiles the builder's source and resolves the uniform
// table. Compilation happens exactly once per instance; failure is a
// programming error in the effect's shader and panics.
func newInstance(effectID string, b *SourceBuilder) *Instance {
	shader, err := ebiten.NewShader(b.Source())
	if err != nil {
		panic("smolder: failed to compile " + effectID + " shader: " + err.Error())
	}
	inst := &Instance{
		effectID: effectID,
		shader:   shader,
		declared: make(map[string]UniformKind, len(b.uniforms)),
		uniforms: make(map[string]any, len(b.uniforms)+2),
		vecBufs:  make(map[string][]float32),
	}
	for _, u := range b.uniforms {
		inst.declared[u.name] = u.kind
		if u.kind == UniformVec4 {
			buf := make([]float32, 4)
			inst.vecBufs[u.name] = buf
			inst.uniforms[u.name] = buf
		} else {
			inst.uniforms[u.name] = float32(0)
		}
	}
	logger().Debug("shader pipeline built", "effect", effectID)
	return inst
}

// EffectID returns the id of the effect this instance renders.
func (i *Instance) EffectID() string {
	return i.effectID
}

// SetFloat writes a scalar uniform. Writing a name that was not declared
// at construction is a contract violation and panics.
func (i *Instance) SetFloat(name string, v float64) {
	kind, ok := i.declared[name]
	if !ok || kind != UniformFloat {
		panic("smolder: " + i.effectID + ": no float uniform " + name)
	}
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API,
	// but this only runs once per transition.
	i.uniforms[name] = float32(v)
}

// SetColor writes a vec4 uniform as straight (non-premultiplied) RGBA.
// Premultiplication, where needed, happens inside the shader.
func (i *Instance) SetColor(name string, c Color) {
	kind, ok := i.declared[name]
	if !ok || kind != UniformVec4 {
		panic("smolder: " + i.effectID + ": no vec4 uniform " + name)
	}
	buf := i.vecBufs[name]
	buf[0] = float32(c.R)
	buf[1] = float32(c.G)
	buf[2] = float32(c.B)
	buf[3] = float32(c.A)
}

// Draw renders src through the effect shader into dst with the given
// elapsed progress. Called once per frame by the host; progress is
// clamped defensively. The per-frame writes reuse the persistent uniform
// table — no allocation beyond the two boxed scalars.
func (i *Instance) Draw(dst, src *ebiten.Image, progress float64, forOpening bool) {
	i.uniforms["Progress"] = float32(clamp01(progress))
	opening := float32(0)
	if forOpening {
		opening = 1
	}
	i.uniforms["ForOpening"] = opening

	bounds := src.Bounds()
	i.op.Images[0] = src
	i.op.Uniforms = i.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), i.shader, &i.op)
}

// Free returns the instance to the pool it was acquired from. Safe to
// call at any transition progress — early cancellation needs no other
// cleanup.
func (i *Instance) Free() {
	if i.pool != nil {
		i.pool.Release(i)
	}
}

// deallocate releases the compiled program. Called only from Pool.DrainAll.
func (i *Instance) deallocate() {
	if i.shader != nil {
		i.shader.Deallocate()
		i.shader = nil
	}
}
