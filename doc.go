// Package smolder is a framework for shader-driven open and close
// transition effects for window actors rendered by an [Ebitengine] host.
//
// A host — a desktop-shell-style compositor, a game UI layer, anything
// that opens and closes window-like actors — picks an effect, acquires a
// pooled shader instance for the transition, and draws the window's
// texture through it once per frame with the live transition progress.
// Smolder supplies the effect contract, the instance pool, the progress
// compositor math, and two concrete effects (TV and Fade) that
// demonstrate the pattern.
//
// # Quick start
//
//	reg := smolder.NewRegistry()
//	reg.Register(smolder.NewTVEffect())
//
//	cfg := smolder.DefaultConfig()
//	ctx := smolder.AnimationContext{
//		Actor:       window,
//		StageWidth:  1920,
//		StageHeight: 1080,
//		ForOpening:  false,
//	}
//	inst, err := reg.AcquireRenderEffect("tv", ctx, cfg)
//	// each frame, with p advancing 0→1 over the transition:
//	inst.Draw(screen, windowTexture, p, ctx.ForOpening)
//	// when the transition ends (or is cancelled early):
//	inst.Free()
//
// Instances are pooled per effect: acquiring after a release reuses the
// compiled shader program, so repeated transitions allocate no new GPU
// resources. All operations are single-threaded and run inside the
// host's frame callback.
//
// # Effects
//
// An [Effect] bundles static metadata (id, label, minimum host version,
// a declarative preferences page) with a one-time per-transition
// configuration step that writes uniforms from the typed [Config] and the
// actor geometry sampled at transition start. The per-pixel work happens
// in a Kage shader assembled by [SourceBuilder]; the same math is
// available as pure Go functions ([Smoothstep], [EdgeGradient],
// [TravelingMask]) for reference and testing.
//
// Effects may also return host-level tween curves via
// [Effect.TweakTransition] — actor transforms (opacity, scale) that run
// concurrently with the shader, consumed by the host's tween engine or
// by [CurveRunner] (backed by [gween]).
//
// Smolder produces no log output by default; call [SetLogger] to enable.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package smolder
