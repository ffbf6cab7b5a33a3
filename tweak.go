package smolder

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenCurve describes how one host-level actor property interpolates
// over a transition. Curves are independent of the shader's progress
// compositor: the host's tween engine evaluates them concurrently with
// shader rendering.
type TweenCurve struct {
	From, To float64
	Ease     ease.TweenFunc
}

// Tween builds a gween tween for the curve over the given duration.
func (c TweenCurve) Tween(duration time.Duration) *gween.Tween {
	return gween.New(float32(c.From), float32(c.To), float32(duration.Seconds()), c.Ease)
}

// CurveSet is a small named set of transform curves. Every effect's set
// includes the "opacity" baseline curve (constant 1 unless the effect
// dims the whole actor); "scale-x" and "scale-y" are optional.
type CurveSet map[string]TweenCurve

// Curve names recognized by CurveRunner.
const (
	CurveOpacity = "opacity"
	CurveScaleX  = "scale-x"
	CurveScaleY  = "scale-y"
)

// baselineCurves returns a set containing only the required constant
// opacity curve.
func baselineCurves() CurveSet {
	return CurveSet{CurveOpacity: {From: 1, To: 1, Ease: ease.Linear}}
}

// ActorTransform holds the host-level transform values a CurveRunner
// writes each frame. The host applies them to the actor however its
// renderer expects.
type ActorTransform struct {
	Opacity, ScaleX, ScaleY float64
}

// CurveRunner evaluates a CurveSet over a transition's duration for hosts
// that do not have their own tween engine. Call Update(dt) once per
// frame; Done is set when every curve has finished.
type CurveRunner struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	count  int
	Done   bool
}

// Runner builds a CurveRunner writing into tr. Curve names outside the
// recognized set are ignored.
func (s CurveSet) Runner(tr *ActorTransform, duration time.Duration) *CurveRunner {
	tr.Opacity, tr.ScaleX, tr.ScaleY = 1, 1, 1

	r := &CurveRunner{}
	add := func(name string, field *float64) {
		c, ok := s[name]
		if !ok {
			return
		}
		*field = c.From
		r.tweens[r.count] = c.Tween(duration)
		r.fields[r.count] = field
		r.count++
	}
	add(CurveOpacity, &tr.Opacity)
	add(CurveScaleX, &tr.ScaleX)
	add(CurveScaleY, &tr.ScaleY)
	return r
}

// Update advances all curves by dt seconds and writes the current values
// into the target transform.
func (r *CurveRunner) Update(dt float32) {
	if r.Done {
		return
	}
	allDone := true
	for i := 0; i < r.count; i++ {
		val, finished := r.tweens[i].Update(dt)
		*r.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	r.Done = allDone
}
