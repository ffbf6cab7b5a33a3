package smolder

import "fmt"

// Effect is the contract every transition effect implements. The metadata
// accessors (ID, Label, MinHostVersion, PreferencesPage, TweakTransition)
// never touch the GPU, so a metadata-only process — a preferences tool,
// a headless settings validator — can use a registered effect freely. The
// shader pipeline is built lazily inside the effect's pool on the first
// Shader call.
type Effect interface {
	// ID is the stable effect identifier, used in settings keys and
	// registry lookups.
	ID() string
	// Label is the human-readable display name.
	Label() string
	// MinHostVersion is the oldest host release the effect supports.
	MinHostVersion() Version
	// PreferencesPage describes the effect's settings rows. Rendering the
	// page is the host's concern.
	PreferencesPage(b *PageBuilder) *PrefsPage
	// Shader acquires a pooled instance and configures its uniforms for
	// one transition. Configuration runs exactly once, here — never per
	// frame. Return the instance with Instance.Free when the transition
	// ends or is cancelled.
	Shader(ctx AnimationContext, cfg Config) *Instance
	// TweakTransition returns host-level transform curves to run
	// concurrently with the shader. Always includes the constant opacity
	// baseline curve.
	TweakTransition(ctx AnimationContext, cfg Config) CurveSet
	// CleanUp drains the effect's pool. Must be called only between
	// transitions. The effect remains usable; the next Shader call
	// re-creates the pool.
	CleanUp()
}

// Registry holds registered effects in registration order and gates them
// by host version.
type Registry struct {
	effects map[string]Effect
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{effects: make(map[string]Effect)}
}

// Register adds an effect. Registering two effects with the same id is a
// programming error and panics.
func (r *Registry) Register(e Effect) {
	id := e.ID()
	if _, dup := r.effects[id]; dup {
		panic("smolder: effect " + id + " registered twice")
	}
	r.effects[id] = e
	r.order = append(r.order, id)
}

// Lookup returns the effect with the given id.
func (r *Registry) Lookup(id string) (Effect, bool) {
	e, ok := r.effects[id]
	return e, ok
}

// Effects returns all registered effects in registration order.
func (r *Registry) Effects() []Effect {
	out := make([]Effect, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.effects[id])
	}
	return out
}

// Supported returns the effects whose minimum host version is satisfied
// by host, in registration order.
func (r *Registry) Supported(host Version) []Effect {
	var out []Effect
	for _, id := range r.order {
		e := r.effects[id]
		if host.AtLeast(e.MinHostVersion()) {
			out = append(out, e)
		}
	}
	return out
}

// AcquireRenderEffect looks up an effect, acquires a configured shader
// instance for one transition, and returns it. The host draws each frame
// through Instance.Draw and calls Instance.Free when the transition ends.
func (r *Registry) AcquireRenderEffect(id string, ctx AnimationContext, cfg Config) (*Instance, error) {
	e, ok := r.effects[id]
	if !ok {
		return nil, fmt.Errorf("smolder: unknown effect %q", id)
	}
	return e.Shader(ctx, cfg), nil
}

// CleanUp drains every registered effect's pool. Call at subsystem
// shutdown, with no transitions in flight.
func (r *Registry) CleanUp() {
	for _, id := range r.order {
		r.effects[id].CleanUp()
	}
}
