package smolder

// Pool owns every shader instance it has ever constructed for one effect
// type and hands them out for the duration of a transition. Instances are
// built lazily on pool miss (triggering the one-time pipeline compile)
// and destroyed only by DrainAll at subsystem teardown; between
// transitions they are reused indefinitely.
//
// The pool is an explicit object with an owner-managed lifecycle — each
// effect creates its own and drains it in CleanUp. There is no hidden
// module-level free list.
//
// Invariant: an instance in the free list is never acquired; an acquired
// instance is never in the free list. Like the render-texture pools
// elsewhere in this ecosystem, stale state is overwritten on the next
// configuration step, not cleared on release.
type Pool struct {
	build       func() *Instance
	free        []*Instance
	outstanding int
	drained     bool
}

// NewPool creates a pool that constructs instances with build on miss.
func NewPool(build func() *Instance) *Pool {
	return &Pool{build: build}
}

// Acquire pops an instance from the free list, constructing a new one if
// the list is empty. The returned instance is marked acquired; its
// uniform values are stale from the previous transition and must not be
// observed before the effect's configuration step overwrites them.
//
// Acquire after DrainAll is a contract violation and panics: a drained
// pool must be re-created before the effect subsystem is used again.
func (p *Pool) Acquire() *Instance {
	if p.drained {
		panic("smolder: Acquire on drained pool")
	}
	var inst *Instance
	if n := len(p.free); n > 0 {
		inst = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		inst = p.build()
		inst.pool = p
		logger().Debug("pool grew", "effect", inst.effectID, "outstanding", p.outstanding+1)
	}
	inst.acquired = true
	p.outstanding++
	return inst
}

// Release returns an instance to the free list. No GPU-state clearing
// happens here — the next transition's configuration step overwrites the
// uniform table. Releasing nil is a no-op; releasing an instance that is
// not acquired is a contract violation and panics.
func (p *Pool) Release(inst *Instance) {
	if inst == nil {
		return
	}
	if !inst.acquired {
		panic("smolder: Release of instance that is not acquired")
	}
	inst.acquired = false
	p.outstanding--
	p.free = append(p.free, inst)
}

// DrainAll discards the entire free list, releasing the underlying GPU
// programs. It must be called only between transitions: draining while
// instances are still acquired is a contract violation and panics.
// Idempotent — a second call on an already-drained pool does nothing.
func (p *Pool) DrainAll() {
	if p.outstanding > 0 {
		panic("smolder: DrainAll with instances still acquired")
	}
	if p.drained {
		return
	}
	for idx, inst := range p.free {
		inst.deallocate()
		p.free[idx] = nil
	}
	logger().Debug("pool drained", "freed", len(p.free))
	p.free = nil
	p.drained = true
}

// Free reports how many instances are currently pooled.
func (p *Pool) Free() int {
	return len(p.free)
}
