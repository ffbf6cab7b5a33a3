package smolder

import "testing"

// fakeInstance builds a pool entry without compiling a shader pipeline,
// so pool lifecycle tests stay independent of the Kage compiler.
func fakeInstance() *Instance {
	return &Instance{
		effectID: "fake",
		declared: map[string]UniformKind{},
		uniforms: map[string]any{},
	}
}

func TestPoolRoundTripReturnsSameInstance(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	p.Release(a)
	b := p.Acquire()
	if a != b {
		t.Error("expected pool to return the same instance after release")
	}
	p.Release(b)
}

func TestPoolSecondAcquireIsDistinct(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	b := p.Acquire()
	if a == b {
		t.Error("two outstanding acquires should return distinct instances")
	}
	p.Release(a)
	p.Release(b)
}

func TestPoolAcquireMarksAcquired(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	if !a.acquired {
		t.Error("acquired flag should be set after Acquire")
	}
	p.Release(a)
	if a.acquired {
		t.Error("acquired flag should be cleared after Release")
	}
}

func TestPoolReleaseNilNoPanic(t *testing.T) {
	p := NewPool(fakeInstance)
	p.Release(nil) // should not panic
}

func TestPoolReleaseUnacquiredPanics(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	p.Release(a)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double release")
		}
	}()
	p.Release(a)
}

func TestPoolFreeCount(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	b := p.Acquire()
	if p.Free() != 0 {
		t.Errorf("Free() = %d, want 0 with all instances outstanding", p.Free())
	}
	p.Release(a)
	p.Release(b)
	if p.Free() != 2 {
		t.Errorf("Free() = %d, want 2 after releases", p.Free())
	}
}

func TestPoolInstanceFreeReturnsToPool(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	a.Free()
	if p.Free() != 1 {
		t.Errorf("Free() = %d, want 1 after Instance.Free", p.Free())
	}
	if a.acquired {
		t.Error("Instance.Free should clear the acquired flag")
	}
}

// --- DrainAll ---

func TestDrainAllEmptiesFreeList(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	b := p.Acquire()
	p.Release(a)
	p.Release(b)
	p.DrainAll()
	if p.Free() != 0 {
		t.Errorf("Free() = %d after drain, want 0", p.Free())
	}
}

func TestDrainAllIdempotent(t *testing.T) {
	p := NewPool(fakeInstance)
	p.Release(p.Acquire())
	p.DrainAll()
	p.DrainAll() // second call is a no-op
}

func TestDrainAllWithOutstandingPanics(t *testing.T) {
	p := NewPool(fakeInstance)
	a := p.Acquire()
	defer func() {
		if recover() == nil {
			t.Error("expected panic when draining with instances acquired")
		}
		p.Release(a)
	}()
	p.DrainAll()
}

func TestAcquireAfterDrainPanics(t *testing.T) {
	p := NewPool(fakeInstance)
	p.Release(p.Acquire())
	p.DrainAll()
	defer func() {
		if recover() == nil {
			t.Error("expected panic acquiring from a drained pool")
		}
	}()
	p.Acquire()
}

// --- Benchmarks ---

func BenchmarkPoolAcquireRelease(b *testing.B) {
	p := NewPool(fakeInstance)
	// Warmup: construct the single pooled instance.
	p.Release(p.Acquire())

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		p.Release(p.Acquire())
	}
}
