package ecs

import (
	"testing"

	"github.com/forgeplay/scenerun/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				if !w.IsAlive(e) {
					t.Fatalf("freshly created entity %v should be alive", e)
				}
				ents = append(ents, e)
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
			for i, e := range ents {
				want := i != c.destroyIndex
				if got := w.IsAlive(e); got != want {
					t.Fatalf("IsAlive(%v) = %v, want %v", e, got, want)
				}
			}
		})
	}
}

func TestEntityGenerationRecycling(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h, 7); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.DestroyEntity(e1)

	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatalf("recycled slot must carry a new generation")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle should be dead after slot reuse")
	}
	if _, ok := Get(w, e2, h); ok {
		t.Fatalf("recycled entity must not inherit the old slot's components")
	}
	if _, ok := Get(w, e1, h); ok {
		t.Fatalf("stale handle must not reach the new slot's components")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	if err := Add(w, e1, hi, 42); err != nil {
		t.Fatalf("Add int: %v", err)
	}
	if err := Add(w, e1, hs, "one"); err != nil {
		t.Fatalf("Add string: %v", err)
	}
	if err := Add(w, e2, hi, 7); err != nil {
		t.Fatalf("Add int to e2: %v", err)
	}

	v, ok := Get(w, e1, hi)
	if !ok || *v != 42 {
		t.Fatalf("Get(e1) = %v, %v; want 42, true", v, ok)
	}

	// mutations through the returned pointer must stick
	*v = 43
	v2, _ := Get(w, e1, hi)
	if *v2 != 43 {
		t.Fatalf("pointer mutation lost: got %d", *v2)
	}

	// Add replaces
	if err := Add(w, e1, hi, 100); err != nil {
		t.Fatalf("re-Add: %v", err)
	}
	v3, _ := Get(w, e1, hi)
	if *v3 != 100 {
		t.Fatalf("re-Add should replace, got %d", *v3)
	}

	if !Remove(w, e1, hi) {
		t.Fatalf("Remove should report true for present component")
	}
	if Has(w, e1, hi) {
		t.Fatalf("component should be gone after Remove")
	}
	if _, ok := Get(w, e2, hi); !ok {
		t.Fatalf("removal on e1 must not disturb e2")
	}
}

func TestAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := w.CreateEntity()
	w.DestroyEntity(e)

	if err := Add(w, e, h, 1); err == nil {
		t.Fatalf("Add to dead entity should fail")
	}
}

func TestForEachOrderAndLiveness(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	var ents []Entity
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h, i); err != nil {
			t.Fatalf("Add: %v", err)
		}
		ents = append(ents, e)
	}
	w.DestroyEntity(ents[2])

	var seen []int
	ForEach(w, h, func(e Entity, v *int) {
		seen = append(seen, *v)
	})

	want := []int{0, 1, 3}
	if len(seen) != len(want) {
		t.Fatalf("ForEach visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("ForEach order %v, want registration order %v", seen, want)
		}
	}
}

func TestForEach2Intersection(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	both := w.CreateEntity()
	onlyA := w.CreateEntity()

	if err := Add(w, both, ha, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, both, hb, "x"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, onlyA, ha, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	count := 0
	ForEach2(w, ha, hb, func(e Entity, a *int, b *string) {
		count++
		if e != both {
			t.Fatalf("ForEach2 visited %v, want %v", e, both)
		}
	})
	if count != 1 {
		t.Fatalf("ForEach2 visited %d entities, want 1", count)
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, ha, 0); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := Add(w, e2, hb, 1.5); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := w.Query(ha.ID(), hb.ID())
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("Query = %v, want [%v]", got, e2)
	}

	all := w.Query(ha.ID())
	if len(all) != 3 {
		t.Fatalf("Query single component returned %d entities, want 3", len(all))
	}
}
