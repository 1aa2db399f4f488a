package ecs

import (
	"sort"

	"github.com/forgeplay/scenerun/ecs/component"
)

// GraphNode is one physics-capable entity offered to the graph builder.
// Oblique is nil for untagged entities.
type GraphNode struct {
	Entity  Entity
	Oblique *component.Oblique
}

// Pair is an unordered entity pair, stored with A < B.
type Pair struct {
	A Entity
	B Entity
}

func makePair(a, b Entity) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// CollisionGraph is the fixed set of entity pairs that receive a solid
// collider. It is built once at scene construction and never rebuilt.
type CollisionGraph struct {
	pairs map[Pair]struct{}
}

// ShouldCollide applies the pairwise filtering rules to two oblique tags
// (nil = untagged):
//   - neither tagged: collide
//   - one tagged with OnlyWithOblique: pass through
//   - one tagged without OnlyWithOblique: collide
//   - both tagged: collide iff groups match exactly
func ShouldCollide(a, b *component.Oblique) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a != nil && b != nil:
		return a.Group == b.Group
	case a != nil:
		return !a.OnlyWithOblique
	default:
		return !b.OnlyWithOblique
	}
}

// BuildCollisionGraph evaluates every unordered node pair. The result is
// deterministic for a given tag set regardless of node order.
func BuildCollisionGraph(nodes []GraphNode) *CollisionGraph {
	g := &CollisionGraph{pairs: make(map[Pair]struct{})}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if ShouldCollide(nodes[i].Oblique, nodes[j].Oblique) {
				g.pairs[makePair(nodes[i].Entity, nodes[j].Entity)] = struct{}{}
			}
		}
	}
	return g
}

// Allowed reports whether the pair holds a collider.
func (g *CollisionGraph) Allowed(a, b Entity) bool {
	if g == nil {
		return true
	}
	_, ok := g.pairs[makePair(a, b)]
	return ok
}

// Pairs returns the colliding pairs in a stable order.
func (g *CollisionGraph) Pairs() []Pair {
	if g == nil {
		return nil
	}
	out := make([]Pair, 0, len(g.pairs))
	for p := range g.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Len returns the number of colliding pairs.
func (g *CollisionGraph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.pairs)
}
