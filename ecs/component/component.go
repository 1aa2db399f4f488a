package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ID identifies a registered component type.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed key for one component type. Handles are created once
// at package init via NewComponent and passed to the ecs generics.
type Handle[T any] struct {
	id ID
}

func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
