package session

import (
	"context"

	"github.com/google/uuid"
)

// Store keeps planner session state.
type Store interface {
	Create(ctx context.Context, st *State) error
	Get(ctx context.Context, id string) (*State, error)
	// Update applies fn to the stored state atomically and returns the result.
	// fn may return ErrSkip to abort without writing.
	Update(ctx context.Context, id string, fn func(st *State) error) (*State, error)
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}
