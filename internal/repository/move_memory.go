package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryMove struct {
	mu    sync.RWMutex
	moves map[string]entity.CachedMove
}

// NewMemoryMoveRepository keeps moves in process memory for the lifetime of the program.
func NewMemoryMoveRepository() MoveRepository {
	return &memoryMove{
		moves: make(map[string]entity.CachedMove),
	}
}

func (that *memoryMove) Set(_ context.Context, key string, move *entity.CachedMove) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[key] = *move

	return nil
}

func (that *memoryMove) Get(_ context.Context, key string) (*entity.CachedMove, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.moves[key]
	if !ok {
		return nil, ErrMoveNotFound
	}

	return &move, nil
}

func (that *memoryMove) Delete(_ context.Context, key string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.moves[key]; !ok {
		return ErrMoveNotFound
	}

	delete(that.moves, key)

	return nil
}
