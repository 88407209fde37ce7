package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

const moveKeyPrefix = "move:"

// MoveRepository caches the chosen bot move per position key.
type MoveRepository interface {
	Get(ctx context.Context, key string) (*entity.CachedMove, error)
	Set(ctx context.Context, key string, move *entity.CachedMove) error
	Delete(ctx context.Context, key string) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores moves in redis. A zero ttl keeps keys forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Set(ctx context.Context, key string, move *entity.CachedMove) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKeyPrefix+key, moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, key string) (*entity.CachedMove, error) {
	response, err := that.client.Get(ctx, moveKeyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move: %w", err)
	}

	var move entity.CachedMove
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &move, nil
}

func (that *dbMove) Delete(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, moveKeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
