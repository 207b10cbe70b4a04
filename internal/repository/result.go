package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/goose-backend/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	winsKey         = "wins"
)

var ErrResultNotFound = errors.New("result not found")

// ResultRepository keeps the outcome of finished games and a per-player win tally.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, gameID string) (*entity.Result, error)
	Wins(ctx context.Context, player string) (int, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.GameID, resultJSON, 0)
		pipe.HIncrBy(ctx, winsKey, result.Winner, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, gameID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+gameID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Wins(ctx context.Context, player string) (int, error) {
	wins, err := that.client.HGet(ctx, winsKey, player).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get wins: %w", err)
	}

	return wins, nil
}
