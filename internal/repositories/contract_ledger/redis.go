package contract_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	cycleKeyPrefix = "contract_cycle:"
	cyclesKey      = "contract_cycles"
)

// ErrCycleNotFound is returned when a contract cycle is not found
var ErrCycleNotFound = errors.New("contract cycle not found")

// Config holds configuration for the Redis contract ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed contract ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveCycle stores the cycle and indexes it by start time
func (r *redisRepository) SaveCycle(ctx context.Context, input *SaveCycleInput) error {
	if input == nil || input.Cycle == nil {
		return errors.New("input and cycle cannot be nil")
	}

	cycle := input.Cycle
	if cycle.ID == "" {
		return errors.New("cycle ID cannot be empty")
	}
	if cycle.StartedAt.IsZero() {
		return errors.New("cycle start time cannot be zero")
	}

	cycleJSON, err := json.Marshal(cycle)
	if err != nil {
		return fmt.Errorf("failed to marshal cycle: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, cycleKey(cycle.ID), cycleJSON, 0)
	pipe.ZAdd(ctx, cyclesKey, redis.Z{
		Score:  float64(cycle.StartedAt.UnixMilli()),
		Member: cycle.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save cycle: %w", err)
	}

	return nil
}

// GetCycle retrieves a cycle by ID from Redis
func (r *redisRepository) GetCycle(ctx context.Context, input *GetCycleInput) (*models.ContractCycle, error) {
	if input == nil || input.CycleID == "" {
		return nil, errors.New("input and cycle ID cannot be empty")
	}

	cycleJSON, err := r.client.Get(ctx, cycleKey(input.CycleID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCycleNotFound
		}
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	return decodeCycle(cycleJSON)
}

// GetLatestCycle retrieves the cycle with the latest start time
func (r *redisRepository) GetLatestCycle(ctx context.Context) (*models.ContractCycle, error) {
	ids, err := r.client.ZRevRange(ctx, cyclesKey, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest cycle: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrCycleNotFound
	}

	return r.GetCycle(ctx, &GetCycleInput{CycleID: ids[0]})
}

// ListCycles retrieves cycles newest first using a pipeline
func (r *redisRepository) ListCycles(ctx context.Context, input *ListCyclesInput) (*ListCyclesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	ids, err := r.client.ZRevRange(ctx, cyclesKey, 0, input.Limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	if len(ids) == 0 {
		return &ListCyclesOutput{
			Cycles: []*models.ContractCycle{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		commands[i] = pipe.Get(ctx, cycleKey(id))
	}

	// redis.Nil for a missing cycle surfaces here too; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get cycles: %w", err)
	}

	cycles := make([]*models.ContractCycle, 0, len(ids))
	for i, cmd := range commands {
		cycleJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get cycle %s: %w", ids[i], err)
		}

		cycle, err := decodeCycle(cycleJSON)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	return &ListCyclesOutput{
		Cycles: cycles,
	}, nil
}

func cycleKey(cycleID string) string {
	return fmt.Sprintf("%s%s", cycleKeyPrefix, cycleID)
}

func decodeCycle(cycleJSON string) (*models.ContractCycle, error) {
	var cycle models.ContractCycle
	if err := json.Unmarshal([]byte(cycleJSON), &cycle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cycle: %w", err)
	}
	return &cycle, nil
}
