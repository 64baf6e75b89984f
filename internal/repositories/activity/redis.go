package activity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	activityKeyPrefix = "activity:"
	membersKey        = "activity_members"

	fieldCount = "count"
	fieldLast  = "last"
)

// ErrActivityNotFound is returned when no message was ever recorded for a member
var ErrActivityNotFound = errors.New("activity not found")

// Last-activity updates only move forward so late deliveries cannot rewind them
var advanceLast = redis.NewScript(`
local current = tonumber(redis.call("HGET", KEYS[1], "last") or "0")
local posted = tonumber(ARGV[1])
if posted > current then
	redis.call("HSET", KEYS[1], "last", ARGV[1])
end
return redis.call("HGET", KEYS[1], "last")
`)

// Config holds configuration for the Redis activity repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed activity repository
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

// RecordMessage increments the member's count and returns the updated activity
func (r *redisRepository) RecordMessage(ctx context.Context, input *RecordMessageInput) (*models.Activity, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}
	if input.PostedAt.IsZero() {
		return nil, errors.New("posted at cannot be zero")
	}

	key := activityKey(input.MemberID)

	pipe := r.client.Pipeline()
	countCmd := pipe.HIncrBy(ctx, key, fieldCount, 1)
	lastCmd := advanceLast.Eval(ctx, pipe, []string{key}, input.PostedAt.UnixMilli())
	pipe.SAdd(ctx, membersKey, input.MemberID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	last, err := lastCmd.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to read last activity: %w", err)
	}
	lastMillis, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last activity: %w", err)
	}

	return &models.Activity{
		MemberID:      input.MemberID,
		MessageCount:  countCmd.Val(),
		LastMessageAt: time.UnixMilli(lastMillis).UTC(),
	}, nil
}

// GetActivity retrieves a member's activity from Redis
func (r *redisRepository) GetActivity(ctx context.Context, input *GetActivityInput) (*models.Activity, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, activityKey(input.MemberID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrActivityNotFound
	}

	return parseActivity(input.MemberID, fields)
}

// ListActivity retrieves every tracked member's activity using a pipeline
func (r *redisRepository) ListActivity(ctx context.Context) (*ListActivityOutput, error) {
	memberIDs, err := r.client.SMembers(ctx, membersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked members: %w", err)
	}

	if len(memberIDs) == 0 {
		return &ListActivityOutput{
			Activities: []*models.Activity{},
		}, nil
	}
	sort.Strings(memberIDs)

	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, len(memberIDs))
	for i, memberID := range memberIDs {
		commands[i] = pipe.HGetAll(ctx, activityKey(memberID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	activities := make([]*models.Activity, 0, len(memberIDs))
	for i, cmd := range commands {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Removed between listing the members and reading them
			continue
		}

		activity, err := parseActivity(memberIDs[i], fields)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return &ListActivityOutput{
		Activities: activities,
	}, nil
}

// ResetMessageCount zeroes the count of a tracked member
func (r *redisRepository) ResetMessageCount(ctx context.Context, input *ResetMessageCountInput) error {
	if input == nil || input.MemberID == "" {
		return errors.New("input and member ID cannot be empty")
	}

	key := activityKey(input.MemberID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}
	if exists == 0 {
		return ErrActivityNotFound
	}

	if err := r.client.HSet(ctx, key, fieldCount, 0).Err(); err != nil {
		return fmt.Errorf("failed to reset message count: %w", err)
	}

	return nil
}

func activityKey(memberID string) string {
	return fmt.Sprintf("%s%s", activityKeyPrefix, memberID)
}

func parseActivity(memberID string, fields map[string]string) (*models.Activity, error) {
	activity := &models.Activity{
		MemberID: memberID,
	}

	if raw, ok := fields[fieldCount]; ok {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message count for %s: %w", memberID, err)
		}
		activity.MessageCount = count
	}

	if raw, ok := fields[fieldLast]; ok {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last activity for %s: %w", memberID, err)
		}
		activity.LastMessageAt = time.UnixMilli(millis).UTC()
	}

	return activity, nil
}
