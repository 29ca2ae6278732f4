package check

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	checkKeyPrefix         = "check:"
	checkFlagsKeyPrefix    = "check_flags:"
	channelChecksKeyPrefix = "channel_checks:"
)

// ErrCheckNotFound is returned when a check result is not found
var ErrCheckNotFound = errors.New("check not found")

// Config holds configuration for the Redis check repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed check repository
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

// SaveCheck persists a check result to Redis
func (r *redisRepository) SaveCheck(ctx context.Context, input *SaveCheckInput) error {
	if input == nil || input.Check == nil {
		return errors.New("input and check cannot be nil")
	}

	check := input.Check
	if check.ID == "" {
		return errors.New("check ID cannot be empty")
	}

	checkJSON, err := json.Marshal(check)
	if err != nil {
		return fmt.Errorf("failed to marshal check: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, checkKeyPrefix+check.ID, checkJSON, 0)

	if len(check.Flags) > 0 {
		flags := make(map[string]interface{}, len(check.Flags))
		for key, value := range check.Flags {
			flags[key] = value
		}
		pipe.HSet(ctx, checkFlagsKeyPrefix+check.ID, flags)
	}

	// Keep a per-channel history ordered by creation time
	if check.ChannelID != "" {
		pipe.ZAdd(ctx, channelChecksKeyPrefix+check.ChannelID, redis.Z{
			Score:  float64(check.CreatedAt.UnixNano()),
			Member: check.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save check: %w", err)
	}

	return nil
}

// GetCheck retrieves a check result by ID from Redis
func (r *redisRepository) GetCheck(ctx context.Context, input *GetCheckInput) (*models.CheckResult, error) {
	if input == nil || input.CheckID == "" {
		return nil, errors.New("input and check ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	checkCmd := pipe.Get(ctx, checkKeyPrefix+input.CheckID)
	flagsCmd := pipe.HGetAll(ctx, checkFlagsKeyPrefix+input.CheckID)

	// A missing check surfaces as redis.Nil from Exec
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get check: %w", err)
	}

	checkJSON, err := checkCmd.Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCheckNotFound
		}
		return nil, fmt.Errorf("failed to get check: %w", err)
	}

	var check models.CheckResult
	if err := json.Unmarshal([]byte(checkJSON), &check); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check: %w", err)
	}

	flags, err := flagsCmd.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get check flags: %w", err)
	}
	check.Flags = models.Flags(flags)

	return &check, nil
}

// SetFlag writes a single flag without touching the others
func (r *redisRepository) SetFlag(ctx context.Context, input *SetFlagInput) error {
	if input == nil || input.CheckID == "" {
		return errors.New("input and check ID cannot be empty")
	}

	if input.Scope == "" || input.Key == "" {
		return errors.New("flag scope and key cannot be empty")
	}

	exists, err := r.client.Exists(ctx, checkKeyPrefix+input.CheckID).Result()
	if err != nil {
		return fmt.Errorf("failed to check check: %w", err)
	}
	if exists == 0 {
		return ErrCheckNotFound
	}

	err = r.client.HSet(ctx, checkFlagsKeyPrefix+input.CheckID, models.FlagKey(input.Scope, input.Key), input.Value).Err()
	if err != nil {
		return fmt.Errorf("failed to set flag: %w", err)
	}

	return nil
}

// SetMessageID records which Discord message renders the check
func (r *redisRepository) SetMessageID(ctx context.Context, input *SetMessageIDInput) error {
	if input == nil || input.CheckID == "" {
		return errors.New("input and check ID cannot be empty")
	}

	checkKey := checkKeyPrefix + input.CheckID
	checkJSON, err := r.client.Get(ctx, checkKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCheckNotFound
		}
		return fmt.Errorf("failed to get check: %w", err)
	}

	var check models.CheckResult
	if err := json.Unmarshal([]byte(checkJSON), &check); err != nil {
		return fmt.Errorf("failed to unmarshal check: %w", err)
	}

	check.MessageID = input.MessageID
	updatedJSON, err := json.Marshal(&check)
	if err != nil {
		return fmt.Errorf("failed to marshal check: %w", err)
	}

	if err := r.client.Set(ctx, checkKey, updatedJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save check: %w", err)
	}

	return nil
}
