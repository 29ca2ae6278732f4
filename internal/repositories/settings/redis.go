package settings

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
	definitionKeyPrefix = "setting_definition:"
	valuesKey           = "setting_values"
)

// ErrSettingNotRegistered is returned when reading or writing an unknown setting
var ErrSettingNotRegistered = errors.New("setting not registered")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
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

// Register stores the definition of a setting
func (r *redisRepository) Register(ctx context.Context, input *RegisterInput) error {
	if input == nil || input.Setting == nil {
		return errors.New("input and setting cannot be nil")
	}

	setting := input.Setting
	if setting.Namespace == "" || setting.Key == "" {
		return errors.New("setting namespace and key cannot be empty")
	}

	definitionJSON, err := json.Marshal(setting)
	if err != nil {
		return fmt.Errorf("failed to marshal setting: %w", err)
	}

	if err := r.client.Set(ctx, definitionKeyPrefix+setting.FullKey(), definitionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to register setting: %w", err)
	}

	return nil
}

// Get reads a setting value, falling back to the registered default
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Namespace == "" || input.Key == "" {
		return nil, errors.New("input, namespace and key cannot be empty")
	}

	setting, err := r.getDefinition(ctx, input.Namespace, input.Key)
	if err != nil {
		return nil, err
	}

	value, err := r.client.HGet(ctx, valuesKey, setting.FullKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{
				Setting: setting,
				Value:   setting.Default,
			}, nil
		}
		return nil, fmt.Errorf("failed to get setting value: %w", err)
	}

	return &GetOutput{
		Setting: setting,
		Value:   value,
	}, nil
}

// Set stores a value for a registered setting
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Namespace == "" || input.Key == "" {
		return errors.New("input, namespace and key cannot be empty")
	}

	setting, err := r.getDefinition(ctx, input.Namespace, input.Key)
	if err != nil {
		return err
	}

	if err := r.client.HSet(ctx, valuesKey, setting.FullKey(), input.Value).Err(); err != nil {
		return fmt.Errorf("failed to set setting value: %w", err)
	}

	return nil
}

func (r *redisRepository) getDefinition(ctx context.Context, namespace, key string) (*models.Setting, error) {
	lookup := &models.Setting{Namespace: namespace, Key: key}

	definitionJSON, err := r.client.Get(ctx, definitionKeyPrefix+lookup.FullKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingNotRegistered
		}
		return nil, fmt.Errorf("failed to get setting definition: %w", err)
	}

	var setting models.Setting
	if err := json.Unmarshal([]byte(definitionJSON), &setting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal setting definition: %w", err)
	}

	return &setting, nil
}
