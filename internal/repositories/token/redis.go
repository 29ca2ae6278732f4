package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	tokenKeyPrefix       = "token:"
	actorTokensKeyPrefix = "actor_tokens:"
	selectionKeyPrefix   = "selected_tokens:"
)

// ErrTokenNotFound is returned when a token is not found
var ErrTokenNotFound = errors.New("token not found")

// Config holds configuration for the Redis token repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed token repository
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

// SaveToken persists a token to Redis
func (r *redisRepository) SaveToken(ctx context.Context, input *SaveTokenInput) error {
	if input == nil || input.Token == nil {
		return errors.New("input and token cannot be nil")
	}

	if input.Token.ID == "" {
		return errors.New("token ID cannot be empty")
	}

	tokenJSON, err := json.Marshal(input.Token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, tokenKeyPrefix+input.Token.ID, tokenJSON, 0)
	if input.Token.ActorID != "" {
		pipe.SAdd(ctx, actorTokensKeyPrefix+input.Token.ActorID, input.Token.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// GetToken retrieves a token by ID from Redis
func (r *redisRepository) GetToken(ctx context.Context, input *GetTokenInput) (*models.Token, error) {
	if input == nil || input.TokenID == "" {
		return nil, errors.New("input and token ID cannot be empty")
	}

	tokenJSON, err := r.client.Get(ctx, tokenKeyPrefix+input.TokenID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	var token models.Token
	if err := json.Unmarshal([]byte(tokenJSON), &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}

	return &token, nil
}

// SelectTokens replaces a user's selection in one transaction
func (r *redisRepository) SelectTokens(ctx context.Context, input *SelectTokensInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	selectionKey := selectionKeyPrefix + input.UserID

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, selectionKey)
	if len(input.TokenIDs) > 0 {
		members := make([]interface{}, len(input.TokenIDs))
		for i, tokenID := range input.TokenIDs {
			members[i] = tokenID
		}
		pipe.SAdd(ctx, selectionKey, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to select tokens: %w", err)
	}

	return nil
}

// GetSelectedTokens retrieves the tokens a user controls from Redis
func (r *redisRepository) GetSelectedTokens(ctx context.Context, input *GetSelectedTokensInput) (*GetSelectedTokensOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	tokenIDs, err := r.client.SMembers(ctx, selectionKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get selected token IDs: %w", err)
	}

	tokens, err := r.getTokens(ctx, tokenIDs)
	if err != nil {
		return nil, err
	}

	return &GetSelectedTokensOutput{
		Tokens: tokens,
	}, nil
}

// GetActorTokens retrieves every token placed for an actor
func (r *redisRepository) GetActorTokens(ctx context.Context, input *GetActorTokensInput) (*GetActorTokensOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	tokenIDs, err := r.client.SMembers(ctx, actorTokensKeyPrefix+input.ActorID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get token IDs for actor: %w", err)
	}

	tokens, err := r.getTokens(ctx, tokenIDs)
	if err != nil {
		return nil, err
	}

	return &GetActorTokensOutput{
		Tokens: tokens,
	}, nil
}

// getTokens loads tokens sorted by ID, skipping any that no longer exist
func (r *redisRepository) getTokens(ctx context.Context, tokenIDs []string) ([]*models.Token, error) {
	if len(tokenIDs) == 0 {
		return []*models.Token{}, nil
	}
	sort.Strings(tokenIDs)

	pipe := r.client.Pipeline()
	tokenCommands := make([]*redis.StringCmd, len(tokenIDs))
	for i, tokenID := range tokenIDs {
		tokenCommands[i] = pipe.Get(ctx, tokenKeyPrefix+tokenID)
	}

	// Tokens removed since they were indexed come back as redis.Nil
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get tokens: %w", err)
	}

	tokens := make([]*models.Token, 0, len(tokenIDs))
	for i, cmd := range tokenCommands {
		tokenJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get token %s: %w", tokenIDs[i], err)
		}

		var token models.Token
		if err := json.Unmarshal([]byte(tokenJSON), &token); err != nil {
			return nil, fmt.Errorf("failed to unmarshal token %s: %w", tokenIDs[i], err)
		}
		tokens = append(tokens, &token)
	}

	return tokens, nil
}
