package actor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	actorKeyPrefix      = "actor:"
	actorItemsKeyPrefix = "actor_items:"
	itemKeyPrefix       = "item:"
	ownerKeyPrefix      = "owner_actor:"

	itemFieldID      = "id"
	itemFieldActorID = "actor_id"
)

var (
	// ErrActorNotFound is returned when an actor is not found
	ErrActorNotFound = errors.New("actor not found")

	// ErrItemNotFound is returned when an item is not found
	ErrItemNotFound = errors.New("item not found")
)

// Config holds configuration for the Redis actor repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed actor repository
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

// SaveActor persists an actor to Redis and indexes it by owner
func (r *redisRepository) SaveActor(ctx context.Context, input *SaveActorInput) error {
	if input == nil || input.Actor == nil {
		return errors.New("input and actor cannot be nil")
	}

	actor := input.Actor
	if actor.ID == "" {
		return errors.New("actor ID cannot be empty")
	}

	actorJSON, err := json.Marshal(&actorRecord{
		ID:       actor.ID,
		Name:     actor.Name,
		OwnerIDs: actor.OwnerIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal actor: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, actorKeyPrefix+actor.ID, actorJSON, 0)

	// The first actor registered for an owner stays their default
	for _, ownerID := range actor.OwnerIDs {
		pipe.SetNX(ctx, ownerKeyPrefix+ownerID, actor.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save actor: %w", err)
	}

	return nil
}

// GetActor retrieves an actor and its items from Redis
func (r *redisRepository) GetActor(ctx context.Context, input *GetActorInput) (*models.Actor, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	actorJSON, err := r.client.Get(ctx, actorKeyPrefix+input.ActorID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	var record actorRecord
	if err := json.Unmarshal([]byte(actorJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor: %w", err)
	}

	items, err := r.getItems(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	return &models.Actor{
		ID:       record.ID,
		Name:     record.Name,
		OwnerIDs: record.OwnerIDs,
		Items:    items,
	}, nil
}

// GetActorByOwner retrieves the default actor of a user
func (r *redisRepository) GetActorByOwner(ctx context.Context, input *GetActorByOwnerInput) (*models.Actor, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	actorID, err := r.client.Get(ctx, ownerKeyPrefix+input.OwnerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor ID for owner: %w", err)
	}

	return r.GetActor(ctx, &GetActorInput{
		ActorID: actorID,
	})
}

// AddItem stores an item and appends it to the actor's item order
func (r *redisRepository) AddItem(ctx context.Context, input *AddItemInput) error {
	if input == nil || input.Item == nil {
		return errors.New("input and item cannot be nil")
	}

	item := input.Item
	if item.ID == "" || item.ActorID == "" {
		return errors.New("item ID and actor ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, actorKeyPrefix+item.ActorID).Result()
	if err != nil {
		return fmt.Errorf("failed to check actor: %w", err)
	}
	if exists == 0 {
		return ErrActorNotFound
	}

	fields := map[string]interface{}{
		itemFieldID:          item.ID,
		itemFieldActorID:     item.ActorID,
		models.ItemFieldName: item.Name,
	}
	if item.Quantity != nil {
		fields[models.ItemFieldQuantity] = *item.Quantity
	}
	if item.UsesValue != nil {
		fields[models.ItemFieldUsesValue] = *item.UsesValue
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, itemKeyPrefix+item.ID, fields)
	pipe.RPush(ctx, actorItemsKeyPrefix+item.ActorID, item.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	return nil
}

// UpdateItem writes only the named fields of an item
func (r *redisRepository) UpdateItem(ctx context.Context, input *UpdateItemInput) error {
	if input == nil || input.ItemID == "" {
		return errors.New("input and item ID cannot be empty")
	}

	if len(input.Set) == 0 && len(input.Increment) == 0 {
		return errors.New("update must change at least one field")
	}

	itemKey := itemKeyPrefix + input.ItemID
	exists, err := r.client.Exists(ctx, itemKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if exists == 0 {
		return ErrItemNotFound
	}

	pipe := r.client.Pipeline()
	for field, value := range input.Set {
		pipe.HSet(ctx, itemKey, field, value)
	}
	for field, delta := range input.Increment {
		pipe.HIncrBy(ctx, itemKey, field, delta)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return nil
}

// getItems loads an actor's items in insertion order
func (r *redisRepository) getItems(ctx context.Context, actorID string) ([]*models.Item, error) {
	itemIDs, err := r.client.LRange(ctx, actorItemsKeyPrefix+actorID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get item IDs for actor: %w", err)
	}

	if len(itemIDs) == 0 {
		return []*models.Item{}, nil
	}

	pipe := r.client.Pipeline()
	itemCommands := make([]*redis.MapStringStringCmd, len(itemIDs))
	for i, itemID := range itemIDs {
		itemCommands[i] = pipe.HGetAll(ctx, itemKeyPrefix+itemID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	items := make([]*models.Item, 0, len(itemIDs))
	for i, cmd := range itemCommands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get item %s: %w", itemIDs[i], err)
		}

		// Item was deleted between listing and fetching
		if len(fields) == 0 {
			continue
		}

		items = append(items, itemFromFields(fields))
	}

	return items, nil
}

func itemFromFields(fields map[string]string) *models.Item {
	return &models.Item{
		ID:        fields[itemFieldID],
		ActorID:   fields[itemFieldActorID],
		Name:      fields[models.ItemFieldName],
		Quantity:  numericField(fields, models.ItemFieldQuantity),
		UsesValue: numericField(fields, models.ItemFieldUsesValue),
	}
}

// numericField returns nil unless the field is present and holds an integer
func numericField(fields map[string]string, name string) *int {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
