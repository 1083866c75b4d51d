package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mynunny/internal/models"

	"github.com/redis/go-redis/v9"
)

// nunniesListKey caches the public APPROVED-nunny listing. Invalidated on
// every profile status transition.
const nunniesListKey = "nunnies:listing:approved"

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds cache keys as entity:field:value.
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// User caching

func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}
	return s.Set(ctx, s.GenerateKey("user", "id", user.ID), user)
}

func (s *CacheService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, s.GenerateKey("user", "id", userID), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("user not found in cache")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	return s.Delete(ctx, s.GenerateKey("user", "id", userID))
}

// Approved-nunny listing caching

func (s *CacheService) CacheNunnyListing(ctx context.Context, profiles []models.NunnyProfile) error {
	return s.SetWithTTL(ctx, nunniesListKey, profiles, 5*time.Minute)
}

func (s *CacheService) GetNunnyListing(ctx context.Context) ([]models.NunnyProfile, bool, error) {
	var profiles []models.NunnyProfile
	found, err := s.Get(ctx, nunniesListKey, &profiles)
	if err != nil || !found {
		return nil, false, err
	}
	return profiles, true, nil
}

func (s *CacheService) InvalidateNunnyListing(ctx context.Context) error {
	return s.Delete(ctx, nunniesListKey)
}

// FlushAll clears the whole cache database.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}

// Close closes the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
