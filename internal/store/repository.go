package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookbrew_bff/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound est retourné quand aucun instantané n'a encore été persisté.
var ErrNotFound = errors.New("aucun instantané persisté")

// CartRepository persiste l'instantané de panier d'un client. Les blobs sont
// du JSON brut sans version de schéma : le store traite ce qui en sort comme
// une entrée non fiable.
type CartRepository interface {
	Load(ctx context.Context, customerID int64) (*models.CartSnapshot, error)
	Save(ctx context.Context, customerID int64, snap *models.CartSnapshot) error
	Delete(ctx context.Context, customerID int64) error
}

// SessionRepository persiste le principal authentifié d'une session.
type SessionRepository interface {
	Load(ctx context.Context, principalID int64) (*models.Principal, error)
	Save(ctx context.Context, principal *models.Principal) error
	Delete(ctx context.Context, principalID int64) error
}

// Les instantanés vivent 30 jours sans activité, comme un panier abandonné.
const snapshotTTL = 30 * 24 * time.Hour

// RedisRepository implémente les deux dépôts sur Redis, le stockage local du BFF.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(customerID int64) string {
	return fmt.Sprintf("cart:%d", customerID)
}

func sessionKey(principalID int64) string {
	return fmt.Sprintf("session:%d", principalID)
}

func (r *RedisRepository) Load(ctx context.Context, customerID int64) (*models.CartSnapshot, error) {
	data, err := r.client.Get(ctx, cartKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture panier: %w", err)
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("décodage panier: %w", err)
	}
	return &snap, nil
}

func (r *RedisRepository) Save(ctx context.Context, customerID int64, snap *models.CartSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sérialisation panier: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(customerID), data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("écriture panier: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, customerID int64) error {
	if err := r.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("suppression panier: %w", err)
	}
	return nil
}

// RedisSessionRepository persiste les principals sous session:<id>.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (r *RedisSessionRepository) Load(ctx context.Context, principalID int64) (*models.Principal, error) {
	data, err := r.client.Get(ctx, sessionKey(principalID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture session: %w", err)
	}

	var principal models.Principal
	if err := json.Unmarshal(data, &principal); err != nil {
		return nil, fmt.Errorf("décodage session: %w", err)
	}
	return &principal, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, principal *models.Principal) error {
	data, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("sérialisation session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(principal.ID), data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("écriture session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, principalID int64) error {
	if err := r.client.Del(ctx, sessionKey(principalID)).Err(); err != nil {
		return fmt.Errorf("suppression session: %w", err)
	}
	return nil
}
