package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist révoque des tokens de session avant leur expiration
// (logout). Un token révoqué reste listé jusqu'à sa date d'expiration
// naturelle, après quoi la clé Redis tombe d'elle-même.
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke ajoute un token (par son jti) à la blacklist.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, until time.Duration) error {
	if until <= 0 {
		return nil // token déjà expiré, rien à révoquer
	}
	return b.client.Set(ctx, blacklistKey(tokenID), "revoked", until).Err()
}

// IsRevoked vérifie si un token est révoqué. En cas d'erreur Redis on laisse
// passer : une panne du cache ne doit pas déconnecter toute la boutique.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) bool {
	exists, err := b.client.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		log.Printf("⚠️ Erreur vérification blacklist: %v", err)
		return false
	}
	return exists > 0
}

func blacklistKey(tokenID string) string {
	return fmt.Sprintf("blacklist:%s", tokenID)
}
