package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutGuard pose un verrou par client autour de la soumission de commande,
// pour que deux clics rapides ne créent pas deux commandes.
type CheckoutGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutGuard crée un garde avec un TTL de sécurité : si le process meurt
// en plein checkout, le verrou expire tout seul.
func NewCheckoutGuard(client *redis.Client, ttl time.Duration) *CheckoutGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CheckoutGuard{client: client, ttl: ttl}
}

// Acquire tente de poser le verrou. Retourne false si une soumission est déjà
// en cours pour ce client.
func (g *CheckoutGuard) Acquire(ctx context.Context, customerID int64) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKey(customerID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquisition verrou checkout: %w", err)
	}
	return ok, nil
}

// Release relâche le verrou, que la soumission ait réussi ou non.
func (g *CheckoutGuard) Release(ctx context.Context, customerID int64) error {
	if err := g.client.Del(ctx, guardKey(customerID)).Err(); err != nil {
		return fmt.Errorf("libération verrou checkout: %w", err)
	}
	return nil
}

func guardKey(customerID int64) string {
	return fmt.Sprintf("checkout_lock:%d", customerID)
}
