package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"

	"bookbrew_bff/internal/models"
)

// Erreurs de validation locales : détectées avant tout appel réseau et
// montrées telles quelles à l'utilisateur.
var (
	ErrMissingAddress       = errors.New("adresse de livraison requise")
	ErrMissingPaymentMethod = errors.New("moyen de paiement requis")
	ErrEmptyCart            = errors.New("panier vide")
	ErrAlreadyInFlight      = errors.New("une soumission de commande est déjà en cours")
)

// OrderCreator est le service de commandes du backend.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error)
}

// Cart est la vue du panier dont le checkout a besoin.
type Cart interface {
	Get(ctx context.Context, customerID int64) *models.CartSnapshot
	Clear(ctx context.Context, customerID int64) *models.CartSnapshot
}

// Guard protège contre la double soumission : deux clics rapides ne doivent
// pas créer deux commandes.
type Guard interface {
	Acquire(ctx context.Context, customerID int64) (bool, error)
	Release(ctx context.Context, customerID int64) error
}

// Service convertit l'instantané du panier plus une adresse et un moyen de
// paiement en une requête de création de commande, la soumet, et réconcilie
// l'état local : succès → panier vidé, échec → panier intact. Au plus un
// effet de bord.
type Service struct {
	cart   Cart
	orders OrderCreator
	guard  Guard
}

func NewService(cart Cart, orders OrderCreator, guard Guard) *Service {
	return &Service{cart: cart, orders: orders, guard: guard}
}

// Submit soumet la commande du client. Les préconditions (adresse, moyen de
// paiement, panier non vide) sont vérifiées localement avant tout appel réseau.
func (s *Service) Submit(ctx context.Context, customerID int64, addressID int64, paymentMethod string) (*models.Order, error) {
	if addressID == 0 {
		return nil, ErrMissingAddress
	}
	if paymentMethod == "" {
		return nil, ErrMissingPaymentMethod
	}

	snap := s.cart.Get(ctx, customerID)
	if snap.IsEmpty() {
		return nil, ErrEmptyCart
	}

	acquired, err := s.guard.Acquire(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("verrou checkout: %w", err)
	}
	if !acquired {
		return nil, ErrAlreadyInFlight
	}
	defer func() {
		if err := s.guard.Release(ctx, customerID); err != nil {
			log.Printf("⚠️ Erreur libération verrou checkout du client %d: %v", customerID, err)
		}
	}()

	req := buildOrderRequest(customerID, snap, addressID, paymentMethod)

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		// Échec : le panier reste intact, l'utilisateur peut réessayer.
		return nil, err
	}

	s.cart.Clear(ctx, customerID)
	log.Printf("✅ Commande %d créée pour le client %d (transaction %s)", order.ID, customerID, req.Payment.TransactionCode)
	return order, nil
}

// buildOrderRequest construit la requête POST /orders depuis l'instantané.
// Pour chaque ligne : price = prix unitaire d'origine,
// discountValue = price * remise/100 * quantité,
// totalPrice = price * quantité * (1 - remise/100).
func buildOrderRequest(customerID int64, snap *models.CartSnapshot, addressID int64, paymentMethod string) *models.OrderRequest {
	items := make([]models.OrderItem, 0, len(snap.Items))
	for _, li := range snap.Items {
		items = append(items, models.OrderItem{
			ProductID:     li.ProductID,
			Quantity:      li.Quantity,
			Price:         li.UnitPrice,
			DiscountValue: li.UnitPrice * li.DiscountPercentage / 100 * float64(li.Quantity),
			TotalPrice:    li.UnitPrice * float64(li.Quantity) * (1 - li.DiscountPercentage/100),
		})
	}

	return &models.OrderRequest{
		CustomerID: customerID,
		OrderItems: items,
		Status:     models.OrderStatusPending,
		Payment: models.Payment{
			PaymentMethod:   paymentMethod,
			Status:          models.PaymentStatusPending,
			TransactionCode: NewTransactionCode(),
		},
		DeliveryAddress: addressID,
		PromotionIDs:    []int64{},
	}
}

// TransactionCodeLength est la longueur fixe du code de transaction.
const TransactionCodeLength = 12

const transactionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTransactionCode génère un code de transaction alphanumérique aléatoire
// de longueur fixe.
func NewTransactionCode() string {
	buf := make([]byte, TransactionCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand ne doit jamais échouer en pratique
		panic(err)
	}
	for i, b := range buf {
		buf[i] = transactionAlphabet[int(b)%len(transactionAlphabet)]
	}
	return string(buf)
}
