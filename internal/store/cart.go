package store

import (
	"context"
	"errors"
	"log"

	"bookbrew_bff/internal/models"
)

// ErrInvalidQuantity est retourné quand une quantité < 1 est demandée.
// On rejette plutôt que de stocker une quantité nulle ou négative ; la
// vérification contre le stock reste du ressort du backend.
var ErrInvalidQuantity = errors.New("la quantité doit être supérieure ou égale à 1")

// CartStore maintient la liste des articles qu'un client compte acheter et
// les totaux qui en dérivent. Chaque mutation recalcule le total depuis zéro
// puis persiste l'instantané ; un échec de persistance est loggé mais ne
// bloque jamais la mutation.
type CartStore struct {
	repo CartRepository
}

func NewCartStore(repo CartRepository) *CartStore {
	return &CartStore{repo: repo}
}

// Get réhydrate l'instantané du client. Un blob absent ou corrompu donne un
// panier vide : on repart de zéro plutôt que de planter la session.
func (s *CartStore) Get(ctx context.Context, customerID int64) *models.CartSnapshot {
	snap, err := s.repo.Load(ctx, customerID)
	if errors.Is(err, ErrNotFound) {
		return models.EmptyCart()
	}
	if err != nil {
		log.Printf("⚠️ Instantané panier illisible pour le client %d, réinitialisé: %v", customerID, err)
		return models.EmptyCart()
	}

	// Le total persisté n'est pas une donnée de confiance : recalcul systématique.
	snap.Total = snap.ComputeTotal()
	if snap.Items == nil {
		snap.Items = []models.LineItem{}
	}
	return snap
}

// AddItem ajoute un produit au panier. Si une ligne existe déjà pour ce
// productId, sa quantité est incrémentée de 1 ; sinon une nouvelle ligne est
// ajoutée en fin de liste avec quantité 1. Ne peut pas échouer.
func (s *CartStore) AddItem(ctx context.Context, customerID int64, item models.LineItem) *models.CartSnapshot {
	snap := s.Get(ctx, customerID)

	found := false
	for i := range snap.Items {
		if snap.Items[i].ProductID == item.ProductID {
			snap.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		snap.Items = append(snap.Items, item)
	}

	snap.Total = snap.ComputeTotal()
	s.persist(ctx, customerID, snap)
	return snap
}

// RemoveItem retire la ligne correspondant au produit. Un productId absent
// n'est pas une erreur : l'instantané reste inchangé.
func (s *CartStore) RemoveItem(ctx context.Context, customerID int64, productID int64) *models.CartSnapshot {
	snap := s.Get(ctx, customerID)

	items := snap.Items[:0]
	for _, item := range snap.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	snap.Items = items

	snap.Total = snap.ComputeTotal()
	s.persist(ctx, customerID, snap)
	return snap
}

// UpdateQuantity fixe la quantité d'une ligne existante. Quantité < 1
// rejetée ; productId absent sans effet.
func (s *CartStore) UpdateQuantity(ctx context.Context, customerID int64, productID int64, quantity int) (*models.CartSnapshot, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	snap := s.Get(ctx, customerID)
	for i := range snap.Items {
		if snap.Items[i].ProductID == productID {
			snap.Items[i].Quantity = quantity
			break
		}
	}

	snap.Total = snap.ComputeTotal()
	s.persist(ctx, customerID, snap)
	return snap, nil
}

// Clear vide le panier et remet le total à zéro.
func (s *CartStore) Clear(ctx context.Context, customerID int64) *models.CartSnapshot {
	snap := models.EmptyCart()
	if err := s.repo.Delete(ctx, customerID); err != nil {
		log.Printf("⚠️ Erreur suppression panier du client %d: %v", customerID, err)
	}
	return snap
}

// persist écrit l'instantané après la mutation. L'état mémoire reste valide
// même si l'écriture échoue.
func (s *CartStore) persist(ctx context.Context, customerID int64, snap *models.CartSnapshot) {
	if err := s.repo.Save(ctx, customerID, snap); err != nil {
		log.Printf("⚠️ Erreur persistance panier du client %d: %v", customerID, err)
	}
}
