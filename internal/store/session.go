package store

import (
	"context"
	"errors"
	"log"

	"bookbrew_bff/internal/models"
)

// SessionStore détient le principal authentifié d'une session. Au plus un
// principal par session ; "connecté" se réduit à "un principal est présent".
type SessionStore struct {
	repo SessionRepository
}

func NewSessionStore(repo SessionRepository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Login enregistre le principal retourné par le backend.
func (s *SessionStore) Login(ctx context.Context, principal *models.Principal) error {
	if err := s.repo.Save(ctx, principal); err != nil {
		return err
	}
	return nil
}

// Logout détruit la session. Un logout sans session n'est pas une erreur.
func (s *SessionStore) Logout(ctx context.Context, principalID int64) {
	if err := s.repo.Delete(ctx, principalID); err != nil {
		log.Printf("⚠️ Erreur suppression session %d: %v", principalID, err)
	}
}

// Current réhydrate le principal de la session. Un blob corrompu vaut
// déconnexion : on ne propage jamais l'erreur de décodage.
func (s *SessionStore) Current(ctx context.Context, principalID int64) (*models.Principal, bool) {
	principal, err := s.repo.Load(ctx, principalID)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		log.Printf("⚠️ Session illisible pour %d, considérée déconnectée: %v", principalID, err)
		return nil, false
	}
	return principal, true
}

// IsAuthenticated est dérivé : vrai si un principal est présent.
func (s *SessionStore) IsAuthenticated(ctx context.Context, principalID int64) bool {
	_, ok := s.Current(ctx, principalID)
	return ok
}
