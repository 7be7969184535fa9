package repository

import (
	"fmt"
	"sync"

	"github.com/bookhaven/storefront/internal/session/domain"
)

// MemorySessionRepository keeps live sessions in memory; they die with
// the process.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *MemorySessionRepository) Create(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *MemorySessionRepository) FindByID(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *MemorySessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
