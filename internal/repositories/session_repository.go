package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// SessionRepository — единственная сессия под ключом munga_session.
// В отличие от остальных записей, битый документ здесь НЕ игнорируется:
// наружу уходит ErrCorruptRecord, по которому жизненный цикл делает
// полную очистку.
type SessionRepository struct {
	state *StateRepository
}

func NewSessionRepository(state *StateRepository) *SessionRepository {
	return &SessionRepository{state: state}
}

func (r *SessionRepository) Get() (*models.Session, error) {
	raw, err := r.state.Get(KeySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: session: %v", ErrCorruptRecord, err)
	}
	return &s, nil
}

func (r *SessionRepository) Save(s *models.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.state.Set(KeySession, raw)
}

func (r *SessionRepository) Delete() error {
	return r.state.Delete(KeySession)
}
