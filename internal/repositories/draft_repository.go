package repositories

import (
	"encoding/json"
	"log"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// DraftRepository — черновик обратной связи (munga_comm_draft).
type DraftRepository struct {
	state *StateRepository
}

func NewDraftRepository(state *StateRepository) *DraftRepository {
	return &DraftRepository{state: state}
}

func (r *DraftRepository) Get() (*models.FeedbackDraft, error) {
	raw, err := r.state.Get(KeyCommDraft)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var d models.FeedbackDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		log.Printf("[draft] unparseable record, treating as absent: %v", err)
		return nil, nil
	}
	return &d, nil
}

func (r *DraftRepository) Save(d *models.FeedbackDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.state.Set(KeyCommDraft, raw)
}

func (r *DraftRepository) Delete() error {
	return r.state.Delete(KeyCommDraft)
}
