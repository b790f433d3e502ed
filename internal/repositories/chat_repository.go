package repositories

import (
	"encoding/json"
	"log"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// ChatRepository — история исследовательского чата (munga_chat_history).
type ChatRepository struct {
	state *StateRepository
}

func NewChatRepository(state *StateRepository) *ChatRepository {
	return &ChatRepository{state: state}
}

func (r *ChatRepository) List() ([]models.ChatMessage, error) {
	raw, err := r.state.Get(KeyChatHistory)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		log.Printf("[chat] unparseable history, treating as empty: %v", err)
		return nil, nil
	}
	return msgs, nil
}

func (r *ChatRepository) SaveAll(msgs []models.ChatMessage) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return r.state.Set(KeyChatHistory, raw)
}

func (r *ChatRepository) Delete() error {
	return r.state.Delete(KeyChatHistory)
}
