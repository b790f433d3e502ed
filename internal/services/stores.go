package services

import "github.com/sunjoe508/inteligent-munga/internal/models"

// Типизированные хранилища логических записей: каждый сервис зависит
// только от тех документов, которыми владеет. Реализации — в
// repositories (JSON-документы поверх Postgres), в тестах — in-memory.

type RegistryStore interface {
	List() ([]models.Operator, error)
	FindByEmail(email string) (*models.Operator, error)
	Append(op models.Operator) error
}

type SessionStore interface {
	Get() (*models.Session, error)
	Save(s *models.Session) error
	Delete() error
}

type ChatStore interface {
	List() ([]models.ChatMessage, error)
	SaveAll(msgs []models.ChatMessage) error
	Delete() error
}

type DraftStore interface {
	Get() (*models.FeedbackDraft, error)
	Save(d *models.FeedbackDraft) error
	Delete() error
}

type VaultStore interface {
	Get() (*models.VaultDocument, error)
	Save(v *models.VaultDocument) error
	Delete() error
}
