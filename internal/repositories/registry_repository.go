package repositories

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// RegistryRepository — реестр операторов: JSON-массив под ключом
// munga_user_db. Записи только добавляются, удаления/ротации нет.
type RegistryRepository struct {
	state *StateRepository
}

func NewRegistryRepository(state *StateRepository) *RegistryRepository {
	return &RegistryRepository{state: state}
}

// List — весь реестр; битый документ трактуем как пустой (silent ignore).
func (r *RegistryRepository) List() ([]models.Operator, error) {
	raw, err := r.state.Get(KeyRegistry)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var ops []models.Operator
	if err := json.Unmarshal(raw, &ops); err != nil {
		log.Printf("[registry] unparseable record, treating as empty: %v", err)
		return nil, nil
	}
	return ops, nil
}

// FindByEmail — поиск без учёта регистра; (nil, nil) если оператора нет.
func (r *RegistryRepository) FindByEmail(email string) (*models.Operator, error) {
	ops, err := r.List()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range ops {
		if strings.ToLower(ops[i].Email) == email {
			return &ops[i], nil
		}
	}
	return nil, nil
}

// Append — дописывает оператора и перезаписывает документ целиком.
func (r *RegistryRepository) Append(op models.Operator) error {
	ops, err := r.List()
	if err != nil {
		return err
	}
	op.Email = strings.ToLower(strings.TrimSpace(op.Email))
	ops = append(ops, op)
	raw, err := json.Marshal(ops)
	if err != nil {
		return err
	}
	return r.state.Set(KeyRegistry, raw)
}
