package repositories

import (
	"encoding/json"
	"log"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// VaultRepository — документ Tactical Vault (munga_vault).
type VaultRepository struct {
	state *StateRepository
}

func NewVaultRepository(state *StateRepository) *VaultRepository {
	return &VaultRepository{state: state}
}

func (r *VaultRepository) Get() (*models.VaultDocument, error) {
	raw, err := r.state.Get(KeyVault)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var v models.VaultDocument
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("[vault] unparseable record, treating as absent: %v", err)
		return nil, nil
	}
	return &v, nil
}

func (r *VaultRepository) Save(v *models.VaultDocument) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.state.Set(KeyVault, raw)
}

func (r *VaultRepository) Delete() error {
	return r.state.Delete(KeyVault)
}
