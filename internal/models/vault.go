package models

// VaultDocument — содержимое экрана Tactical Vault (ключ munga_vault).
type VaultDocument struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updated_at"`
}
