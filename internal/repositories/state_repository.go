package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrCorruptRecord — сохранённый документ не распарсился. Для сессии это
// сигнал полной очистки, для остальных записей — «записи нет».
var ErrCorruptRecord = errors.New("corrupt persisted record")

// Ключи логических записей (бывшие ключи localStorage фронтенда).
const (
	KeySession     = "munga_session"
	KeyRegistry    = "munga_user_db"
	KeyChatHistory = "munga_chat_history"
	KeyCommDraft   = "munga_comm_draft"
	KeyVault       = "munga_vault"
)

// StateRepository — key/value-слой поверх Postgres: каждая логическая
// запись лежит целиком как один JSON-документ и перезаписывается
// атомарно (UPSERT). Частичных обновлений нет.
type StateRepository struct {
	DB *sql.DB
}

func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{DB: db}
}

// EnsureSchema — создаёт таблицу состояния, если её ещё нет.
func (r *StateRepository) EnsureSchema() error {
	const q = `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := r.DB.Exec(q); err != nil {
		return fmt.Errorf("app_state schema: %w", err)
	}
	return nil
}

// Get — возвращает документ по ключу; (nil, nil) если записи нет.
func (r *StateRepository) Get(key string) ([]byte, error) {
	const q = `SELECT value FROM app_state WHERE key = $1`
	var value string
	if err := r.DB.QueryRow(q, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("app_state get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *StateRepository) Set(key string, value []byte) error {
	const q = `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.Exec(q, key, string(value), time.Now()); err != nil {
		return fmt.Errorf("app_state set %s: %w", key, err)
	}
	return nil
}

// Delete — идемпотентно удаляет запись.
func (r *StateRepository) Delete(key string) error {
	if _, err := r.DB.Exec(`DELETE FROM app_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("app_state delete %s: %w", key, err)
	}
	return nil
}
