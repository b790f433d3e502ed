package models

// Session — живая сессия оператора. Хранится целиком как JSON-документ
// под ключом munga_session и живёт, пока now-LastActivity <= 30 минут.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	Verified bool   `json:"is_verified"`
	// Unix-миллисекунды последней активности оператора.
	LastActivity int64 `json:"last_activity"`
}
