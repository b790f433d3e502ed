package models

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatMessage — одна реплика исследовательского чата. История хранится
// целиком под ключом munga_chat_history и перезаписывается при каждом
// добавлении.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"`
	Sources   []Source    `json:"sources,omitempty"`
	ImageURL  string      `json:"image_url,omitempty"`
}

type SendMessageRequest struct {
	Input string `json:"input" binding:"required"`
}
