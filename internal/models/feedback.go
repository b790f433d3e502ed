package models

// FeedbackDraft — автосохраняемый черновик экрана обратной связи
// (ключ munga_comm_draft). Очищается после сборки mailto-пакета.
type FeedbackDraft struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}
