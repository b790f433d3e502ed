package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

// FeedbackService — экран обратной связи: автосохраняемый черновик и
// сборка mailto-пакета для почтового клиента оператора. Сами письма
// система не отправляет и подтверждения отправки не имеет.
type FeedbackService struct {
	drafts    DraftStore
	recipient string
}

func NewFeedbackService(drafts DraftStore, recipient string) *FeedbackService {
	return &FeedbackService{drafts: drafts, recipient: recipient}
}

func (s *FeedbackService) Draft() (*models.FeedbackDraft, error) {
	d, err := s.drafts.Get()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &models.FeedbackDraft{Category: "feedback"}, nil
	}
	return d, nil
}

func (s *FeedbackService) SaveDraft(d *models.FeedbackDraft) error {
	if strings.TrimSpace(d.Subject) == "" && strings.TrimSpace(d.Body) == "" {
		return nil
	}
	return s.drafts.Save(d)
}

// Compose — собирает mailto-ссылку и очищает черновик. Формат пакета
// повторяет протокол терминала: категория, оценка, тело.
func (s *FeedbackService) Compose(d models.FeedbackDraft) (string, error) {
	if strings.TrimSpace(d.Subject) == "" || strings.TrimSpace(d.Body) == "" {
		return "", fmt.Errorf("subject and body are required")
	}
	category := d.Category
	if category == "" {
		category = "feedback"
	}
	if d.Rating < 0 {
		d.Rating = 0
	}
	if d.Rating > 5 {
		d.Rating = 5
	}

	subject := fmt.Sprintf("[MUNGA INTEL - %s] %s", strings.ToUpper(category), d.Subject)
	body := fmt.Sprintf("--- TACTICAL INTEL PACKET ---\nCATEGORY: %s\nRATING: %d/5\n\nMESSAGE BODY:\n%s\n\n--- END OF PACKET ---",
		category, d.Rating, d.Body)

	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		s.recipient, escapeComponent(subject), escapeComponent(body))

	if err := s.drafts.Delete(); err != nil {
		return "", err
	}
	return mailto, nil
}

// escapeComponent — как encodeURIComponent: пробел в %20, а не в «+».
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
