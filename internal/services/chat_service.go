package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

const (
	welcomeMessage = "System Initialized. I am INTELIGENT MUNGA. Tactical research link established. Input intelligence objectives for global synthesis."

	// Фиксированный in-band ответ при падении внешнего сервиса:
	// чат никогда не отдаёт ошибку наружу.
	linkBreachedReply = ">>> ERROR: COMMUNICATION LINK BREACHED. RETRYING CORE PROTOCOL..."

	researchInstruction = "You are INTELIGENT MUNGA, an ultra-advanced strategic AI. Structure insights with 'Tactical Summary', 'Deep Analysis', and 'Strategic Conclusion'."

	// Картинку генерируем только для содержательных запросов.
	minInputForImage = 10
)

// IntelClient — часть Gemini-фасада, нужная чату.
type IntelClient interface {
	PerformResearch(ctx context.Context, query, systemInstruction string) (*models.ResearchResult, error)
	GenerateStrategicImage(ctx context.Context, prompt string) (string, error)
}

type ChatService struct {
	repo  ChatStore
	intel IntelClient
	now   func() time.Time
}

func NewChatService(repo ChatStore, intel IntelClient) *ChatService {
	return &ChatService{
		repo:  repo,
		intel: intel,
		now:   time.Now,
	}
}

// History — сохранённая переписка; пустая история отдаёт приветствие
// (не персистится, пока оператор не напишет первым).
func (s *ChatService) History() ([]models.ChatMessage, error) {
	msgs, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return []models.ChatMessage{{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   welcomeMessage,
			Timestamp: s.now().UnixMilli(),
		}}, nil
	}
	return msgs, nil
}

// Send — дописывает реплику оператора, выполняет research (+картинка для
// длинных запросов) и сохраняет ответ ассистента. Сбой фасада деградирует
// в фиксированное сообщение, а не в ошибку.
func (s *ChatService) Send(ctx context.Context, input string) (*models.ChatMessage, *models.ChatMessage, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("message input is required")
	}

	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   input,
		Timestamp: s.now().UnixMilli(),
	}

	assistantMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Timestamp: s.now().UnixMilli(),
	}

	research, err := s.intel.PerformResearch(ctx, input, researchInstruction)
	if err != nil {
		log.Printf("[chat][send] research failed: %v", err)
		assistantMsg.Content = linkBreachedReply
	} else {
		assistantMsg.Content = research.Text
		assistantMsg.Sources = research.Sources

		if len(input) > minInputForImage {
			imageURL, imgErr := s.intel.GenerateStrategicImage(ctx, input)
			if imgErr != nil {
				log.Printf("[chat][send] image generation failed: %v", imgErr)
			} else {
				assistantMsg.ImageURL = imageURL
			}
		}
	}

	history, err := s.repo.List()
	if err != nil {
		return nil, nil, err
	}
	history = append(history, userMsg, assistantMsg)
	if err := s.repo.SaveAll(history); err != nil {
		return nil, nil, err
	}

	return &userMsg, &assistantMsg, nil
}
