package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) History(c *gin.Context) {
	msgs, err := h.chat.History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// Send — единственная точка входа экрана Research. Сбой Gemini не
// превращается в HTTP-ошибку: ассистент отвечает фиксированной репликой.
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, _ := getOperator(c)
	log.Printf("[chat][send] operator=%s len=%d", username, len(req.Input))

	userMsg, assistantMsg, err := h.chat.Send(c.Request.Context(), req.Input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      userMsg,
		"assistant": assistantMsg,
	})
}
