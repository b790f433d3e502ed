package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/services"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) Draft(c *gin.Context) {
	d, err := h.feedback.Draft()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

func (h *FeedbackHandler) SaveDraft(c *gin.Context) {
	var d models.FeedbackDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.feedback.SaveDraft(&d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// Compose — сборка mailto-пакета для почтового клиента оператора.
// Система сама письмо не отправляет и подтверждения не получает.
func (h *FeedbackHandler) Compose(c *gin.Context) {
	var d models.FeedbackDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mailto, err := h.feedback.Compose(d)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mailto": mailto})
}
