package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/services"
	"github.com/sunjoe508/inteligent-munga/internal/views"
)

type ViewHandler struct {
	sessions *services.SessionService
}

func NewViewHandler(sessions *services.SessionService) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

// Resolve — маршрутизатор экранов: без сессии любой режим, кроме
// Landing, уводит на аутентификацию.
func (h *ViewHandler) Resolve(c *gin.Context) {
	mode, err := views.Parse(c.Param("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hasSession := h.sessions.Current() != nil
	c.JSON(http.StatusOK, gin.H{
		"requested": mode,
		"screen":    views.Resolve(hasSession, mode),
	})
}
