package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/services"
	"github.com/sunjoe508/inteligent-munga/internal/views"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Current — наличие живой сессии и стартовый экран. Публичный: клиент
// решает по нему, показывать Landing/Auth или терминал.
func (h *SessionHandler) Current(c *gin.Context) {
	sess := h.sessions.Current()
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil, "view": views.Landing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "view": views.DefaultAfterLogin})
}

// @Summary      Logout
// @Description  Полная очистка: сессия, история чата, vault
// @Tags         Session
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "System purge executed", "view": views.Landing})
}
