package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/middleware"
	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/services"
	"github.com/sunjoe508/inteligent-munga/internal/views"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
	jwtKey   []byte
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService, jwtKey []byte) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, jwtKey: jwtKey}
}

// @Summary      Шаг credentials
// @Description  Валидирует email/handle и отправляет одноразовый код по внешнему каналу
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        begin  body      models.BeginAuthRequest  true  "Данные первого шага"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /auth/begin [post]
func (h *AuthHandler) Begin(c *gin.Context) {
	var req models.BeginAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Begin(req.Email, req.Username, req.Register); err != nil {
		switch {
		case errors.Is(err, services.ErrOperatorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "OPERATOR NOT FOUND. PLEASE INITIALIZE REGISTRY PROTOCOL."})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "EMAIL ALREADY REGISTERED. ACCESS DENIED."})
		case errors.Is(err, services.ErrMissingHandle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OPERATOR HANDLE REQUIRED FOR REGISTRY."})
		default:
			log.Printf("[auth][begin] failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification dispatch failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification passcode dispatched",
		"step":    "verify",
	})
}

// @Summary      Шаг verify
// @Description  Сверяет одноразовый код и открывает сессию
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verify  body      models.VerifyRequest  true  "Email и код"
// @Success      200     {object}  map[string]interface{}
// @Failure      401     {object}  map[string]string
// @Router       /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	op, err := h.auth.Verify(req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCodeInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "INVALID_VERIFICATION_HASH. ACCESS REVOKED."})
		case errors.Is(err, services.ErrNoPendingVerification):
			c.JSON(http.StatusConflict, gin.H{"error": "No pending verification, restart the credentials step"})
		default:
			log.Printf("[auth][verify] failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	token, err := middleware.NewSessionToken(op.Username, op.Email, h.jwtKey)
	if err != nil {
		log.Printf("[auth][verify] sign session token failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}

	sess, err := h.sessions.Start(op, token)
	if err != nil {
		log.Printf("[auth][verify] session start failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Handshake finalized",
		"session": sess,
		"token":   token,
		"view":    views.DefaultAfterLogin,
	})
}

// Reset — ручной возврат на шаг credentials.
func (h *AuthHandler) Reset(c *gin.Context) {
	h.auth.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Transmission reset"})
}
