package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/handlers"
	"github.com/sunjoe508/inteligent-munga/internal/middleware"
	"github.com/sunjoe508/inteligent-munga/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	sessions *services.SessionService,
	jwtKey []byte,
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	viewHandler *handlers.ViewHandler,
	chatHandler *handlers.ChatHandler,
	intelHandler *handlers.IntelHandler,
	vaultHandler *handlers.VaultHandler,
	feedbackHandler *handlers.FeedbackHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/auth")
	{
		auth.POST("/begin", authHandler.Begin)
		auth.POST("/verify", authHandler.Verify)
		auth.POST("/reset", authHandler.Reset)
	}
	r.GET("/session", sessionHandler.Current)
	r.GET("/views/:mode", viewHandler.Resolve)

	// ---- protected: всё операторское за сессионным шлюзом
	r.Use(middleware.SessionMiddleware(sessions, jwtKey))

	r.POST("/logout", sessionHandler.Logout)

	chat := r.Group("/chat")
	{
		chat.GET("/history", chatHandler.History)
		chat.POST("/messages", chatHandler.Send)
	}

	r.POST("/market/scan", intelHandler.MarketScan)
	r.POST("/predictions", intelHandler.Predict)
	r.POST("/roadmap", intelHandler.Roadmap)

	vault := r.Group("/vault")
	{
		vault.GET("/", vaultHandler.Get)
		vault.PUT("/", vaultHandler.Put)
		vault.POST("/export", vaultHandler.Export)
	}

	feedback := r.Group("/feedback")
	{
		feedback.GET("/draft", feedbackHandler.Draft)
		feedback.PUT("/draft", feedbackHandler.SaveDraft)
		feedback.POST("/compose", feedbackHandler.Compose)
	}

	return r
}
