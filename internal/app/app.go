package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/sunjoe508/inteligent-munga/internal/config"
	"github.com/sunjoe508/inteligent-munga/internal/export"
	"github.com/sunjoe508/inteligent-munga/internal/gemini"
	"github.com/sunjoe508/inteligent-munga/internal/handlers"
	"github.com/sunjoe508/inteligent-munga/internal/repositories"
	"github.com/sunjoe508/inteligent-munga/internal/routes"
	"github.com/sunjoe508/inteligent-munga/internal/services"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sunjoe508/inteligent-munga/docs"
)

// janitorInterval — период фоновой проверки неактивности.
const janitorInterval = 60 * time.Second

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Stores ===
	state := repositories.NewStateRepository(db)
	if err := state.EnsureSchema(); err != nil {
		log.Fatal("Ошибка инициализации схемы: ", err)
	}
	registryRepo := repositories.NewRegistryRepository(state)
	sessionRepo := repositories.NewSessionRepository(state)
	chatRepo := repositories.NewChatRepository(state)
	draftRepo := repositories.NewDraftRepository(state)
	vaultRepo := repositories.NewVaultRepository(state)

	// === Delivery channel ===
	sender := buildSender(cfg)

	// === Gemini facade ===
	intel, err := gemini.NewClient(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.ResearchModel,
		cfg.Gemini.ImageModel,
		cfg.Gemini.PredictionModel,
	)
	if err != nil {
		log.Fatal("Ошибка инициализации Gemini: ", err)
	}

	// === Services ===
	authService := services.NewAuthService(registryRepo, sender)
	sessionService := services.NewSessionService(sessionRepo, chatRepo, vaultRepo)
	chatService := services.NewChatService(chatRepo, intel)
	feedbackService := services.NewFeedbackService(draftRepo, cfg.Feedback.Recipient)
	exporter := export.NewExporter(cfg.Export.FontPath)

	// Восстанавливаем сессию с прошлого запуска (битая/просроченная
	// запись чистится здесь же) и запускаем janitor.
	if restored := sessionService.Restore(); restored != nil {
		log.Printf("[app] session restored for %s, default view RESEARCH", restored.Username)
	}
	stopJanitor := sessionService.StartJanitor(janitorInterval)
	defer stopJanitor()

	// === Handlers ===
	jwtKey := []byte(cfg.Auth.JWTSecret)
	authHandler := handlers.NewAuthHandler(authService, sessionService, jwtKey)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	viewHandler := handlers.NewViewHandler(sessionService)
	chatHandler := handlers.NewChatHandler(chatService)
	intelHandler := handlers.NewIntelHandler(intel)
	vaultHandler := handlers.NewVaultHandler(vaultRepo, exporter)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		sessionService,
		jwtKey,
		authHandler,
		sessionHandler,
		viewHandler,
		chatHandler,
		intelHandler,
		vaultHandler,
		feedbackHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

// buildSender — выбор канала доставки кода по конфигу.
func buildSender(cfg *config.Config) services.CodeSender {
	switch cfg.Delivery.Channel {
	case "email":
		return services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	case "telegram":
		sender, err := services.NewTelegramSender(cfg.Delivery.TelegramBotToken)
		if err != nil {
			log.Fatal("Ошибка инициализации Telegram: ", err)
		}
		return sender
	default:
		log.Printf("[app] delivery channel %q, codes go to log only", cfg.Delivery.Channel)
		return services.LogSender{}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
