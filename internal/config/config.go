package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

type DeliveryConfig struct {
	// Канал доставки кода: email | telegram | dry-run
	Channel          string `yaml:"channel"`
	TelegramBotToken string `yaml:"telegram_bot_token"`
}

type GeminiConfig struct {
	APIKey          string `yaml:"api_key"`
	ResearchModel   string `yaml:"research_model"`
	ImageModel      string `yaml:"image_model"`
	PredictionModel string `yaml:"prediction_model"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Email    EmailConfig    `yaml:"email"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Feedback struct {
		Recipient string `yaml:"recipient"`
	} `yaml:"feedback"`
	Export struct {
		FontPath string `yaml:"font_path"`
	} `yaml:"export"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Delivery.Channel == "" {
		cfg.Delivery.Channel = "dry-run"
	}
	return &cfg
}
