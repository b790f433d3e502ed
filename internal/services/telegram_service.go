package services

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender — доставка кода в Telegram. destination — chat id
// оператора строкой (из конфига/реестра).
type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSender(botToken string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramSender{bot: bot}, nil
}

func (t *TelegramSender) SendCode(destination, code string) error {
	chatID, err := strconv.ParseInt(destination, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram destination must be a chat id: %w", err)
	}
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("MUNGA verification passcode: %s", code))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
