package services

import "log"

// CodeSender — внешний канал доставки одноразового кода. Исходник
// показывал код прямо в UI; здесь это честная внеполосная доставка:
// email (gomail), telegram или dry-run для локальной разработки.
type CodeSender interface {
	SendCode(destination, code string) error
}

// LogSender — dry-run канал: никуда не шлём, только пишем в лог.
type LogSender struct{}

func (LogSender) SendCode(destination, code string) error {
	log.Printf("[delivery][dry-run] to=%s code=%s", destination, code)
	return nil
}
