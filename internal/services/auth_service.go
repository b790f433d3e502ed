package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

var (
	ErrOperatorNotFound      = errors.New("operator not found")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrMissingHandle         = errors.New("operator handle required")
	ErrCodeInvalid           = errors.New("code invalid")
	ErrNoPendingVerification = errors.New("no pending verification")
)

// AuthService — двухшаговый вход/регистрация: credentials -> verify.
// Активен максимум один PendingVerification; новый Begin вытесняет
// старый, Reset и успешная верификация его сбрасывают.
type AuthService struct {
	registry RegistryStore
	sender   CodeSender

	mu      sync.Mutex
	pending *models.PendingVerification

	now func() time.Time
}

func NewAuthService(registry RegistryStore, sender CodeSender) *AuthService {
	return &AuthService{
		registry: registry,
		sender:   sender,
		now:      time.Now,
	}
}

func (s *AuthService) generateCode() string {
	src := rand.NewSource(s.now().UnixNano())
	rnd := rand.New(src)
	return fmt.Sprintf("%06d", rnd.Intn(1000000))
}

// Begin — шаг credentials. Валидирует вход, генерирует 6-значный код,
// отправляет его по внешнему каналу и открывает слот верификации.
func (s *AuthService) Begin(email, username string, register bool) error {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	existing, err := s.registry.FindByEmail(email)
	if err != nil {
		return err
	}
	if register {
		if existing != nil {
			return ErrDuplicateEmail
		}
		if username == "" {
			return ErrMissingHandle
		}
	} else {
		if existing == nil {
			return ErrOperatorNotFound
		}
	}

	code := s.generateCode()
	codeHashBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt generate: %w", err)
	}

	if err := s.sender.SendCode(email, code); err != nil {
		return fmt.Errorf("code delivery: %w", err)
	}

	kind := models.VerificationLogin
	if register {
		kind = models.VerificationRegister
	}

	s.mu.Lock()
	s.pending = &models.PendingVerification{
		Email:    email,
		Username: username,
		CodeHash: string(codeHashBytes),
		Kind:     kind,
		SentAt:   s.now(),
	}
	s.mu.Unlock()

	log.Printf("[auth][begin] kind=%s email=%s", kind, email)
	return nil
}

// Verify — шаг verify. При неверном коде слот сохраняется и допускает
// повторный ввод; при успехе регистрация дописывает оператора в реестр,
// вход восстанавливает сохранённый username.
func (s *AuthService) Verify(email, code string) (*models.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)

	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()

	if pending == nil || pending.Email != email {
		return nil, ErrNoPendingVerification
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pending.CodeHash), []byte(code)); err != nil {
		log.Printf("[auth][verify] code mismatch email=%s", email)
		return nil, ErrCodeInvalid
	}

	var op *models.Operator
	if pending.Kind == models.VerificationRegister {
		existing, err := s.registry.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
		newOp := models.Operator{
			Email:        email,
			Username:     pending.Username,
			RegisteredAt: s.now().UnixMilli(),
		}
		if err := s.registry.Append(newOp); err != nil {
			return nil, err
		}
		op = &newOp
	} else {
		existing, err := s.registry.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrOperatorNotFound
		}
		op = existing
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	log.Printf("[auth][verify] OK email=%s username=%s", op.Email, op.Username)
	return op, nil
}

// Reset — ручной возврат на шаг credentials, слот сбрасывается.
func (s *AuthService) Reset() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
