package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/repositories"
)

// InactivityThreshold — единственное правило истечения сессии:
// абсолютного потолка жизни нет, только 30 минут без активности.
const InactivityThreshold = 30 * time.Minute

// SessionService владеет единственной живой сессией: восстанавливает её
// после рестарта, продлевает при активности и полностью чистит локальное
// состояние (сессия, история чата, vault) при истечении или logout.
type SessionService struct {
	sessions SessionStore
	chat     ChatStore
	vault    VaultStore

	mu      sync.Mutex
	current *models.Session

	now func() time.Time
}

func NewSessionService(sessions SessionStore, chat ChatStore, vault VaultStore) *SessionService {
	return &SessionService{
		sessions: sessions,
		chat:     chat,
		vault:    vault,
		now:      time.Now,
	}
}

// Restore — при старте поднимает сохранённую сессию. Битая запись или
// просроченная неактивность означают полную очистку.
func (s *SessionService) Restore() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.sessions.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrCorruptRecord) {
			log.Printf("[session][restore] corrupt record, executing purge: %v", err)
		} else {
			log.Printf("[session][restore] read failed, executing purge: %v", err)
		}
		s.purgeLocked()
		return nil
	}
	if saved == nil {
		return nil
	}
	if s.expired(saved) {
		log.Printf("[session][restore] expired by inactivity, executing purge")
		s.purgeLocked()
		return nil
	}
	s.current = saved
	log.Printf("[session][restore] OK username=%s", saved.Username)
	return saved
}

// Start — создаёт сессию после успешной верификации.
func (s *SessionService) Start(op *models.Operator, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.Session{
		Username:     op.Username,
		Email:        op.Email,
		Token:        token,
		Verified:     true,
		LastActivity: s.now().UnixMilli(),
	}
	if err := s.sessions.Save(sess); err != nil {
		return nil, err
	}
	s.current = sess
	log.Printf("[session][start] username=%s", sess.Username)
	return sess, nil
}

// Current — снимок живой сессии (nil, если её нет).
func (s *SessionService) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Touch — продление по активности оператора. Дёшево, идемпотентно,
// LastActivity монотонно не убывает.
func (s *SessionService) Touch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	nowMs := s.now().UnixMilli()
	if nowMs < s.current.LastActivity {
		return nil
	}
	s.current.LastActivity = nowMs
	return s.sessions.Save(s.current)
}

// Tick — периодическая проверка: вкладка может быть открыта, но
// оператор неактивен; тогда чистим без участия пользователя.
func (s *SessionService) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	if s.expired(s.current) {
		log.Printf("[session][tick] inactivity threshold exceeded, executing purge")
		s.purgeLocked()
	}
}

// Purge — безусловная очистка всего локального состояния. Идемпотентна.
func (s *SessionService) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
}

// Logout — пользовательский псевдоним Purge.
func (s *SessionService) Logout() {
	s.Purge()
}

// StartJanitor — фоновая проверка неактивности. Возвращает stop.
func (s *SessionService) StartJanitor(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

func (s *SessionService) expired(sess *models.Session) bool {
	return s.now().UnixMilli()-sess.LastActivity > InactivityThreshold.Milliseconds()
}

func (s *SessionService) purgeLocked() {
	if err := s.sessions.Delete(); err != nil {
		log.Printf("[session][purge] session delete failed: %v", err)
	}
	if err := s.chat.Delete(); err != nil {
		log.Printf("[session][purge] chat history delete failed: %v", err)
	}
	if err := s.vault.Delete(); err != nil {
		log.Printf("[session][purge] vault delete failed: %v", err)
	}
	s.current = nil
	log.Printf(">>> MUNGA OS: System Purge Executed (Security Protocol)")
}
