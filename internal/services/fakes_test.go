package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/repositories"
)

// In-memory реализации типизированных хранилищ для тестов сервисов.

type fakeRegistry struct {
	ops []models.Operator
}

func (f *fakeRegistry) List() ([]models.Operator, error) {
	return f.ops, nil
}

func (f *fakeRegistry) FindByEmail(email string) (*models.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range f.ops {
		if strings.ToLower(f.ops[i].Email) == email {
			return &f.ops[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRegistry) Append(op models.Operator) error {
	f.ops = append(f.ops, op)
	return nil
}

type fakeSessionStore struct {
	session *models.Session
	corrupt bool
}

func (f *fakeSessionStore) Get() (*models.Session, error) {
	if f.corrupt {
		return nil, repositories.ErrCorruptRecord
	}
	return f.session, nil
}

func (f *fakeSessionStore) Save(s *models.Session) error {
	copied := *s
	f.session = &copied
	return nil
}

func (f *fakeSessionStore) Delete() error {
	f.session = nil
	f.corrupt = false
	return nil
}

type fakeChatStore struct {
	msgs []models.ChatMessage
}

func (f *fakeChatStore) List() ([]models.ChatMessage, error) {
	return f.msgs, nil
}

func (f *fakeChatStore) SaveAll(msgs []models.ChatMessage) error {
	f.msgs = msgs
	return nil
}

func (f *fakeChatStore) Delete() error {
	f.msgs = nil
	return nil
}

type fakeVaultStore struct {
	doc *models.VaultDocument
}

func (f *fakeVaultStore) Get() (*models.VaultDocument, error) {
	return f.doc, nil
}

func (f *fakeVaultStore) Save(v *models.VaultDocument) error {
	copied := *v
	f.doc = &copied
	return nil
}

func (f *fakeVaultStore) Delete() error {
	f.doc = nil
	return nil
}

type fakeDraftStore struct {
	draft *models.FeedbackDraft
}

func (f *fakeDraftStore) Get() (*models.FeedbackDraft, error) {
	return f.draft, nil
}

func (f *fakeDraftStore) Save(d *models.FeedbackDraft) error {
	copied := *d
	f.draft = &copied
	return nil
}

func (f *fakeDraftStore) Delete() error {
	f.draft = nil
	return nil
}

type capturingSender struct {
	dest string
	code string
	fail bool
}

func (c *capturingSender) SendCode(destination, code string) error {
	if c.fail {
		return errors.New("delivery down")
	}
	c.dest = destination
	c.code = code
	return nil
}

type fakeIntel struct {
	research    *models.ResearchResult
	researchErr error
	imageURL    string
	imageErr    error
	imageCalls  int
}

func (f *fakeIntel) PerformResearch(_ context.Context, _, _ string) (*models.ResearchResult, error) {
	if f.researchErr != nil {
		return nil, f.researchErr
	}
	return f.research, nil
}

func (f *fakeIntel) GenerateStrategicImage(_ context.Context, _ string) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	f.imageCalls++
	return f.imageURL, nil
}

// fakeClock — управляемое время для проверок неактивности.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}
