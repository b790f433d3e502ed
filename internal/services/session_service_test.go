package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

func newSessionFixture() (*SessionService, *fakeSessionStore, *fakeChatStore, *fakeVaultStore, *fakeClock) {
	sessions := &fakeSessionStore{}
	chat := &fakeChatStore{}
	vault := &fakeVaultStore{}
	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	svc := NewSessionService(sessions, chat, vault)
	svc.now = clk.now
	return svc, sessions, chat, vault, clk
}

func seedState(sessions *fakeSessionStore, chat *fakeChatStore, vault *fakeVaultStore, lastActivity time.Time) {
	sessions.session = &models.Session{
		Username:     "alice",
		Email:        "alice@x.com",
		Token:        "tok",
		Verified:     true,
		LastActivity: lastActivity.UnixMilli(),
	}
	chat.msgs = []models.ChatMessage{{ID: "1", Role: models.RoleAssistant, Content: "hi"}}
	vault.doc = &models.VaultDocument{Title: "t", Content: "c"}
}

func TestRestoreThenTickDoesNotPurge(t *testing.T) {
	svc, sessions, chat, vault, clk := newSessionFixture()
	seedState(sessions, chat, vault, clk.t)

	restored := svc.Restore()
	require.NotNil(t, restored)
	assert.Equal(t, "alice", restored.Username)

	svc.Tick()
	assert.NotNil(t, svc.Current(), "без прошедшего времени tick не чистит")
	assert.NotNil(t, sessions.session)
	assert.NotEmpty(t, chat.msgs)
}

func TestRestoreExpiredPurgesEverything(t *testing.T) {
	svc, sessions, chat, vault, clk := newSessionFixture()
	seedState(sessions, chat, vault, clk.t.Add(-31*time.Minute))

	restored := svc.Restore()
	assert.Nil(t, restored)
	assert.Nil(t, sessions.session, "сессия удалена")
	assert.Nil(t, chat.msgs, "история чата удалена")
	assert.Nil(t, vault.doc, "vault удалён")
}

func TestRestoreAtThresholdSurvives(t *testing.T) {
	svc, sessions, chat, vault, clk := newSessionFixture()
	// ровно 30 минут — ещё живая (строгое «больше»)
	seedState(sessions, chat, vault, clk.t.Add(-30*time.Minute))

	restored := svc.Restore()
	require.NotNil(t, restored)
}

func TestTickPurgesIdleSession(t *testing.T) {
	svc, sessions, chat, vault, clk := newSessionFixture()

	_, err := svc.Start(&models.Operator{Email: "alice@x.com", Username: "alice"}, "tok")
	require.NoError(t, err)
	chat.msgs = []models.ChatMessage{{ID: "1"}}
	vault.doc = &models.VaultDocument{Content: "c"}

	clk.advance(31 * time.Minute)
	svc.Tick()

	assert.Nil(t, svc.Current())
	assert.Nil(t, sessions.session)
	assert.Nil(t, chat.msgs)
	assert.Nil(t, vault.doc)
}

func TestCorruptRecordPurges(t *testing.T) {
	svc, sessions, chat, vault, _ := newSessionFixture()
	sessions.corrupt = true
	chat.msgs = []models.ChatMessage{{ID: "1"}}
	vault.doc = &models.VaultDocument{Content: "c"}

	restored := svc.Restore()
	assert.Nil(t, restored)
	assert.Nil(t, chat.msgs, "битая сессия чистит и историю")
	assert.Nil(t, vault.doc)
}

func TestTouchRefreshesActivity(t *testing.T) {
	svc, sessions, _, _, clk := newSessionFixture()

	sess, err := svc.Start(&models.Operator{Email: "alice@x.com", Username: "alice"}, "tok")
	require.NoError(t, err)
	started := sess.LastActivity

	clk.advance(5 * time.Minute)
	require.NoError(t, svc.Touch())

	current := svc.Current()
	require.NotNil(t, current)
	assert.Greater(t, current.LastActivity, started)
	assert.Equal(t, current.LastActivity, sessions.session.LastActivity, "продление персистится")
}

func TestTouchIsMonotonic(t *testing.T) {
	svc, _, _, _, clk := newSessionFixture()

	_, err := svc.Start(&models.Operator{Email: "alice@x.com", Username: "alice"}, "tok")
	require.NoError(t, err)
	before := svc.Current().LastActivity

	// часы прыгнули назад — LastActivity не убывает
	clk.advance(-10 * time.Minute)
	require.NoError(t, svc.Touch())
	assert.Equal(t, before, svc.Current().LastActivity)
}

func TestTouchWithoutSessionIsNoop(t *testing.T) {
	svc, _, _, _, _ := newSessionFixture()
	require.NoError(t, svc.Touch())
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, sessions, _, _, _ := newSessionFixture()

	_, err := svc.Start(&models.Operator{Email: "alice@x.com", Username: "alice"}, "tok")
	require.NoError(t, err)

	svc.Logout()
	assert.Nil(t, svc.Current())
	assert.Nil(t, sessions.session)

	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestCurrentReturnsSnapshot(t *testing.T) {
	svc, _, _, _, _ := newSessionFixture()

	_, err := svc.Start(&models.Operator{Email: "alice@x.com", Username: "alice"}, "tok")
	require.NoError(t, err)

	snapshot := svc.Current()
	snapshot.Username = "mallory"
	assert.Equal(t, "alice", svc.Current().Username)
}
