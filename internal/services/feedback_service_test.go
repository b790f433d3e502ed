package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

func TestComposeBuildsMailto(t *testing.T) {
	drafts := &fakeDraftStore{}
	drafts.draft = &models.FeedbackDraft{Subject: "s", Body: "b"}
	svc := NewFeedbackService(drafts, "joemunga329@gmail.com")

	mailto, err := svc.Compose(models.FeedbackDraft{
		Subject:  "Signal quality",
		Body:     "Line one\nLine two",
		Category: "intel",
		Rating:   4,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(mailto, "mailto:joemunga329@gmail.com?subject="))
	assert.Contains(t, mailto, "%5BMUNGA%20INTEL%20-%20INTEL%5D%20Signal%20quality")
	assert.Contains(t, mailto, "RATING%3A%204%2F5")
	assert.NotContains(t, mailto, "+", "пробелы кодируются как %20")
	assert.Nil(t, drafts.draft, "черновик очищается после сборки")
}

func TestComposeRequiresSubjectAndBody(t *testing.T) {
	svc := NewFeedbackService(&fakeDraftStore{}, "x@y.z")

	_, err := svc.Compose(models.FeedbackDraft{Subject: " ", Body: "b"})
	require.Error(t, err)

	_, err = svc.Compose(models.FeedbackDraft{Subject: "s", Body: ""})
	require.Error(t, err)
}

func TestComposeDefaultsAndClamps(t *testing.T) {
	svc := NewFeedbackService(&fakeDraftStore{}, "x@y.z")

	mailto, err := svc.Compose(models.FeedbackDraft{Subject: "s", Body: "b", Rating: 11})
	require.NoError(t, err)
	assert.Contains(t, mailto, "FEEDBACK%5D", "пустая категория получает дефолт")
	assert.Contains(t, mailto, "RATING%3A%205%2F5", "оценка ограничена 5")
}

func TestDraftDefault(t *testing.T) {
	svc := NewFeedbackService(&fakeDraftStore{}, "x@y.z")

	d, err := svc.Draft()
	require.NoError(t, err)
	assert.Equal(t, "feedback", d.Category)
	assert.Empty(t, d.Subject)
}

func TestSaveDraftSkipsEmpty(t *testing.T) {
	drafts := &fakeDraftStore{}
	svc := NewFeedbackService(drafts, "x@y.z")

	require.NoError(t, svc.SaveDraft(&models.FeedbackDraft{}))
	assert.Nil(t, drafts.draft, "пустой черновик не сохраняется")

	require.NoError(t, svc.SaveDraft(&models.FeedbackDraft{Body: "text"}))
	require.NotNil(t, drafts.draft)
	assert.Equal(t, "text", drafts.draft.Body)
}
