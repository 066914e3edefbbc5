package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

func newTestStore() *Store {
	points := []models.PressurePoint{{ID: "yingxiang", Name: "迎香穴"}}
	return NewStore(zap.NewNop(), points)
}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore()

	t.Run("empty id mints a session with a fresh id", func(t *testing.T) {
		session := store.GetOrCreate("")
		require.NotNil(t, session)
		assert.NotEmpty(t, session.ID)
		session.WithWizard(func(w *wizard.Wizard) { assert.NotNil(t, w) })
		assert.Equal(t, SubmissionIdle, session.Submission().State)
	})

	t.Run("known id returns the same session", func(t *testing.T) {
		first := store.GetOrCreate("abc")
		second := store.GetOrCreate("abc")
		assert.Same(t, first, second)
	})

	t.Run("unknown id creates a session under that id", func(t *testing.T) {
		session := store.GetOrCreate("from-old-cookie")
		assert.Equal(t, "from-old-cookie", session.ID)
	})
}

func TestReset(t *testing.T) {
	store := newTestStore()
	session := store.GetOrCreate("abc")
	session.SetSubmission(SubmissionStatus{State: SubmissionSuccess})

	fresh := store.Reset("abc")
	assert.NotSame(t, session, fresh)
	assert.Equal(t, "abc", fresh.ID)
	assert.Equal(t, SubmissionIdle, fresh.Submission().State)
	assert.Same(t, fresh, store.GetOrCreate("abc"))
}

func TestMarkReminded(t *testing.T) {
	store := newTestStore()
	session := store.GetOrCreate("abc")
	assert.True(t, session.MarkReminded())
	assert.False(t, session.MarkReminded())
}

func TestRangeVisitsEverySession(t *testing.T) {
	store := newTestStore()
	store.GetOrCreate("a")
	store.GetOrCreate("b")
	store.GetOrCreate("c")

	seen := map[string]bool{}
	store.Range(func(s *Session) { seen[s.ID] = true })
	assert.Len(t, seen, 3)
}
