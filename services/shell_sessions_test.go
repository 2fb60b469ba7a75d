package services

import (
	"context"
	"io"
	"testing"
	"time"

	"settleedge_web/services/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct{}

func (stubView) Render(ctx context.Context, w io.Writer) error { return nil }

func stubFactory() (*shell.Shell, error) {
	pages := make(shell.Pages)
	for _, r := range shell.Routes {
		pages[r] = stubView{}
	}
	return shell.New(pages, shell.RouteHome, shell.Options{})
}

func TestShellSessions(t *testing.T) {
	t.Run("ResolveCreatesThenReuses", func(t *testing.T) {
		store := NewShellSessions(stubFactory, time.Hour)

		id, sh, err := store.Resolve("")
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.Equal(t, 1, store.Len())

		again, sh2, err := store.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Same(t, sh, sh2)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("UnknownIDGetsNewSession", func(t *testing.T) {
		store := NewShellSessions(stubFactory, time.Hour)
		id, _, err := store.Resolve("not-a-session")
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-session", id)
	})

	t.Run("SessionsAreIndependent", func(t *testing.T) {
		store := NewShellSessions(stubFactory, time.Hour)
		_, a, err := store.Create()
		require.NoError(t, err)
		_, b, err := store.Create()
		require.NoError(t, err)

		_, err = a.Navigate(shell.RouteFAQ)
		require.NoError(t, err)
		assert.Equal(t, shell.RouteFAQ, a.CurrentRoute())
		assert.Equal(t, shell.RouteHome, b.CurrentRoute())
	})

	t.Run("IdleSessionsExpire", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		store := NewShellSessions(stubFactory, 30*time.Minute)
		store.now = func() time.Time { return now }

		stale, _, err := store.Create()
		require.NoError(t, err)
		now = now.Add(20 * time.Minute)
		fresh, _, err := store.Create()
		require.NoError(t, err)

		now = now.Add(15 * time.Minute)
		assert.Equal(t, 1, store.CleanupIdle())
		_, ok := store.Get(stale)
		assert.False(t, ok)
		_, ok = store.Get(fresh)
		assert.True(t, ok)
	})

	t.Run("GetDropsExpiredSession", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		store := NewShellSessions(stubFactory, time.Minute)
		store.now = func() time.Time { return now }

		id, _, err := store.Create()
		require.NoError(t, err)
		now = now.Add(2 * time.Minute)

		_, ok := store.Get(id)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})
}
