package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/stretchr/testify/require"
)

func TestReconcileCleanStateIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	author := seedResident(t, st, b.ID, "12F")
	posts := &PostService{Store: st}
	interactions := &InteractionService{Store: st}

	post, err := posts.CreatePost(ctx, author.ID, domain.BoardFree, "hello", "content")
	require.NoError(t, err)
	_, _, err = interactions.ToggleLike(ctx, author.ID, post.ID)
	require.NoError(t, err)
	_, err = interactions.AddComment(ctx, author.ID, post.ID, "first")
	require.NoError(t, err)

	rec := NewReconcileService(st, slog.New(slog.DiscardHandler), time.Hour)
	corrected, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	require.Zero(t, corrected)
}

func TestReconcileCorrectsDriftedCounters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	author := seedResident(t, st, b.ID, "12F")
	other := seedResident(t, st, b.ID, "3A")
	posts := &PostService{Store: st}
	interactions := &InteractionService{Store: st}

	post, err := posts.CreatePost(ctx, author.ID, domain.BoardFree, "hello", "content")
	require.NoError(t, err)
	_, _, err = interactions.ToggleLike(ctx, author.ID, post.ID)
	require.NoError(t, err)
	_, _, err = interactions.ToggleLike(ctx, other.ID, post.ID)
	require.NoError(t, err)
	_, err = interactions.AddComment(ctx, author.ID, post.ID, "first")
	require.NoError(t, err)

	// Simulate out-of-band damage to the cached counters
	require.NoError(t, st.Posts().SetCounters(ctx, post.ID, 99, 0))

	rec := NewReconcileService(st, slog.New(slog.DiscardHandler), time.Hour)
	corrected, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, corrected)

	got, err := st.Posts().GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.LikesCount)
	require.EqualValues(t, 1, got.CommentsCount)

	// A second pass finds nothing left to fix
	corrected, err = rec.Reconcile(ctx)
	require.NoError(t, err)
	require.Zero(t, corrected)
}

func TestReconcileStartStop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rec := NewReconcileService(st, slog.New(slog.DiscardHandler), 50*time.Millisecond)

	rec.Start()
	time.Sleep(120 * time.Millisecond)
	rec.Stop()
}
