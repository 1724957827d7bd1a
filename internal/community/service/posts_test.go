package service

import (
	"context"
	"strings"
	"testing"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/stretchr/testify/require"
)

func TestUnverifiedResidentCannotUseBoards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	seedBuilding(t, st, "Sunrise Tower")
	p := seedProfile(t, st, "alice")
	svc := &PostService{Store: st}

	_, err := svc.CreatePost(ctx, p.ID, domain.BoardFree, "hello", "first post")
	require.ErrorIs(t, err, ErrNotVerified)

	_, err = svc.ListPosts(ctx, p.ID, "")
	require.ErrorIs(t, err, ErrNotVerified)

	_, err = svc.GetPost(ctx, p.ID, "any-post")
	require.ErrorIs(t, err, ErrNotVerified)

	// A caller with no profile at all is denied the same way
	_, err = svc.ListPosts(ctx, "ghost-user", "")
	require.ErrorIs(t, err, ErrNotVerified)
}

func TestCreatePostValidatesInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	p := seedResident(t, st, b.ID, "12F")
	svc := &PostService{Store: st}

	_, err := svc.CreatePost(ctx, p.ID, domain.BoardType("random"), "title", "content")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePost(ctx, p.ID, domain.BoardFree, "  ", "content")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePost(ctx, p.ID, domain.BoardFree, "title", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePost(ctx, p.ID, domain.BoardFree, strings.Repeat("t", maxPostTitleLength+1), "content")
	require.ErrorIs(t, err, ErrValidation)
}

func TestPostBuildingDerivedFromProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	p := seedResident(t, st, b.ID, "12F")
	svc := &PostService{Store: st}

	post, err := svc.CreatePost(ctx, p.ID, domain.BoardNotice, "water outage", "pipes on tuesday")
	require.NoError(t, err)
	require.Equal(t, b.ID, post.BuildingID)
	require.Equal(t, p.ID, post.AuthorID)
	require.Zero(t, post.LikesCount)
	require.Zero(t, post.CommentsCount)
	require.NotNil(t, post.Author)
	require.Equal(t, p.Nickname, post.Author.Nickname)
	require.Equal(t, "12F", post.Author.Floor)
}

func TestBoardsIsolatedPerBuilding(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b1 := seedBuilding(t, st, "Sunrise Tower")
	b2 := seedBuilding(t, st, "Cedar Court")
	alice := seedResident(t, st, b1.ID, "12F")
	bob := seedResident(t, st, b2.ID, "3A")
	svc := &PostService{Store: st}

	post, err := svc.CreatePost(ctx, alice.ID, domain.BoardFree, "hello", "from sunrise tower")
	require.NoError(t, err)

	// Bob's board does not surface Alice's post
	posts, err := svc.ListPosts(ctx, bob.ID, "")
	require.NoError(t, err)
	require.Empty(t, posts)

	// And a direct reference is denied, not hidden
	_, err = svc.GetPost(ctx, bob.ID, post.ID)
	require.ErrorIs(t, err, ErrWrongBuilding)

	// Alice sees her own building's board
	posts, err = svc.ListPosts(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, post.ID, posts[0].ID)
}

func TestListPostsBoardFilterAndOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	p := seedResident(t, st, b.ID, "12F")
	svc := &PostService{Store: st}

	notice, err := svc.CreatePost(ctx, p.ID, domain.BoardNotice, "notice", "n")
	require.NoError(t, err)
	free1, err := svc.CreatePost(ctx, p.ID, domain.BoardFree, "free one", "f1")
	require.NoError(t, err)
	free2, err := svc.CreatePost(ctx, p.ID, domain.BoardFree, "free two", "f2")
	require.NoError(t, err)

	_, err = svc.ListPosts(ctx, p.ID, domain.BoardType("bogus"))
	require.ErrorIs(t, err, ErrValidation)

	frees, err := svc.ListPosts(ctx, p.ID, domain.BoardFree)
	require.NoError(t, err)
	require.Len(t, frees, 2)
	// Newest first
	require.Equal(t, free2.ID, frees[0].ID)
	require.Equal(t, free1.ID, frees[1].ID)

	all, err := svc.ListPosts(ctx, p.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, notice.ID, all[2].ID)
}

func TestGetPostUnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	b := seedBuilding(t, st, "Sunrise Tower")
	p := seedResident(t, st, b.ID, "12F")
	svc := &PostService{Store: st}

	_, err := svc.GetPost(ctx, p.ID, "missing-post")
	require.ErrorIs(t, err, ErrPostNotFound)
}
