package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/pkg/idx"
	"github.com/commonhall/commonhall/pkg/slogx"
)

var ErrPostNotFound = errors.New("post not found")

const (
	maxPostTitleLength   = 200
	maxPostContentLength = 10000
)

type PostService struct {
	Store store.Store
}

// CreatePost publishes a post on one of the caller's building boards. The
// post's building is taken from the caller's verified profile.
func (s *PostService) CreatePost(ctx context.Context, userID string, board domain.BoardType, title, content string) (domain.Post, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if !board.Valid() {
		return domain.Post{}, invalidf("unknown board type %q", board)
	}
	if title == "" {
		return domain.Post{}, invalidf("title is required")
	}
	if len(title) > maxPostTitleLength {
		return domain.Post{}, invalidf("title exceeds %d characters", maxPostTitleLength)
	}
	if content == "" {
		return domain.Post{}, invalidf("content is required")
	}
	if len(content) > maxPostContentLength {
		return domain.Post{}, invalidf("content exceeds %d characters", maxPostContentLength)
	}

	// 2. Gate on residency; the profile decides the building
	_, buildingID, err := residency(ctx, s.Store, userID)
	if err != nil {
		return domain.Post{}, err
	}

	// 3. Insert with zeroed counters
	p := domain.Post{
		ID:         idx.New().String(),
		BoardType:  board,
		Title:      title,
		Content:    content,
		AuthorID:   userID,
		BuildingID: buildingID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		l.Error("failed to create post", "error", err, "user_id", userID)
		return domain.Post{}, err
	}

	l.Info("post created", "post_id", p.ID, "building_id", buildingID, "board", board)
	return s.Store.Posts().GetPostByID(ctx, p.ID)
}

// ListPosts returns the caller's building board, newest first. An empty board
// lists across all boards.
func (s *PostService) ListPosts(ctx context.Context, userID string, board domain.BoardType) ([]domain.Post, error) {
	if board != "" && !board.Valid() {
		return nil, invalidf("unknown board type %q", board)
	}

	_, buildingID, err := residency(ctx, s.Store, userID)
	if err != nil {
		return nil, err
	}
	return s.Store.Posts().ListPostsByBuilding(ctx, buildingID, board)
}

// GetPost fetches a single post visible to the caller. A post from another
// building is denied with ErrWrongBuilding, not hidden as a 404, so residents
// following a stale link understand why it stopped working.
func (s *PostService) GetPost(ctx context.Context, userID, postID string) (domain.Post, error) {
	prof, _, err := residency(ctx, s.Store, userID)
	if err != nil {
		return domain.Post{}, err
	}

	p, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	if !prof.ResidesIn(p.BuildingID) {
		return domain.Post{}, ErrWrongBuilding
	}
	return p, nil
}
