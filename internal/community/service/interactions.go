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

const maxCommentLength = 2000

// InteractionService owns likes and comments, the two write paths that touch
// the denormalized post counters. Every counter mutation shares a transaction
// with its source-row change.
type InteractionService struct {
	Store store.Store
}

// ToggleLike flips the caller's like on a post and adjusts likes_count in the
// same transaction. Returns the resulting state and counter. Two concurrent
// first likes collapse into like-then-unlike: the unique (post, user) index
// rejects the second insert, which then takes the removal branch.
func (s *InteractionService) ToggleLike(ctx context.Context, userID, postID string) (liked bool, likes int64, err error) {
	l := slogx.FromContext(ctx)

	// 1. Gate on residency and post visibility
	if _, err := s.visiblePost(ctx, userID, postID); err != nil {
		return false, 0, err
	}

	// 2. Flip the like and its counter atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		insertErr := tx.Likes().CreateLike(ctx, domain.Like{
			ID:        idx.New().String(),
			PostID:    postID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		})
		switch {
		case insertErr == nil:
			liked = true
			if err := tx.Posts().AdjustLikesCount(ctx, postID, 1); err != nil {
				return err
			}
		case errors.Is(insertErr, store.ErrAlreadyExists):
			liked = false
			if err := tx.Likes().DeleteLike(ctx, postID, userID); err != nil {
				return err
			}
			if err := tx.Posts().AdjustLikesCount(ctx, postID, -1); err != nil {
				return err
			}
		default:
			return insertErr
		}

		p, err := tx.Posts().GetPostByID(ctx, postID)
		if err != nil {
			return err
		}
		likes = p.LikesCount
		return nil
	})
	if err != nil {
		l.Error("failed to toggle like", "error", err, "post_id", postID, "user_id", userID)
		return false, 0, err
	}

	return liked, likes, nil
}

// HasLiked reports whether the caller currently likes the post. Used by the
// read side to render the like button state.
func (s *InteractionService) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	return s.Store.Likes().HasLiked(ctx, postID, userID)
}

// AddComment appends a comment to a post and bumps comments_count in the same
// transaction.
func (s *InteractionService) AddComment(ctx context.Context, userID, postID, content string) (domain.Comment, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, invalidf("content is required")
	}
	if len(content) > maxCommentLength {
		return domain.Comment{}, invalidf("content exceeds %d characters", maxCommentLength)
	}

	// 2. Gate on residency and post visibility
	if _, err := s.visiblePost(ctx, userID, postID); err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ID:        idx.New().String(),
		PostID:    postID,
		AuthorID:  userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	// 3. Comment row and counter move together
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Comments().CreateComment(ctx, c); err != nil {
			return err
		}
		return tx.Posts().AdjustCommentsCount(ctx, postID, 1)
	})
	if err != nil {
		l.Error("failed to add comment", "error", err, "post_id", postID, "user_id", userID)
		return domain.Comment{}, err
	}

	l.Info("comment added", "comment_id", c.ID, "post_id", postID)

	// Re-read for the author projection
	comments, err := s.Store.Comments().ListCommentsByPost(ctx, postID)
	if err != nil {
		return c, nil
	}
	for _, got := range comments {
		if got.ID == c.ID {
			return got, nil
		}
	}
	return c, nil
}

// ListComments returns a post's comments oldest first, gated like the post
// itself.
func (s *InteractionService) ListComments(ctx context.Context, userID, postID string) ([]domain.Comment, error) {
	if _, err := s.visiblePost(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.Store.Comments().ListCommentsByPost(ctx, postID)
}

// visiblePost applies the residency gate and the building match to a post
// reference.
func (s *InteractionService) visiblePost(ctx context.Context, userID, postID string) (domain.Post, error) {
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
