package sqlite

import (
	"context"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type likesRepo struct {
	q dbtx
}

func (r *likesRepo) CreateLike(ctx context.Context, l domain.Like) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO likes (id, post_id, user_id, created_at)
		VALUES (?, ?, ?, ?)`,
		l.ID, l.PostID, l.UserID, l.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *likesRepo) DeleteLike(ctx context.Context, postID, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM likes
		WHERE post_id = ? AND user_id = ?`,
		postID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *likesRepo) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM likes
		WHERE post_id = ? AND user_id = ?`,
		postID, userID,
	)
	var n int64
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *likesRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM likes
		WHERE post_id = ?`, postID,
	)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
