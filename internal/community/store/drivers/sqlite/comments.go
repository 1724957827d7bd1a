package sqlite

import (
	"context"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type commentsRepo struct {
	q dbtx
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.AuthorID, c.Content, c.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *commentsRepo) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
		       a.nickname, a.floor
		FROM comments c
		JOIN profiles a ON a.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var author domain.Author
		err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt,
			&author.Nickname, &author.Floor)
		if err != nil {
			return nil, err
		}
		c.Author = &author
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM comments
		WHERE post_id = ?`, postID,
	)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
