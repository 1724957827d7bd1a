package sqlite

import (
	"context"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
)

type postsRepo struct {
	q dbtx
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO posts (id, building_id, author_id, board_type, title, content, likes_count, comments_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?)`,
		p.ID, p.BuildingID, p.AuthorID, p.BoardType, p.Title, p.Content, p.CreatedAt, p.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT p.id, p.building_id, p.author_id, p.board_type, p.title, p.content,
		       p.likes_count, p.comments_count, p.created_at, p.updated_at,
		       a.nickname, a.floor
		FROM posts p
		JOIN profiles a ON a.id = p.author_id
		WHERE p.id = ?`, id)

	var p domain.Post
	var author domain.Author
	err := row.Scan(&p.ID, &p.BuildingID, &p.AuthorID, &p.BoardType, &p.Title, &p.Content,
		&p.LikesCount, &p.CommentsCount, &p.CreatedAt, &p.UpdatedAt,
		&author.Nickname, &author.Floor)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	p.Author = &author
	return p, nil
}

func (r *postsRepo) ListPostsByBuilding(ctx context.Context, buildingID string, board domain.BoardType) ([]domain.Post, error) {
	// An empty board type lists across all boards of the building.
	rows, err := r.q.QueryContext(ctx, `
		SELECT p.id, p.building_id, p.author_id, p.board_type, p.title, p.content,
		       p.likes_count, p.comments_count, p.created_at, p.updated_at,
		       a.nickname, a.floor
		FROM posts p
		JOIN profiles a ON a.id = p.author_id
		WHERE p.building_id = ? AND (? = '' OR p.board_type = ?)
		ORDER BY p.created_at DESC`, buildingID, board, board)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		var author domain.Author
		err := rows.Scan(&p.ID, &p.BuildingID, &p.AuthorID, &p.BoardType, &p.Title, &p.Content,
			&p.LikesCount, &p.CommentsCount, &p.CreatedAt, &p.UpdatedAt,
			&author.Nickname, &author.Floor)
		if err != nil {
			return nil, err
		}
		p.Author = &author
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// AdjustLikesCount applies a relative delta, clamped at zero so a stray
// decrement can never drive the counter negative.
func (r *postsRepo) AdjustLikesCount(ctx context.Context, postID string, delta int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE posts
		SET likes_count = MAX(likes_count + ?, 0), updated_at = ?
		WHERE id = ?`,
		delta, time.Now().UTC(), postID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *postsRepo) AdjustCommentsCount(ctx context.Context, postID string, delta int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE posts
		SET comments_count = MAX(comments_count + ?, 0), updated_at = ?
		WHERE id = ?`,
		delta, time.Now().UTC(), postID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *postsRepo) ListCounterDrift(ctx context.Context) ([]store.CounterDrift, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT p.id,
		       p.likes_count,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
		       p.comments_count,
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		WHERE p.likes_count <> (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		   OR p.comments_count <> (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []store.CounterDrift
	for rows.Next() {
		var d store.CounterDrift
		if err := rows.Scan(&d.PostID, &d.StoredLikes, &d.ActualLikes, &d.StoredComments, &d.ActualComments); err != nil {
			return nil, err
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}

func (r *postsRepo) SetCounters(ctx context.Context, postID string, likes, comments int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE posts
		SET likes_count = ?, comments_count = ?, updated_at = ?
		WHERE id = ?`,
		likes, comments, time.Now().UTC(), postID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
