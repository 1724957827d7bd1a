package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type verificationsRepo struct {
	q dbtx
}

func (r *verificationsRepo) CreateVerificationRequest(ctx context.Context, vr domain.VerificationRequest) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO verification_requests (id, user_id, building_id, floor, document_url, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		vr.ID, vr.UserID, vr.BuildingID, vr.Floor, vr.DocumentURL, vr.Status, vr.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *verificationsRepo) GetVerificationRequestByID(ctx context.Context, id string) (domain.VerificationRequest, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, building_id, floor, document_url, status, created_at, reviewed_at
		FROM verification_requests
		WHERE id = ?`, id)
	return scanVerificationRequest(row)
}

func (r *verificationsRepo) GetPendingByUserID(ctx context.Context, userID string) (domain.VerificationRequest, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, building_id, floor, document_url, status, created_at, reviewed_at
		FROM verification_requests
		WHERE user_id = ? AND status = 'pending'`, userID)
	return scanVerificationRequest(row)
}

func (r *verificationsRepo) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.VerificationRequest, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, building_id, floor, document_url, status, created_at, reviewed_at
		FROM verification_requests
		WHERE status = ?
		ORDER BY created_at ASC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.VerificationRequest
	for rows.Next() {
		vr, err := scanVerificationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, vr)
	}
	return requests, rows.Err()
}

// MarkReviewed transitions a pending request to a terminal status. The status
// guard in the WHERE clause makes concurrent double-reviews lose cleanly, the
// loser sees store.ErrNotFound.
func (r *verificationsRepo) MarkReviewed(ctx context.Context, id string, status domain.VerificationStatus, reviewedAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE verification_requests
		SET status = ?, reviewed_at = ?
		WHERE id = ? AND status = 'pending'`,
		status, reviewedAt, id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVerificationRequest(row rowScanner) (domain.VerificationRequest, error) {
	var vr domain.VerificationRequest
	var reviewedAt sql.NullTime
	err := row.Scan(&vr.ID, &vr.UserID, &vr.BuildingID, &vr.Floor, &vr.DocumentURL, &vr.Status, &vr.CreatedAt, &reviewedAt)
	if err != nil {
		return domain.VerificationRequest{}, mapNotFound(err)
	}
	vr.ReviewedAt = mapNullTimePtr(reviewedAt)
	return vr, nil
}
