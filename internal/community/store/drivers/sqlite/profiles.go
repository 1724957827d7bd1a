package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type profilesRepo struct {
	q dbtx
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, nickname, building_id, floor, verified, created_at, updated_at
		FROM profiles
		WHERE id = ?`, id)

	var p domain.Profile
	var buildingID sql.NullString
	err := row.Scan(&p.ID, &p.Email, &p.Nickname, &buildingID, &p.Floor, &p.Verified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.BuildingID = mapNullStringPtr(buildingID)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, email, nickname, building_id, floor, verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.Nickname, mapOptionalString(p.BuildingID), p.Floor, p.Verified, now, now,
	)
	return mapConstraint(err)
}

func (r *profilesRepo) UpdateNickname(ctx context.Context, userID string, nickname string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles
		SET nickname = ?, updated_at = ?
		WHERE id = ?`,
		nickname, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) SetResidency(ctx context.Context, userID string, buildingID string, floor string, verified bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles
		SET building_id = ?, floor = ?, verified = ?, updated_at = ?
		WHERE id = ?`,
		buildingID, floor, verified, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps zero-row UPDATEs to store.ErrNotFound so services
// don't silently "succeed" against records that are not there.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
