package sqlite

import (
	"context"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type buildingsRepo struct {
	q dbtx
}

func (r *buildingsRepo) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, address, created_at
		FROM buildings
		ORDER BY name COLLATE NOCASE ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []domain.Building
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt); err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

func (r *buildingsRepo) GetBuildingByID(ctx context.Context, id string) (domain.Building, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, address, created_at
		FROM buildings
		WHERE id = ?`, id)

	var b domain.Building
	err := row.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt)
	if err != nil {
		return domain.Building{}, mapNotFound(err)
	}
	return b, nil
}

func (r *buildingsRepo) CreateBuilding(ctx context.Context, b domain.Building) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO buildings (id, name, address, created_at)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.Name, b.Address, b.CreatedAt,
	)
	return mapConstraint(err)
}
