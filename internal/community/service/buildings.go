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

var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrBuildingExists   = errors.New("building already registered")
)

type BuildingService struct {
	Store store.Store
}

// ListBuildings returns the whole building directory, ordered by name.
func (s *BuildingService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return s.Store.Buildings().ListBuildings(ctx)
}

// GetBuilding fetches a single directory entry.
func (s *BuildingService) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	b, err := s.Store.Buildings().GetBuildingByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Building{}, ErrBuildingNotFound
		}
		return domain.Building{}, err
	}
	return b, nil
}

// CreateBuilding registers a new building in the directory. Name and address
// are trimmed before validation; a case-insensitive (name, address) duplicate
// returns ErrBuildingExists rather than fragmenting the directory.
func (s *BuildingService) CreateBuilding(ctx context.Context, name, address string) (domain.Building, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" {
		return domain.Building{}, invalidf("name is required")
	}
	if address == "" {
		return domain.Building{}, invalidf("address is required")
	}

	// 2. Insert; the unique index carries the dedup decision
	b := domain.Building{
		ID:        idx.New().String(),
		Name:      name,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Buildings().CreateBuilding(ctx, b); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Building{}, ErrBuildingExists
		}
		l.Error("failed to create building", "error", err)
		return domain.Building{}, err
	}

	l.Info("building registered", "building_id", b.ID, "name", b.Name)
	return b, nil
}
