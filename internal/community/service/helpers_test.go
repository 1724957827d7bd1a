package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/internal/community/store/drivers/sqlite"
	"github.com/commonhall/commonhall/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newFileTestStore backs the store with a real file. Concurrency tests use
// this so goroutines exercise the same database the way production does.
func newFileTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "community.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedBuilding(t *testing.T, st store.Store, name string) domain.Building {
	t.Helper()

	svc := &BuildingService{Store: st}
	b, err := svc.CreateBuilding(context.Background(), name, name+" street 1")
	require.NoError(t, err)
	return b
}

func seedProfile(t *testing.T, st store.Store, nickname string) domain.Profile {
	t.Helper()

	svc := &ProfileService{Store: st}
	userID := idx.New().String()
	p, err := svc.EnsureProfile(context.Background(), userID, nickname+"@example.com", nickname)
	require.NoError(t, err)
	return p
}

// seedResident creates a profile already verified for the given building.
func seedResident(t *testing.T, st store.Store, buildingID, floor string) domain.Profile {
	t.Helper()
	ctx := context.Background()

	p := seedProfile(t, st, "resident")
	require.NoError(t, st.Profiles().SetResidency(ctx, p.ID, buildingID, floor, true))

	got, err := st.Profiles().GetProfileByID(ctx, p.ID)
	require.NoError(t, err)
	return got
}
