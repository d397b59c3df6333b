package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/infrastructure/seed"
	"github.com/lewistwins/websites/internal/infrastructure/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	catalog := &seed.Catalog{Categories: []seed.Category{
		{ID: 1, Name: "Design", Description: "Pretty", Color: "#ff6b6b", OrderIndex: 1, Websites: []seed.Website{
			{ID: 10, Title: "Second", URL: "https://b.example", OrderIndex: 1},
			{ID: 11, Title: "First", URL: "https://a.example", OrderIndex: 0, Description: "first"},
		}},
		{ID: 2, Name: "Tools", OrderIndex: 0},
		{ID: 3, Name: "Games", OrderIndex: 1, Color: "zzz"},
	}}
	require.NoError(t, sqlite.Load(ctx, db, catalog))
	return db
}

func TestCategoryRepo_ListOrdered(t *testing.T) {
	repo := sqlite.NewCategoryRepository(setupTestDB(t))

	list, err := repo.ListOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Empate en order_index=1: se respeta el orden de inserción.
	assert.Equal(t, []string{"2", "1", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "", list[0].Description)
	assert.Equal(t, "zzz", list[2].Color)
}

func TestCategoryRepo_GetByID(t *testing.T) {
	repo := sqlite.NewCategoryRepository(setupTestDB(t))

	c, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Design", c.Name)
	assert.Equal(t, "Pretty", c.Description)

	_, err = repo.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepo_CountWebsites(t *testing.T) {
	repo := sqlite.NewCategoryRepository(setupTestDB(t))

	n, err := repo.CountWebsites(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountWebsites(context.Background(), "2")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWebsiteRepo_ListByCategory(t *testing.T) {
	repo := sqlite.NewWebsiteRepository(setupTestDB(t))

	sites, err := repo.ListByCategory(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "First", sites[0].Title)
	assert.Equal(t, "first", sites[0].Description)
	assert.Equal(t, "1", sites[0].CategoryID)
	assert.Equal(t, "Second", sites[1].Title)

	sites, err = repo.ListByCategory(context.Background(), "3")
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestLoad_ReplacesContent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, sqlite.Load(ctx, db, &seed.Catalog{Categories: []seed.Category{{ID: 5, Name: "Only"}}}))

	list, err := sqlite.NewCategoryRepository(db).ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "5", list[0].ID)
}

func TestClosedDBIsStoreUnavailable(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Close())

	_, err := sqlite.NewCategoryRepository(db).ListOrdered(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
