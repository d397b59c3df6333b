package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.WebsiteRepository  = (*WebsiteRepo)(nil)
)

// El desempate de order_index es el orden por defecto de SQLite (rowid).
const categorySelect = `
	SELECT CAST(id AS TEXT), name, COALESCE(description, ''), COALESCE(color, ''), order_index
	FROM website_lists`

// CategoryRepo lectura de categorías sobre SQLite.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListOrdered lista por order_index ascendente.
func (r *CategoryRepo) ListOrdered(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, categorySelect+` ORDER BY order_index ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	list := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID devuelve domain.ErrNotFound si no hay fila.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRowContext(ctx, categorySelect+` WHERE CAST(id AS TEXT) = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.OrderIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}
	return &c, nil
}

// CountWebsites cuenta los sitios de la categoría.
func (r *CategoryRepo) CountWebsites(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM websites WHERE CAST(website_list_id AS TEXT) = ?`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count websites %s: %w: %w", categoryID, domain.ErrStoreUnavailable, err)
	}
	return n, nil
}

// WebsiteRepo lectura de sitios sobre SQLite.
type WebsiteRepo struct {
	db *sql.DB
}

// NewWebsiteRepository construye el adaptador.
func NewWebsiteRepository(db *sql.DB) *WebsiteRepo {
	return &WebsiteRepo{db: db}
}

// ListByCategory lista los sitios de la categoría por order_index ascendente.
func (r *WebsiteRepo) ListByCategory(ctx context.Context, categoryID string) ([]entity.Website, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CAST(id AS TEXT), CAST(website_list_id AS TEXT), title, url, COALESCE(description, ''), order_index
		FROM websites
		WHERE CAST(website_list_id AS TEXT) = ?
		ORDER BY order_index ASC, rowid ASC`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list websites %s: %w: %w", categoryID, domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	list := make([]entity.Website, 0)
	for rows.Next() {
		var w entity.Website
		if err := rows.Scan(&w.ID, &w.CategoryID, &w.Title, &w.URL, &w.Description, &w.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
