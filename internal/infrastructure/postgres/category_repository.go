package postgres

import (
	"context"

	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Los ids se comparan como texto: la tabla puede usar bigint o uuid.
const categorySelect = `
		SELECT id::text, name, COALESCE(description, ''), COALESCE(color, ''), COALESCE(order_index, 0)
		FROM website_lists`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de lectura de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListOrdered lista todas las categorías por order_index ascendente.
func (r *CategoryRepo) ListOrdered(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, categorySelect+` ORDER BY order_index ASC`)
	if err != nil {
		return nil, wrapErr("list categories", err)
	}
	defer rows.Close()
	list := make([]entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, wrapErr("scan category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list categories", err)
	}
	return list, nil
}

// GetByID obtiene una categoría; domain.ErrNotFound si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, categorySelect+` WHERE id::text = $1`, id))
	if err != nil {
		return nil, wrapErr("get category", err)
	}
	return &c, nil
}

// CountWebsites cuenta los sitios de la categoría.
func (r *CategoryRepo) CountWebsites(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM websites WHERE website_list_id::text = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, wrapErr("count websites", err)
	}
	return n, nil
}

func scanCategory(row pgxScanner) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.OrderIndex)
	return c, err
}
