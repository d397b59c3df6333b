package postgres

import (
	"context"

	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
)

var _ repository.WebsiteRepository = (*WebsiteRepo)(nil)

// WebsiteRepo implementación del puerto WebsiteRepository sobre PostgreSQL.
type WebsiteRepo struct {
	q Querier
}

// NewWebsiteRepository construye el adaptador de lectura de sitios.
func NewWebsiteRepository(q Querier) *WebsiteRepo {
	return &WebsiteRepo{q: q}
}

// ListByCategory lista los sitios de una categoría por order_index ascendente.
func (r *WebsiteRepo) ListByCategory(ctx context.Context, categoryID string) ([]entity.Website, error) {
	const query = `
		SELECT id::text, website_list_id::text, title, url, COALESCE(description, ''), COALESCE(order_index, 0)
		FROM websites
		WHERE website_list_id::text = $1
		ORDER BY order_index ASC`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, wrapErr("list websites", err)
	}
	defer rows.Close()
	list := make([]entity.Website, 0)
	for rows.Next() {
		var w entity.Website
		if err := rows.Scan(&w.ID, &w.CategoryID, &w.Title, &w.URL, &w.Description, &w.OrderIndex); err != nil {
			return nil, wrapErr("scan website", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list websites", err)
	}
	return list, nil
}
