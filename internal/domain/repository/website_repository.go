package repository

import (
	"context"

	"github.com/lewistwins/websites/internal/domain/entity"
)

// WebsiteRepository puerto de lectura para los sitios de una categoría.
type WebsiteRepository interface {
	// ListByCategory devuelve los sitios de la categoría por order_index ascendente.
	ListByCategory(ctx context.Context, categoryID string) ([]entity.Website, error)
}
