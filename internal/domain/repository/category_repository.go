package repository

import (
	"context"

	"github.com/lewistwins/websites/internal/domain/entity"
)

// CategoryRepository puerto de lectura para categorías (DIP).
// No existe ninguna operación de escritura: la tienda de tablas es externa.
type CategoryRepository interface {
	// ListOrdered devuelve todas las categorías por order_index ascendente.
	ListOrdered(ctx context.Context) ([]entity.Category, error)
	// GetByID devuelve exactamente una categoría o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// CountWebsites cuenta los sitios cuyo website_list_id es categoryID.
	CountWebsites(ctx context.Context, categoryID string) (int, error)
}
