package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lewistwins/websites/internal/application/directory"
	"github.com/lewistwins/websites/internal/application/dto"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/pkg/color"
	"github.com/lewistwins/websites/pkg/linkutil"
	"github.com/lewistwins/websites/pkg/logger"
)

// CategoryHandler expone el directorio como JSON (solo lectura, público).
type CategoryHandler struct {
	categories repository.CategoryRepository
	websites   repository.WebsiteRepository
	log        *logger.Logger
	timeout    time.Duration
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(
	categories repository.CategoryRepository,
	websites repository.WebsiteRepository,
	log *logger.Logger,
	timeout time.Duration,
) *CategoryHandler {
	return &CategoryHandler{categories: categories, websites: websites, log: log, timeout: timeout}
}

// List godoc
// @Summary      Listar categorías
// @Description  Categorías ordenadas por order_index con el número de sitios de cada una; si falla un conteo se informa 0.
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	st := directory.NewListingController(h.categories, h.log).WithCallTimeout(h.timeout).Load(ctx)
	if st.Status != directory.StatusSuccess {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: "no se pudo cargar el listado de categorías",
		})
	}

	out := dto.CategoryListResponse{
		Status:     st.Status.String(),
		Categories: make([]dto.CategorySummaryResponse, 0, len(st.Categories)),
	}
	for _, s := range st.Categories {
		out.Categories = append(out.Categories, dto.CategorySummaryResponse{
			CategoryResponse: toCategoryResponse(s.Category),
			WebsiteCount:     s.WebsiteCount,
			AccentRGB:        color.Parse(s.Color).Channels(),
		})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Description  Categoría con sus sitios ordenados por order_index.
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.Context()

	st := directory.NewDetailController(h.categories, h.websites, h.log).WithCallTimeout(h.timeout).Load(ctx, c.Params("id"))
	if st.Status != directory.StatusSuccess {
		status, body := storeErrorStatus(st.Err)
		return c.Status(status).JSON(body)
	}

	out := dto.CategoryDetailResponse{
		Status:       st.Status.String(),
		Category:     toCategoryResponse(*st.Category),
		Websites:     make([]dto.WebsiteResponse, 0, len(st.Websites)),
		WebsiteCount: len(st.Websites),
	}
	for _, w := range st.Websites {
		out.Websites = append(out.Websites, dto.WebsiteResponse{
			ID:          w.ID,
			CategoryID:  w.CategoryID,
			Title:       w.Title,
			URL:         w.URL,
			Description: w.Description,
			Domain:      linkutil.Domain(w.URL).Value,
			OrderIndex:  w.OrderIndex,
		})
	}
	return c.JSON(out)
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		OrderIndex:  c.OrderIndex,
	}
}
