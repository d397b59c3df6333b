package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lewistwins/websites/internal/application/directory"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/internal/interfaces/http/view"
	"github.com/lewistwins/websites/pkg/logger"
)

// PageHandler sirve las páginas HTML del sitio. Cada petición monta su propio controlador.
type PageHandler struct {
	categories repository.CategoryRepository
	websites   repository.WebsiteRepository
	renderer   *view.Renderer
	log        *logger.Logger
	timeout    time.Duration
}

// NewPageHandler construye el handler.
func NewPageHandler(
	categories repository.CategoryRepository,
	websites repository.WebsiteRepository,
	renderer *view.Renderer,
	log *logger.Logger,
	timeout time.Duration,
) *PageHandler {
	return &PageHandler{
		categories: categories,
		websites:   websites,
		renderer:   renderer,
		log:        log,
		timeout:    timeout,
	}
}

// Home listado de categorías. ?retry=1 corresponde a la acción "Try Again".
func (h *PageHandler) Home(c *fiber.Ctx) error {
	ctx := c.Context()

	ctrl := directory.NewListingController(h.categories, h.log).WithCallTimeout(h.timeout)
	var st directory.ListingState
	if c.QueryBool("retry") {
		st = ctrl.Retry(ctx)
	} else {
		st = ctrl.Load(ctx)
	}

	status := fiber.StatusOK
	if st.Status == directory.StatusError {
		status = fiber.StatusServiceUnavailable
	}
	return h.render(c, status, view.PageHome, view.NewHomePage(st))
}

// Category detalle de una categoría con sus sitios.
func (h *PageHandler) Category(c *fiber.Ctx) error {
	ctx := c.Context()

	st := directory.NewDetailController(h.categories, h.websites, h.log).WithCallTimeout(h.timeout).Load(ctx, c.Params("id"))

	status := fiber.StatusOK
	if st.Status == directory.StatusError {
		status, _ = storeErrorStatus(st.Err)
	}
	return h.render(c, status, view.PageCategory, view.NewCategoryPage(st))
}

// CategoryIndex el breadcrumb "Categories" apunta a /category; el listado vive en la home.
func (h *PageHandler) CategoryIndex(c *fiber.Ctx) error {
	return c.Redirect("/#categories", fiber.StatusFound)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.log.Error().Err(err).Str("page", page).Str("request_id", GetRequestID(c)).Msg("renderizar página")
		return fiber.NewError(fiber.StatusInternalServerError, "error al renderizar la página")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
