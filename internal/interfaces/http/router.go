package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/lewistwins/websites/internal/application/dto"
	"github.com/lewistwins/websites/internal/application/export"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/internal/interfaces/http/view"
	"github.com/lewistwins/websites/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories   repository.CategoryRepository
	Websites     repository.WebsiteRepository
	Renderer     *view.Renderer
	PDF          *export.PDFUseCase
	Sitemap      *export.SitemapUseCase
	Logger       *logger.Logger
	StoreTimeout time.Duration // límite de cada consulta a la tienda (páginas y API)
	ServiceName  string
	StoreDriver  string
}

// Router registra el middleware de log y todas las rutas del sitio y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Store: deps.StoreDriver})
	})

	// Assets embebidos (CSS)
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:   http.FS(view.Static()),
		MaxAge: 3600,
	}))

	// Páginas HTML
	pages := NewPageHandler(deps.Categories, deps.Websites, deps.Renderer, deps.Logger, deps.StoreTimeout)
	app.Get("/", pages.Home)
	app.Get("/category", pages.CategoryIndex)
	app.Get("/category/:id", pages.Category)

	// Descargas
	exports := NewExportHandler(deps.PDF, deps.Sitemap, deps.Logger)
	app.Get("/category/:id/export.pdf", exports.CategoryPDF)
	app.Get("/sitemap.xml", exports.Sitemap)

	// API JSON (solo lectura)
	api := app.Group("/api")
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Categories, deps.Websites, deps.Logger, deps.StoreTimeout)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
}
