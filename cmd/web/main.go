// @title        Lewis Twins Websites API
// @version      1.0
// @description  Directorio público de sitios web organizados en categorías (solo lectura).
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lewistwins/websites/docs"
	"github.com/lewistwins/websites/internal/application/export"
	infrapdf "github.com/lewistwins/websites/internal/infrastructure/pdf"
	"github.com/lewistwins/websites/internal/infrastructure/sitemap"
	httpRouter "github.com/lewistwins/websites/internal/interfaces/http"
	"github.com/lewistwins/websites/internal/interfaces/http/view"
	"github.com/lewistwins/websites/pkg/config"
	"github.com/lewistwins/websites/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir tienda de datos")
	}
	defer st.close()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	pdfUC := export.NewPDFUseCase(st.categories, st.websites, infrapdf.NewMarotoPDFGenerator(), cfg.App.SiteBaseURL, log).
		WithCallTimeout(cfg.Store.Timeout)
	sitemapUC := export.NewSitemapUseCase(st.categories, sitemap.NewEtreeBuilder(), cfg.App.SiteBaseURL).
		WithCallTimeout(cfg.Store.Timeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(compress.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Lewis Twins Websites API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Categories:   st.categories,
		Websites:     st.websites,
		Renderer:     renderer,
		PDF:          pdfUC,
		Sitemap:      sitemapUC,
		Logger:       log,
		StoreTimeout: cfg.Store.Timeout,
		ServiceName:  cfg.App.Name,
		StoreDriver:  cfg.Store.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
