package export

import (
	"context"
	"time"

	"github.com/lewistwins/websites/internal/domain/entity"
)

// CategoryPDFGenerator puerto de salida para la generación del PDF de una categoría.
type CategoryPDFGenerator interface {
	GenerateCategoryPDF(ctx context.Context, doc CategoryDocument) ([]byte, error)
}

// SitemapBuilder puerto de salida que serializa las entradas del sitemap.
type SitemapBuilder interface {
	BuildSitemap(entries []SitemapEntry) ([]byte, error)
}

// CategoryDocument datos ya resueltos que necesita el generador de PDF.
type CategoryDocument struct {
	Category    entity.Category
	Description string // descripción o texto por defecto
	PageURL     string // URL pública de la página de la categoría
	Websites    []WebsiteEntry
	GeneratedAt time.Time
}

// WebsiteEntry sitio enriquecido con el dominio a mostrar.
type WebsiteEntry struct {
	entity.Website
	Domain string
}

// SitemapEntry una URL del sitemap.
type SitemapEntry struct {
	Loc        string
	ChangeFreq string
	Priority   float64
}
