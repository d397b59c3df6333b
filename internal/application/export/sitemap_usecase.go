package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lewistwins/websites/internal/domain/repository"
)

// SitemapUseCase arma el sitemap con la home y una URL por categoría.
type SitemapUseCase struct {
	categories repository.CategoryRepository
	builder    SitemapBuilder
	baseURL    string

	callTimeout time.Duration
}

// NewSitemapUseCase construye el caso de uso.
func NewSitemapUseCase(categories repository.CategoryRepository, builder SitemapBuilder, baseURL string) *SitemapUseCase {
	return &SitemapUseCase{
		categories: categories,
		builder:    builder,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// WithCallTimeout fija el límite de la consulta a la tienda.
func (uc *SitemapUseCase) WithCallTimeout(d time.Duration) *SitemapUseCase {
	uc.callTimeout = d
	return uc
}

// Build devuelve el XML del sitemap. Las categorías salen en el orden de presentación.
func (uc *SitemapUseCase) Build(ctx context.Context) ([]byte, error) {
	listCtx := ctx
	if uc.callTimeout > 0 {
		var cancel context.CancelFunc
		listCtx, cancel = context.WithTimeout(ctx, uc.callTimeout)
		defer cancel()
	}
	cats, err := uc.categories.ListOrdered(listCtx)
	if err != nil {
		return nil, fmt.Errorf("sitemap: listar categorías: %w", err)
	}

	entries := make([]SitemapEntry, 0, len(cats)+1)
	entries = append(entries, SitemapEntry{Loc: uc.baseURL + "/", ChangeFreq: "daily", Priority: 1.0})
	for _, c := range cats {
		entries = append(entries, SitemapEntry{
			Loc:        uc.baseURL + "/category/" + c.ID,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	out, err := uc.builder.BuildSitemap(entries)
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out, nil
}
