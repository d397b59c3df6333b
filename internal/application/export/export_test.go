package export_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewistwins/websites/internal/application/export"
	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/pkg/logger"
)

type memStore struct {
	categories []entity.Category
	websites   map[string][]entity.Website
	err        error
}

func (m *memStore) ListOrdered(context.Context) ([]entity.Category, error) {
	return m.categories, m.err
}

func (m *memStore) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("get %s: %w", id, domain.ErrNotFound)
}

func (m *memStore) CountWebsites(_ context.Context, id string) (int, error) {
	return len(m.websites[id]), m.err
}

func (m *memStore) ListByCategory(_ context.Context, id string) ([]entity.Website, error) {
	return m.websites[id], m.err
}

type captureGenerator struct {
	doc export.CategoryDocument
	err error
}

func (g *captureGenerator) GenerateCategoryPDF(_ context.Context, doc export.CategoryDocument) ([]byte, error) {
	g.doc = doc
	return []byte("%PDF-fake"), g.err
}

type captureBuilder struct{ entries []export.SitemapEntry }

func (b *captureBuilder) BuildSitemap(entries []export.SitemapEntry) ([]byte, error) {
	b.entries = entries
	return []byte("<urlset/>"), nil
}

func sampleStore() *memStore {
	return &memStore{
		categories: []entity.Category{
			{ID: "1", Name: "Diseño Web", Color: "#112233"},
			{ID: "2", Name: "!!!", Description: "Herramientas"},
		},
		websites: map[string][]entity.Website{
			"1": {{ID: "10", CategoryID: "1", Title: "Dribbble", URL: "https://www.dribbble.com/shots"}},
		},
	}
}

func TestDownloadCategoryPDF(t *testing.T) {
	gen := &captureGenerator{}
	uc := export.NewPDFUseCase(sampleStore(), sampleStore(), gen, "https://lewistwins.dev/", logger.Nop())

	out, filename, err := uc.DownloadCategoryPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "diseno-web.pdf", filename)

	assert.Equal(t, export.DefaultCategoryDescription, gen.doc.Description)
	assert.Equal(t, "https://lewistwins.dev/category/1", gen.doc.PageURL)
	require.Len(t, gen.doc.Websites, 1)
	assert.Equal(t, "dribbble.com", gen.doc.Websites[0].Domain)
	assert.WithinDuration(t, time.Now(), gen.doc.GeneratedAt, time.Minute)
}

func TestDownloadCategoryPDF_NombreSinLetras(t *testing.T) {
	gen := &captureGenerator{}
	uc := export.NewPDFUseCase(sampleStore(), sampleStore(), gen, "", logger.Nop())

	_, filename, err := uc.DownloadCategoryPDF(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "category-2.pdf", filename)
	assert.Equal(t, "Herramientas", gen.doc.Description)
	assert.Empty(t, gen.doc.Websites)
}

func TestDownloadCategoryPDF_NoEncontrada(t *testing.T) {
	uc := export.NewPDFUseCase(sampleStore(), sampleStore(), &captureGenerator{}, "", logger.Nop())

	_, _, err := uc.DownloadCategoryPDF(context.Background(), "404")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDownloadCategoryPDF_FalloDelGenerador(t *testing.T) {
	gen := &captureGenerator{err: errors.New("fuente no disponible")}
	uc := export.NewPDFUseCase(sampleStore(), sampleStore(), gen, "", logger.Nop())

	_, _, err := uc.DownloadCategoryPDF(context.Background(), "1")
	assert.ErrorContains(t, err, "fuente no disponible")
}

func TestSitemapBuild(t *testing.T) {
	b := &captureBuilder{}
	uc := export.NewSitemapUseCase(sampleStore(), b, "https://lewistwins.dev/")

	out, err := uc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<urlset/>", string(out))

	locs := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		locs = append(locs, e.Loc)
	}
	assert.Equal(t, []string{
		"https://lewistwins.dev/",
		"https://lewistwins.dev/category/1",
		"https://lewistwins.dev/category/2",
	}, locs)
}

func TestSitemapBuild_ErrorDeTienda(t *testing.T) {
	st := sampleStore()
	st.err = domain.ErrStoreUnavailable
	uc := export.NewSitemapUseCase(st, &captureBuilder{}, "")

	_, err := uc.Build(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

// hangingStore no responde hasta que vence el contexto de la consulta.
type hangingStore struct{ memStore }

func (h *hangingStore) ListOrdered(ctx context.Context) ([]entity.Category, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (h *hangingStore) GetByID(ctx context.Context, _ string) (*entity.Category, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSitemapBuild_TimeoutPorConsulta(t *testing.T) {
	uc := export.NewSitemapUseCase(&hangingStore{}, &captureBuilder{}, "").WithCallTimeout(20 * time.Millisecond)

	_, err := uc.Build(context.Background())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestDownloadCategoryPDF_TimeoutPorConsulta(t *testing.T) {
	store := &hangingStore{}
	gen := &captureGenerator{}
	uc := export.NewPDFUseCase(store, store, gen, "", logger.Nop()).WithCallTimeout(20 * time.Millisecond)

	_, _, err := uc.DownloadCategoryPDF(context.Background(), "1")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, gen.doc.Category.ID, "no se genera PDF si la carga no termina")
}
