// Package export agrupa los casos de uso que producen documentos a partir del directorio:
// el PDF de una categoría y el sitemap del sitio.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lewistwins/websites/internal/application/directory"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/pkg/linkutil"
	"github.com/lewistwins/websites/pkg/logger"
)

// DefaultCategoryDescription texto cuando la categoría no tiene descripción.
const DefaultCategoryDescription = "Explore this curated collection of websites."

// PDFUseCase genera el PDF descargable de una categoría con sus sitios.
type PDFUseCase struct {
	categories repository.CategoryRepository
	websites   repository.WebsiteRepository
	generator  CategoryPDFGenerator
	baseURL    string
	log        *logger.Logger
	now        func() time.Time

	callTimeout time.Duration
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	categories repository.CategoryRepository,
	websites repository.WebsiteRepository,
	generator CategoryPDFGenerator,
	baseURL string,
	log *logger.Logger,
) *PDFUseCase {
	return &PDFUseCase{
		categories: categories,
		websites:   websites,
		generator:  generator,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
		now:        time.Now,
	}
}

// WithCallTimeout fija el límite de cada consulta a la tienda durante la carga.
func (uc *PDFUseCase) WithCallTimeout(d time.Duration) *PDFUseCase {
	uc.callTimeout = d
	return uc
}

// DownloadCategoryPDF carga la categoría igual que la página de detalle y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrNotFound          si la categoría no existe.
//   - domain.ErrInvalidInput      si el id está vacío.
//   - domain.ErrStoreUnavailable  si la tienda falla.
func (uc *PDFUseCase) DownloadCategoryPDF(ctx context.Context, categoryID string) (pdfBytes []byte, filename string, err error) {
	st := directory.NewDetailController(uc.categories, uc.websites, uc.log).
		WithCallTimeout(uc.callTimeout).
		Load(ctx, categoryID)
	if st.Status != directory.StatusSuccess {
		return nil, "", fmt.Errorf("pdf: cargar categoría: %w", st.Err)
	}

	doc := CategoryDocument{
		Category:    *st.Category,
		Description: strings.TrimSpace(st.Category.Description),
		PageURL:     uc.baseURL + "/category/" + st.Category.ID,
		Websites:    make([]WebsiteEntry, 0, len(st.Websites)),
		GeneratedAt: uc.now(),
	}
	if doc.Description == "" {
		doc.Description = DefaultCategoryDescription
	}
	for _, w := range st.Websites {
		doc.Websites = append(doc.Websites, WebsiteEntry{Website: w, Domain: linkutil.Domain(w.URL).Value})
	}

	pdfBytes, err = uc.generator.GenerateCategoryPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	slug := linkutil.Slug(st.Category.Name)
	if slug == "" {
		slug = "category-" + st.Category.ID
	}
	return pdfBytes, slug + ".pdf", nil
}
