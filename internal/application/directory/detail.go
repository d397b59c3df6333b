package directory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/pkg/logger"
)

// DetailState snapshot de la página de una categoría.
type DetailState struct {
	Status     Status
	CategoryID string // id de la carga a la que corresponde el estado
	Category   *entity.Category
	Websites   []entity.Website
	Err        error
}

// Empty true si la categoría existe pero no tiene sitios.
func (s DetailState) Empty() bool {
	return s.Status == StatusSuccess && len(s.Websites) == 0
}

// DetailController carga una categoría y sus sitios, parametrizado por el id de la ruta.
type DetailController struct {
	categories  repository.CategoryRepository
	websites    repository.WebsiteRepository
	log         *logger.Logger
	callTimeout time.Duration

	mu    sync.Mutex // protege gens y state
	gens  generations
	state DetailState
}

// NewDetailController construye el controlador con los repositorios inyectados.
func NewDetailController(
	categories repository.CategoryRepository,
	websites repository.WebsiteRepository,
	log *logger.Logger,
) *DetailController {
	return &DetailController{
		categories: categories,
		websites:   websites,
		log:        log.Component("detail"),
	}
}

// WithCallTimeout fija el límite de cada consulta a la tienda (categoría y sitios por separado).
func (c *DetailController) WithCallTimeout(d time.Duration) *DetailController {
	c.callTimeout = d
	return c
}

// State devuelve una copia del último estado aplicado.
func (c *DetailController) State() DetailState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Load carga categoryID. Debe llamarse al montar la página y cada vez que cambie el id.
// Una carga anterior todavía en curso se cancela y su resultado se descarta.
//
// Tanto el fallo de la categoría (incluido "no encontrada") como el de los sitios
// dejan el estado en error: no hay render parcial.
func (c *DetailController) Load(ctx context.Context, categoryID string) DetailState {
	categoryID = strings.TrimSpace(categoryID)

	c.mu.Lock()
	lctx, cancel, gen := c.gens.next(ctx)
	c.state = DetailState{Status: StatusLoading, CategoryID: categoryID}
	c.mu.Unlock()
	defer cancel()

	result := c.fetch(lctx, categoryID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens.settle(gen) {
		c.state = result
	} else {
		c.log.Debug().Str("category_id", categoryID).Msg("respuesta obsoleta descartada")
	}
	return c.state.clone()
}

func (c *DetailController) fetch(ctx context.Context, categoryID string) DetailState {
	if categoryID == "" {
		return DetailState{Status: StatusError, CategoryID: categoryID, Err: fmt.Errorf("category id vacío: %w", domain.ErrInvalidInput)}
	}

	var (
		wg       sync.WaitGroup
		category *entity.Category
		catErr   error
		websites []entity.Website
		siteErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cctx, cancel := callContext(ctx, c.callTimeout)
		defer cancel()
		category, catErr = c.categories.GetByID(cctx, categoryID)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := callContext(ctx, c.callTimeout)
		defer cancel()
		websites, siteErr = c.websites.ListByCategory(cctx, categoryID)
	}()
	wg.Wait()

	if catErr == nil && category == nil {
		catErr = fmt.Errorf("get category %s: %w", categoryID, domain.ErrNotFound)
	}
	if catErr != nil {
		c.log.Warn().Err(catErr).Str("category_id", categoryID).Msg("cargar categoría")
		return DetailState{Status: StatusError, CategoryID: categoryID, Err: catErr}
	}
	if siteErr != nil {
		c.log.Error().Err(siteErr).Str("category_id", categoryID).Msg("cargar sitios")
		return DetailState{Status: StatusError, CategoryID: categoryID, Err: siteErr}
	}
	if websites == nil {
		websites = []entity.Website{}
	}
	return DetailState{Status: StatusSuccess, CategoryID: categoryID, Category: category, Websites: websites}
}

func (s DetailState) clone() DetailState {
	if s.Category != nil {
		cat := *s.Category
		s.Category = &cat
	}
	s.Websites = slices.Clone(s.Websites)
	return s
}
