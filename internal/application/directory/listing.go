package directory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
	"github.com/lewistwins/websites/pkg/logger"
)

// ListingState snapshot del listado de categorías.
type ListingState struct {
	Status     Status
	Categories []entity.CategorySummary // nil salvo en success
	Err        error
}

// Empty true si la carga terminó bien pero no hay categorías.
func (s ListingState) Empty() bool {
	return s.Status == StatusSuccess && len(s.Categories) == 0
}

// ListingController carga todas las categorías ordenadas y el conteo de sitios de cada una.
type ListingController struct {
	categories  repository.CategoryRepository
	log         *logger.Logger
	callTimeout time.Duration

	mu    sync.Mutex // protege gens y state
	gens  generations
	state ListingState
}

// NewListingController construye el controlador con el cliente de la tienda inyectado.
func NewListingController(categories repository.CategoryRepository, log *logger.Logger) *ListingController {
	return &ListingController{
		categories: categories,
		log:        log.Component("listing"),
	}
}

// WithCallTimeout fija el límite de cada consulta a la tienda (listado y cada conteo).
func (c *ListingController) WithCallTimeout(d time.Duration) *ListingController {
	c.callTimeout = d
	return c
}

// State devuelve una copia del último estado aplicado.
func (c *ListingController) State() ListingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Retry repite la carga completa desde cero ("Try Again").
func (c *ListingController) Retry(ctx context.Context) ListingState {
	return c.Load(ctx)
}

// Load ejecuta la carga completa y devuelve el estado vigente al terminar.
//
// Si la consulta de categorías falla el estado pasa a error sin conservar datos
// anteriores. Si falla el conteo de una categoría, su conteo queda en 0 y solo se
// registra un warning.
func (c *ListingController) Load(ctx context.Context) ListingState {
	c.mu.Lock()
	lctx, cancel, gen := c.gens.next(ctx)
	c.state = ListingState{Status: StatusLoading}
	c.mu.Unlock()
	defer cancel()

	result := c.fetch(lctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens.settle(gen) {
		c.state = result
	} else {
		c.log.Debug().Uint64("generation", gen).Msg("respuesta obsoleta descartada")
	}
	return c.state.clone()
}

func (c *ListingController) fetch(ctx context.Context) ListingState {
	listCtx, cancel := callContext(ctx, c.callTimeout)
	cats, err := c.categories.ListOrdered(listCtx)
	cancel()
	if err != nil {
		c.log.Error().Err(err).Msg("listar categorías")
		return ListingState{Status: StatusError, Err: err}
	}

	// Un conteo por categoría, en paralelo; cada goroutine escribe solo su índice.
	out := make([]entity.CategorySummary, len(cats))
	var wg sync.WaitGroup
	for i, cat := range cats {
		out[i] = entity.CategorySummary{Category: cat}
		wg.Add(1)
		go func(i int, categoryID string) {
			defer wg.Done()
			cctx, cancel := callContext(ctx, c.callTimeout)
			defer cancel()
			n, err := c.categories.CountWebsites(cctx, categoryID)
			if err != nil {
				c.log.Warn().Err(err).Str("category_id", categoryID).Msg("conteo de sitios falló, se usa 0")
				return
			}
			out[i].WebsiteCount = n
		}(i, cat.ID)
	}
	wg.Wait()

	return ListingState{Status: StatusSuccess, Categories: out}
}

func (s ListingState) clone() ListingState {
	s.Categories = slices.Clone(s.Categories)
	return s
}
