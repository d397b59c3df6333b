package directory_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
)

// fakeStore implementa CategoryRepository y WebsiteRepository en memoria.
// Los gates permiten bloquear una llamada hasta que el test la libere.
type fakeStore struct {
	mu sync.Mutex

	categories []entity.Category
	websites   map[string][]entity.Website
	counts     map[string]int
	countDelay map[string]time.Duration

	listErr  error
	countErr map[string]error
	siteErr  error

	listGate chan struct{} // bloquea la próxima ListOrdered
	getGates map[string]chan struct{}
	started  chan string

	respectCtx bool
	calls      int
	noDeadline int // llamadas cuyo contexto no traía deadline
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		websites:   map[string][]entity.Website{},
		counts:     map[string]int{},
		countDelay: map[string]time.Duration{},
		countErr:   map[string]error{},
		getGates:   map[string]chan struct{}{},
		started:    make(chan string, 8),
	}
}

func (f *fakeStore) wait(ctx context.Context, gate chan struct{}) error {
	if !f.respectCtx {
		<-gate
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeStore) ListOrdered(ctx context.Context) ([]entity.Category, error) {
	f.mu.Lock()
	f.track(ctx)
	gate := f.listGate
	f.listGate = nil
	cats := append([]entity.Category(nil), f.categories...)
	err := f.listErr
	f.mu.Unlock()

	if gate != nil {
		f.started <- "list"
		if werr := f.wait(ctx, gate); werr != nil {
			return nil, werr
		}
	}
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	f.mu.Lock()
	f.track(ctx)
	gate := f.getGates[id]
	var found *entity.Category
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			found = &c
		}
	}
	f.mu.Unlock()

	if gate != nil {
		f.started <- id
		if err := f.wait(ctx, gate); err != nil {
			return nil, err
		}
	}
	if found == nil {
		return nil, fmt.Errorf("get category %s: %w", id, domain.ErrNotFound)
	}
	return found, nil
}

func (f *fakeStore) CountWebsites(ctx context.Context, categoryID string) (int, error) {
	f.mu.Lock()
	f.track(ctx)
	delay := f.countDelay[categoryID]
	n := f.counts[categoryID]
	err := f.countErr[categoryID]
	f.mu.Unlock()

	if delay > 0 {
		if !f.respectCtx {
			time.Sleep(delay)
		} else {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (f *fakeStore) ListByCategory(ctx context.Context, categoryID string) ([]entity.Website, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track(ctx)
	if f.siteErr != nil {
		return nil, f.siteErr
	}
	return append([]entity.Website(nil), f.websites[categoryID]...), nil
}

// track cuenta la llamada; debe invocarse con f.mu tomado.
func (f *fakeStore) track(ctx context.Context) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		f.noDeadline++
	}
}

func (f *fakeStore) undeadlinedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.noDeadline
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
