package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/domain/repository"
)

const (
	tableCategories = "website_lists"
	tableWebsites   = "websites"

	categoryColumns = "id,name,description,color,order_index"
	websiteColumns  = "id,website_list_id,title,url,description,order_index"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.WebsiteRepository  = (*WebsiteRepo)(nil)
)

type categoryRow struct {
	ID          flexID  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	OrderIndex  *int    `json:"order_index"`
}

func (r categoryRow) toEntity() entity.Category {
	return entity.Category{
		ID:          string(r.ID),
		Name:        r.Name,
		Description: deref(r.Description),
		Color:       deref(r.Color),
		OrderIndex:  derefInt(r.OrderIndex),
	}
}

type websiteRow struct {
	ID          flexID  `json:"id"`
	CategoryID  flexID  `json:"website_list_id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

func (r websiteRow) toEntity() entity.Website {
	return entity.Website{
		ID:          string(r.ID),
		CategoryID:  string(r.CategoryID),
		Title:       r.Title,
		URL:         r.URL,
		Description: deref(r.Description),
		OrderIndex:  derefInt(r.OrderIndex),
	}
}

// CategoryRepo implementación de CategoryRepository sobre PostgREST.
type CategoryRepo struct {
	client *Client
}

// NewCategoryRepository construye el adaptador de lectura de categorías.
func NewCategoryRepository(client *Client) *CategoryRepo {
	return &CategoryRepo{client: client}
}

// ListOrdered website_lists?select=...&order=order_index.asc
func (r *CategoryRepo) ListOrdered(ctx context.Context) ([]entity.Category, error) {
	q := url.Values{}
	q.Set("select", categoryColumns)
	q.Set("order", "order_index.asc")
	var rows []categoryRow
	if err := r.client.selectRows(ctx, tableCategories, q, false, &rows); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// GetByID website_lists?id=eq.{id} con Accept de objeto único.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	q := url.Values{}
	q.Set("select", categoryColumns)
	q.Set("id", eq(id))
	var row categoryRow
	if err := r.client.selectRows(ctx, tableCategories, q, true, &row); err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	if row.ID == "" {
		return nil, fmt.Errorf("get category %s: %w", id, domain.ErrNotFound)
	}
	c := row.toEntity()
	return &c, nil
}

// CountWebsites HEAD websites?website_list_id=eq.{id} con count=exact.
func (r *CategoryRepo) CountWebsites(ctx context.Context, categoryID string) (int, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("website_list_id", eq(categoryID))
	n, err := r.client.count(ctx, tableWebsites, q)
	if err != nil {
		return 0, fmt.Errorf("count websites %s: %w", categoryID, err)
	}
	return n, nil
}

// WebsiteRepo implementación de WebsiteRepository sobre PostgREST.
type WebsiteRepo struct {
	client *Client
}

// NewWebsiteRepository construye el adaptador de lectura de sitios.
func NewWebsiteRepository(client *Client) *WebsiteRepo {
	return &WebsiteRepo{client: client}
}

// ListByCategory websites?website_list_id=eq.{id}&order=order_index.asc
func (r *WebsiteRepo) ListByCategory(ctx context.Context, categoryID string) ([]entity.Website, error) {
	q := url.Values{}
	q.Set("select", websiteColumns)
	q.Set("website_list_id", eq(categoryID))
	q.Set("order", "order_index.asc")
	var rows []websiteRow
	if err := r.client.selectRows(ctx, tableWebsites, q, false, &rows); err != nil {
		return nil, fmt.Errorf("list websites %s: %w", categoryID, err)
	}
	out := make([]entity.Website, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
