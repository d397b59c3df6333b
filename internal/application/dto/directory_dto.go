package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	OrderIndex  int    `json:"order_index"`
}

// CategorySummaryResponse categoría del listado con su conteo de sitios.
type CategorySummaryResponse struct {
	CategoryResponse
	WebsiteCount int    `json:"website_count"`
	AccentRGB    string `json:"accent_rgb"` // "r, g, b" ya resuelto con fallback
}

// CategoryListResponse estado del listado de categorías.
type CategoryListResponse struct {
	Status     string                    `json:"status"`
	Categories []CategorySummaryResponse `json:"categories"`
}

// WebsiteResponse salida de un sitio.
type WebsiteResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"website_list_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Domain      string `json:"domain"`
	OrderIndex  int    `json:"order_index"`
}

// CategoryDetailResponse categoría con sus sitios en orden de presentación.
type CategoryDetailResponse struct {
	Status       string            `json:"status"`
	Category     CategoryResponse  `json:"category"`
	Websites     []WebsiteResponse `json:"websites"`
	WebsiteCount int               `json:"website_count"`
}
