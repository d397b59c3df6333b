package entity

// Website enlace curado que pertenece a exactamente una categoría (tabla websites).
type Website struct {
	ID          string
	CategoryID  string // website_list_id
	Title       string
	URL         string
	Description string
	OrderIndex  int
}
