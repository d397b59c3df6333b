package entity

// Category representa una lista de sitios (tabla website_lists).
// La aplicación solo lee copias puntuales; la tienda de tablas es la dueña del registro.
type Category struct {
	ID          string // opaco y estable; se usa como clave de ruta
	Name        string
	Description string // vacío si no tiene
	Color       string // 6 dígitos hex, '#' opcional; puede venir malformado
	OrderIndex  int
}

// CategorySummary categoría más el conteo de sitios calculado al cargar el listado.
// No se persiste ni se cachea.
type CategorySummary struct {
	Category
	WebsiteCount int
}
