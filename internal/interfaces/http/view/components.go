// Package view contiene los modelos de presentación del sitio y las plantillas que los pintan.
// Todo lo que hay aquí es puro: recibe entidades o estados ya cargados y no hace I/O.
package view

import (
	"fmt"
	"html/template"

	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/pkg/color"
	"github.com/lewistwins/websites/pkg/linkutil"
)

// Textos por defecto cuando falta la descripción.
const (
	CategoryCardPlaceholder = "Explore this collection of carefully curated websites."
	WebsiteCardPlaceholder  = "Click to explore this website and discover what it has to offer."
)

// Accent colores derivados del color de una categoría, listos para CSS inline.
type Accent struct {
	Hex      string // color sólido (#rrggbb)
	Channels string // "r, g, b" para rgba()
	Fallback bool
}

func newAccent(hex string) Accent {
	res := color.Parse(hex)
	return Accent{Hex: res.Hex(), Channels: res.Channels(), Fallback: res.Fallback}
}

// Style variables CSS que consumen las tarjetas.
func (a Accent) Style() template.CSS {
	return template.CSS(fmt.Sprintf("--accent: %s; --accent-rgb: %s;", a.Hex, a.Channels))
}

// CategoryCard tarjeta de una categoría en el listado.
type CategoryCard struct {
	Href        string
	Name        string
	Description string
	Count       int
	CountLabel  string
	Accent      Accent
	Delay       string // retardo de la animación de entrada, p.ej. "0.3s"
}

// NewCategoryCard construye la tarjeta para la posición index del listado.
func NewCategoryCard(summary entity.CategorySummary, index int) CategoryCard {
	desc := PlainText(summary.Description)
	if desc == "" {
		desc = CategoryCardPlaceholder
	}
	return CategoryCard{
		Href:        "/category/" + summary.ID,
		Name:        summary.Name,
		Description: desc,
		Count:       summary.WebsiteCount,
		CountLabel:  CountLabel(summary.WebsiteCount),
		Accent:      newAccent(summary.Color),
		Delay:       stagger(index, 0.1),
	}
}

// WebsiteCard tarjeta de un sitio dentro de una categoría. Abre la URL en una pestaña nueva.
type WebsiteCard struct {
	Title          string
	URL            string
	Domain         string
	DomainFallback bool
	Description    string
	Accent         Accent
	Delay          string
}

// NewWebsiteCard construye la tarjeta con el color de la categoría dueña.
func NewWebsiteCard(w entity.Website, categoryColor string, index int) WebsiteCard {
	desc := PlainText(w.Description)
	if desc == "" {
		desc = WebsiteCardPlaceholder
	}
	domain := linkutil.Domain(w.URL)
	return WebsiteCard{
		Title:          w.Title,
		URL:            w.URL,
		Domain:         domain.Value,
		DomainFallback: domain.Fallback,
		Description:    desc,
		Accent:         newAccent(categoryColor),
		Delay:          stagger(index, 0.05),
	}
}

// ButtonVariant estilo visual del botón.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize tamaño del botón.
type ButtonSize string

const (
	SizeSM ButtonSize = "sm"
	SizeMD ButtonSize = "md"
	SizeLG ButtonSize = "lg"
	SizeXL ButtonSize = "xl"
)

// Button enlace con apariencia de botón de cristal.
type Button struct {
	Label string
	Href  string
	Class string
}

// NewButton construye el botón. Variantes o tamaños desconocidos caen en primary / md.
func NewButton(label, href string, variant ButtonVariant, size ButtonSize) Button {
	switch variant {
	case ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost:
	default:
		variant = ButtonPrimary
	}
	switch size {
	case SizeSM, SizeMD, SizeLG, SizeXL:
	default:
		size = SizeMD
	}
	return Button{
		Label: label,
		Href:  href,
		Class: fmt.Sprintf("glass-button glass-button--%s glass-button--%s", variant, size),
	}
}

// Spinner indicador de carga.
type Spinner struct {
	Class string
	Dots  []int // ángulos de los seis puntos
}

// NewSpinner construye el spinner; size es sm, md, lg o xl (md por defecto).
func NewSpinner(size ButtonSize) Spinner {
	switch size {
	case SizeSM, SizeMD, SizeLG, SizeXL:
	default:
		size = SizeMD
	}
	return Spinner{
		Class: "spinner spinner--" + string(size),
		Dots:  []int{0, 60, 120, 180, 240, 300},
	}
}

// Background degradado animado del fondo de página.
type Background struct {
	Primary   string
	Secondary string
	Intensity float64
}

// Colores del fondo por defecto (home).
const (
	DefaultBackgroundPrimary   = "#667eea"
	DefaultBackgroundSecondary = "#764ba2"
)

// NewBackground deriva el fondo a partir del color de la categoría. Sin color se usan los
// colores por defecto; con color el secundario es su complementario. Un color
// malformado usa el azul de respaldo del fondo.
func NewBackground(categoryColor string) Background {
	if categoryColor == "" {
		return Background{
			Primary:   DefaultBackgroundPrimary,
			Secondary: DefaultBackgroundSecondary,
			Intensity: 0.3,
		}
	}
	base := color.ParseOr(categoryColor, color.BackgroundFallback)
	return Background{
		Primary:   base.Hex(),
		Secondary: color.Complementary(base.RGB).Hex(),
		Intensity: 0.4,
	}
}

// Style variables CSS del fondo.
func (b Background) Style() template.CSS {
	return template.CSS(fmt.Sprintf("--bg-primary: %s; --bg-secondary: %s; --bg-intensity: %.1f;",
		b.Primary, b.Secondary, b.Intensity))
}

// CountLabel "1 Website" / "N Websites".
func CountLabel(n int) string {
	if n == 1 {
		return "1 Website"
	}
	return fmt.Sprintf("%d Websites", n)
}

func stagger(index int, step float64) string {
	if index < 0 {
		index = 0
	}
	return fmt.Sprintf("%.2fs", float64(index)*step)
}
