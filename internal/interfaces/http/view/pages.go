package view

import (
	"errors"
	"html/template"

	"github.com/lewistwins/websites/internal/application/directory"
	"github.com/lewistwins/websites/internal/domain"
)

// DetailHeaderPlaceholder texto de cabecera cuando la categoría no tiene descripción.
const DetailHeaderPlaceholder = "Explore this curated collection of websites."

// Layout datos comunes de la plantilla base.
type Layout struct {
	Title       string
	Path        string
	Breadcrumbs []Crumb
	Background  Background
}

func newLayout(title, currentPath, categoryColor string) Layout {
	return Layout{
		Title:       title,
		Path:        currentPath,
		Breadcrumbs: Breadcrumbs(currentPath),
		Background:  NewBackground(categoryColor),
	}
}

// Panel bloque de error o de estado vacío con su acción.
type Panel struct {
	Title   string
	Message string
	Action  Button
}

// HomePage modelo de la página de listado.
type HomePage struct {
	Layout
	Loading bool
	Spinner Spinner
	Cards   []CategoryCard
	Empty   *Panel
	Error   *Panel
	TopLink Button
}

// NewHomePage traduce el estado del listado a su representación.
func NewHomePage(st directory.ListingState) HomePage {
	p := HomePage{
		Layout:  newLayout("Lewis Twins Websites", "/", ""),
		Spinner: NewSpinner(SizeXL),
		TopLink: NewButton("Back to Top ↑", "#top", ButtonPrimary, SizeLG),
	}
	switch st.Status {
	case directory.StatusIdle, directory.StatusLoading:
		p.Loading = true
	case directory.StatusError:
		p.Error = &Panel{
			Title:   "Connection Error",
			Message: errorMessage(st.Err),
			Action:  NewButton("Try Again", "/?retry=1", ButtonPrimary, SizeMD),
		}
	case directory.StatusSuccess:
		if st.Empty() {
			p.Empty = &Panel{
				Title:   "No Categories Yet",
				Message: "We're working on adding some amazing website categories. Check back soon!",
			}
		}
		p.Cards = make([]CategoryCard, 0, len(st.Categories))
		for i, c := range st.Categories {
			p.Cards = append(p.Cards, NewCategoryCard(c, i))
		}
	}
	return p
}

// CategoryPage modelo de la página de detalle.
type CategoryPage struct {
	Layout
	Loading     bool
	Spinner     Spinner
	Back        Button
	Name        string
	Description template.HTML
	Accent      Accent
	CountLabel  string
	ExportHref  string
	Cards       []WebsiteCard
	Empty       *Panel
	Error       *Panel
}

// NewCategoryPage traduce el estado del detalle a su representación.
func NewCategoryPage(st directory.DetailState) CategoryPage {
	catColor := ""
	if st.Category != nil {
		catColor = st.Category.Color
	}
	p := CategoryPage{
		Layout:  newLayout("Lewis Twins Websites", "/category/"+st.CategoryID, catColor),
		Spinner: NewSpinner(SizeLG),
		Back:    NewButton("Back to Categories", "/", ButtonOutline, SizeMD),
		Accent:  newAccent(catColor),
	}
	switch st.Status {
	case directory.StatusIdle, directory.StatusLoading:
		p.Loading = true
	case directory.StatusError:
		p.Error = &Panel{
			Title:   "Category Not Found",
			Message: errorMessage(st.Err),
			Action:  NewButton("← Back to Home", "/", ButtonPrimary, SizeMD),
		}
	case directory.StatusSuccess:
		cat := st.Category
		p.Title = cat.Name + " | Lewis Twins Websites"
		p.Name = cat.Name
		p.Description = RichText(cat.Description)
		if p.Description == "" {
			p.Description = template.HTML(template.HTMLEscapeString(DetailHeaderPlaceholder))
		}
		p.CountLabel = CountLabel(len(st.Websites))
		p.ExportHref = "/category/" + cat.ID + "/export.pdf"
		if st.Empty() {
			p.Empty = &Panel{
				Title:   "No Websites Yet",
				Message: "This category is waiting for amazing websites to be added. Check back soon!",
				Action:  NewButton("← Explore Other Categories", "/", ButtonPrimary, SizeMD),
			}
		}
		p.Cards = make([]WebsiteCard, 0, len(st.Websites))
		for i, w := range st.Websites {
			p.Cards = append(p.Cards, NewWebsiteCard(w, cat.Color, i))
		}
	}
	return p
}

// errorMessage mensaje visible para el usuario; los detalles internos quedan en el log.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "The category you're looking for doesn't exist or has been removed."
	case errors.Is(err, domain.ErrInvalidInput):
		return "The category link is not valid."
	default:
		return "We couldn't reach the website catalog. Please try again in a moment."
	}
}
