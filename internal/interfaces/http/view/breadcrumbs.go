package view

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Crumb una entrada del breadcrumb.
type Crumb struct {
	Label  string
	Href   string
	Active bool
}

// Breadcrumbs arma la ruta de navegación a partir del path actual:
// siempre Home; el segmento "category" es Categories y el id bajo él es Category.
// Otros segmentos se muestran en formato título.
func Breadcrumbs(currentPath string) []Crumb {
	clean := path.Clean("/" + currentPath)
	crumbs := []Crumb{{Label: "Home", Href: "/", Active: clean == "/"}}
	if clean == "/" {
		return crumbs
	}

	segments := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	title := cases.Title(language.English)
	href := ""
	for i, seg := range segments {
		href += "/" + seg
		last := i == len(segments)-1

		var label string
		switch {
		case seg == "category" && i == 0:
			label = "Categories"
		case last && segments[0] == "category" && i == 1:
			label = "Category"
		default:
			label = title.String(strings.NewReplacer("-", " ", "_", " ").Replace(seg))
		}
		crumbs = append(crumbs, Crumb{Label: label, Href: href, Active: last})
	}
	return crumbs
}
