// Package seed lee el catálogo de categorías y sitios desde YAML.
// Lo usan la tienda SQLite local y cmd/seed para generar SQL.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog raíz del archivo de semilla.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Category categoría con sus sitios anidados.
type Category struct {
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Color       string    `yaml:"color"`
	OrderIndex  int       `yaml:"order_index"`
	Websites    []Website `yaml:"websites"`
}

// Website sitio de una categoría.
type Website struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	OrderIndex  int    `yaml:"order_index"`
}

// LoadFile abre y decodifica path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode lee el YAML, valida y asigna ids consecutivos a los que vienen en cero.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: decodificar YAML: %w", err)
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) normalize() error {
	catIDs := make(map[int]bool)
	siteIDs := make(map[int]bool)
	for _, cat := range c.Categories {
		catIDs[cat.ID] = cat.ID != 0
		for _, w := range cat.Websites {
			siteIDs[w.ID] = w.ID != 0
		}
	}
	nextCat, nextSite := 1, 1
	for i := range c.Categories {
		cat := &c.Categories[i]
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("seed: categoría #%d sin name", i+1)
		}
		if cat.ID == 0 {
			for catIDs[nextCat] {
				nextCat++
			}
			cat.ID = nextCat
			catIDs[nextCat] = true
		}
		for j := range cat.Websites {
			w := &cat.Websites[j]
			if strings.TrimSpace(w.Title) == "" || strings.TrimSpace(w.URL) == "" {
				return fmt.Errorf("seed: sitio #%d de %q requiere title y url", j+1, cat.Name)
			}
			if w.ID == 0 {
				for siteIDs[nextSite] {
					nextSite++
				}
				w.ID = nextSite
				siteIDs[nextSite] = true
			}
		}
	}
	return nil
}
