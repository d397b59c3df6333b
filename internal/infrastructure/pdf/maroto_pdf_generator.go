// Package pdf genera la ficha descargable de una categoría del directorio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la categoría │ N° de sitios + fecha      │
//	│  Descripción                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SITIO: Título / dominio / descripción        │  QR a la URL │
//	│  ...                                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: URL de la página de la categoría                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lewistwins/websites/internal/application/export"
	"github.com/lewistwins/websites/pkg/color"
)

const websitePlaceholder = "Click to explore this website and discover what it has to offer."

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// MarotoPDFGenerator implementa export.CategoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ export.CategoryPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCategoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCategoryPDF(ctx context.Context, doc export.CategoryDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Category.Name, true).
		WithAuthor("Lewis Twins", true).
		Build()

	accent := accentColor(doc.Category.Color)
	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, accent))
	m.AddRows(descriptionRow(doc.Description))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.5}))

	if len(doc.Websites) == 0 {
		m.AddRows(row.New(14).Add(col.New(12).Add(
			text.New("No Websites Yet", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 4,
			}),
		)))
	}
	for i, w := range doc.Websites {
		m.AddRows(websiteRow(i+1, w, accent))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.1}))
	}

	m.AddRows(row.New(4))
	m.AddRows(footerRow(doc.PageURL))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc export.CategoryDocument, accent *props.Color) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.Category.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: accent, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(countLabel(len(doc.Websites)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(doc.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func descriptionRow(description string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(description, props.Text{Size: 9, Color: colorGray, Top: 1}),
	))
}

// websiteRow: datos del sitio a la izquierda, QR con su URL a la derecha.
func websiteRow(n int, w export.WebsiteEntry, accent *props.Color) core.Row {
	desc := w.Description
	if desc == "" {
		desc = websitePlaceholder
	}
	return row.New(30).Add(
		col.New(9).Add(
			text.New(fmt.Sprintf("%d. %s", n, w.Title), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
			text.New(w.Domain, props.Text{Size: 8, Top: 8, Color: accent}),
			text.New(desc, props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(3).Add(code.NewQr(w.URL, props.Rect{Percent: 85, Center: true})),
	)
}

func footerRow(pageURL string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(pageURL, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func accentColor(hex string) *props.Color {
	c := color.Parse(hex).RGB
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 Website"
	}
	return fmt.Sprintf("%d Websites", n)
}
