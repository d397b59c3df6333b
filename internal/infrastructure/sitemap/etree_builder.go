// Package sitemap serializa el sitemap.xml del sitio (protocolo sitemaps.org 0.9).
package sitemap

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/lewistwins/websites/internal/application/export"
)

// Namespace del protocolo sitemaps.org.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// EtreeBuilder implementa export.SitemapBuilder con beevik/etree.
type EtreeBuilder struct{}

var _ export.SitemapBuilder = (*EtreeBuilder)(nil)

// NewEtreeBuilder construye el builder.
func NewEtreeBuilder() *EtreeBuilder { return &EtreeBuilder{} }

// BuildSitemap devuelve el documento <urlset> con una <url> por entrada, en el mismo orden.
func (b *EtreeBuilder) BuildSitemap(entries []export.SitemapEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", Namespace)

	for _, e := range entries {
		if e.Loc == "" {
			return nil, fmt.Errorf("sitemap: entrada sin loc")
		}
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(e.Loc)
		if e.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(e.ChangeFreq)
		}
		if e.Priority > 0 {
			u.CreateElement("priority").SetText(strconv.FormatFloat(e.Priority, 'f', 1, 64))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: escribir XML: %w", err)
	}
	return out, nil
}
