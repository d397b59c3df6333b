package view_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewistwins/websites/internal/application/directory"
	"github.com/lewistwins/websites/internal/domain"
	"github.com/lewistwins/websites/internal/domain/entity"
	"github.com/lewistwins/websites/internal/interfaces/http/view"
)

func render(t *testing.T, page string, data any) *goquery.Document {
	t.Helper()
	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderHome_Exito(t *testing.T) {
	st := directory.ListingState{
		Status: directory.StatusSuccess,
		Categories: []entity.CategorySummary{
			{Category: entity.Category{ID: "1", Name: "Design", Color: "#ff0000"}, WebsiteCount: 3},
			{Category: entity.Category{ID: "2", Name: "Tools"}, WebsiteCount: 0},
		},
	}
	doc := render(t, view.PageHome, view.NewHomePage(st))

	cards := doc.Find("a.category-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "/category/1", cards.First().AttrOr("href", ""))
	assert.Equal(t, "Design", cards.First().Find(".category-card__name").Text())
	assert.Equal(t, "3", cards.First().Find(".category-card__count").Text())
	assert.Equal(t, view.CategoryCardPlaceholder, cards.Eq(1).Find(".category-card__description").Text())

	assert.Equal(t, "Lewis Twins Websites", doc.Find("title").Text())
	assert.Equal(t, "Website Categories", doc.Find(".section__title").Text())
	assert.Equal(t, "Ready to Explore?", doc.Find(".cta__title").Text())
	assert.Zero(t, doc.Find(".panel").Length())
	assert.Equal(t, "Home", doc.Find(".breadcrumbs a.is-active").Text())
}

func TestRenderHome_Vacio(t *testing.T) {
	doc := render(t, view.PageHome, view.NewHomePage(directory.ListingState{Status: directory.StatusSuccess}))

	assert.Equal(t, "No Categories Yet", doc.Find(".panel--empty .panel__title").Text())
	assert.Zero(t, doc.Find("a.category-card").Length())
}

func TestRenderHome_Error(t *testing.T) {
	st := directory.ListingState{Status: directory.StatusError, Err: domain.ErrStoreUnavailable}
	doc := render(t, view.PageHome, view.NewHomePage(st))

	panel := doc.Find(".panel--error")
	require.Equal(t, 1, panel.Length())
	assert.Equal(t, "Connection Error", panel.Find(".panel__title").Text())
	assert.Equal(t, "/?retry=1", panel.Find("a").AttrOr("href", ""))
	assert.Equal(t, "Try Again", panel.Find("a").Text())
	assert.Zero(t, doc.Find("a.category-card").Length())
}

func TestRenderHome_Cargando(t *testing.T) {
	doc := render(t, view.PageHome, view.NewHomePage(directory.ListingState{Status: directory.StatusLoading}))
	assert.Equal(t, 1, doc.Find(".spinner.spinner--xl").Length())
	assert.Equal(t, 6, doc.Find(".spinner__dot").Length())
}

func TestRenderCategory_Exito(t *testing.T) {
	st := directory.DetailState{
		Status:     directory.StatusSuccess,
		CategoryID: "5",
		Category:   &entity.Category{ID: "5", Name: "Tools", Description: "Handy *tools*", Color: "#00ff00"},
		Websites: []entity.Website{
			{ID: "1", Title: "Go", URL: "https://www.go.dev"},
			{ID: "2", Title: "Bad", URL: "javascript:alert(1)"},
		},
	}
	doc := render(t, view.PageCategory, view.NewCategoryPage(st))

	assert.Equal(t, "Tools | Lewis Twins Websites", doc.Find("title").Text())
	assert.Equal(t, "Tools", doc.Find(".category-header__title").Text())
	assert.Equal(t, "tools", doc.Find(".category-header__description em").Text())
	assert.Equal(t, "2 Websites", doc.Find(".category-header__count").Text())
	assert.Equal(t, "/category/5/export.pdf", doc.Find(".category-header__export").AttrOr("href", ""))

	cards := doc.Find("a.website-card")
	require.Equal(t, 2, cards.Length())
	first := cards.First()
	assert.Equal(t, "https://www.go.dev", first.AttrOr("href", ""))
	assert.Equal(t, "_blank", first.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", first.AttrOr("rel", ""))
	assert.Equal(t, "go.dev", first.Find(".website-card__domain").Text())
	assert.NotContains(t, cards.Eq(1).AttrOr("href", ""), "javascript:")

	crumbs := doc.Find(".breadcrumbs a")
	require.Equal(t, 3, crumbs.Length())
	assert.Equal(t, "Category", crumbs.Last().Text())
	assert.Equal(t, "/category/5", crumbs.Last().AttrOr("href", ""))
	assert.Contains(t, doc.Find(".background").AttrOr("style", ""), "--bg-primary: #00ff00")
}

func TestRenderCategory_SinDescripcionNiSitios(t *testing.T) {
	st := directory.DetailState{
		Status:     directory.StatusSuccess,
		CategoryID: "3",
		Category:   &entity.Category{ID: "3", Name: "Vacía"},
		Websites:   []entity.Website{},
	}
	doc := render(t, view.PageCategory, view.NewCategoryPage(st))

	assert.Equal(t, view.DetailHeaderPlaceholder, doc.Find(".category-header__description").Text())
	assert.Equal(t, "0 Websites", doc.Find(".category-header__count").Text())
	empty := doc.Find(".panel--empty")
	assert.Equal(t, "No Websites Yet", empty.Find(".panel__title").Text())
	assert.Equal(t, "/", empty.Find("a.glass-button").AttrOr("href", ""))
}

func TestRenderCategory_NoEncontrada(t *testing.T) {
	st := directory.DetailState{
		Status:     directory.StatusError,
		CategoryID: "99",
		Err:        errors.Join(errors.New("get"), domain.ErrNotFound),
	}
	doc := render(t, view.PageCategory, view.NewCategoryPage(st))

	panel := doc.Find(".panel--error")
	assert.Equal(t, "Category Not Found", panel.Find(".panel__title").Text())
	assert.Contains(t, panel.Find(".panel__message").Text(), "doesn't exist")
	assert.Equal(t, "/", panel.Find("a").AttrOr("href", ""))
	assert.Zero(t, doc.Find("a.website-card").Length())
	assert.Zero(t, doc.Find(".category-header__title").Length())
}

func TestRender_PaginaDesconocida(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", nil))
}
