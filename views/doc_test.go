package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sidebarFixture() []Doc {
	return []Doc{
		{Slug: "intro", Path: "/docs/intro", Title: "Introduction", SidebarLabel: "Intro", HTML: `<h1 id="introduction">Introduction</h1>`, TitleInBody: true},
		{Slug: "install", Path: "/docs/install", Title: "Installation", HTML: "<p>Run the installer.</p>"},
		{Slug: "guides/deploy", Path: "/docs/guides/deploy", Title: "Deploying", Description: "Ship it", HTML: "<p>Push.</p>"},
	}
}

func TestDocPageSidebarMarksActive(t *testing.T) {
	docs := sidebarFixture()
	doc := parse(t, render(t, DocPage(testConfig(), docs[1], docs)))

	links := doc.Find("aside .menu__list a")
	require.Equal(t, 3, links.Length())
	assert.Equal(t, "Intro", links.First().Text())
	active := doc.Find("aside a.menu__link--active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "/docs/install", active.AttrOr("href", ""))
}

func TestDocPageTitle(t *testing.T) {
	docs := sidebarFixture()

	withHeading := parse(t, render(t, DocPage(testConfig(), docs[0], docs)))
	assert.Equal(t, 1, withHeading.Find("article h1").Length())
	assert.Equal(t, "Introduction | Tidewater", withHeading.Find("title").Text())

	withoutHeading := parse(t, render(t, DocPage(testConfig(), docs[1], docs)))
	assert.Equal(t, "Installation", withoutHeading.Find("article header h1").Text())
	assert.Equal(t, "Run the installer.", withoutHeading.Find("article p").Text())
}

func TestDocPageDescriptionFallsBackToTagline(t *testing.T) {
	docs := sidebarFixture()

	own := parse(t, render(t, DocPage(testConfig(), docs[2], docs)))
	assert.Equal(t, "Ship it", own.Find(`meta[name="description"]`).AttrOr("content", ""))

	fallback := parse(t, render(t, DocPage(testConfig(), docs[1], docs)))
	assert.Equal(t, testConfig().Tagline, fallback.Find(`meta[name="description"]`).AttrOr("content", ""))
}

func TestDocPagePagination(t *testing.T) {
	docs := sidebarFixture()

	first := parse(t, render(t, DocPage(testConfig(), docs[0], docs)))
	assert.Zero(t, first.Find(".pagination-nav__link--prev").Length())
	assert.Equal(t, "/docs/install", first.Find(".pagination-nav__link--next").AttrOr("href", ""))

	middle := parse(t, render(t, DocPage(testConfig(), docs[1], docs)))
	assert.Equal(t, "« Intro", middle.Find(".pagination-nav__link--prev").Text())
	assert.Equal(t, "Deploying »", middle.Find(".pagination-nav__link--next").Text())

	last := parse(t, render(t, DocPage(testConfig(), docs[2], docs)))
	assert.Zero(t, last.Find(".pagination-nav__link--next").Length())

	single := parse(t, render(t, DocPage(testConfig(), docs[0], docs[:1])))
	assert.Zero(t, single.Find(".pagination-nav").Length())
}

func TestStatusPages(t *testing.T) {
	notFound := parse(t, render(t, NotFound(testConfig())))
	assert.Equal(t, "Page Not Found", notFound.Find("main h1").Text())
	assert.Equal(t, "Page Not Found | Tidewater", notFound.Find("title").Text())
	assert.Equal(t, "/", notFound.Find("main a").AttrOr("href", ""))

	serverError := parse(t, render(t, ServerError(testConfig())))
	assert.Equal(t, "Something Went Wrong", serverError.Find("main h1").Text())
}
