package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func testConfig() SiteConfig {
	return SiteConfig{
		Title:   "Tidewater",
		Tagline: "Charts for every harbor",
		URL:     "https://docs.example.com",
		BaseURL: "/",
	}
}

func TestHomepageHeaderShowsTitleAndTaglineOnce(t *testing.T) {
	cfg := testConfig()
	doc := parse(t, render(t, HomepageHeader(cfg)))

	header := doc.Find("header")
	require.Equal(t, 1, header.Length())
	text := header.Text()
	assert.Equal(t, 1, strings.Count(text, cfg.Title))
	assert.Equal(t, 1, strings.Count(text, cfg.Tagline))
	assert.Equal(t, cfg.Title, header.Find("h1").Text())
	assert.Equal(t, cfg.Tagline, header.Find("p").Text())
}

func TestHomepageHeaderHasSingleGetStartedLink(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		href    string
	}{
		{"root", "/", "/docs/intro"},
		{"unset base", "", "/docs/intro"},
		{"sub path", "/handbook/", "/handbook/docs/intro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.BaseURL = tt.baseURL
			doc := parse(t, render(t, HomepageHeader(cfg)))

			links := doc.Find("header a")
			require.Equal(t, 1, links.Length())
			href, ok := links.Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.href, href)
			assert.Equal(t, "Get Started →", links.Text())
			assert.Equal(t, "button button--secondary button--lg", links.AttrOr("class", ""))
			assert.False(t, links.Is("[target]"))
		})
	}
}

func TestHeroClassesStayOff(t *testing.T) {
	assert.Equal(t, "hero__title", HeroTitleClass())
	assert.Equal(t, "hero__subtitle", HeroTaglineClass())
	assert.Equal(t, "hero heroBanner", HeroBannerClass())

	for _, cfg := range []SiteConfig{{}, testConfig(), {Title: "titleOnBannerImage", Tagline: "taglineOnBannerImage"}} {
		doc := parse(t, render(t, HomepageHeader(cfg)))
		assert.Equal(t, "hero__title", doc.Find("header h1").AttrOr("class", ""))
		assert.Equal(t, "hero__subtitle", doc.Find("header p").AttrOr("class", ""))
		assert.Zero(t, doc.Find(".titleOnBannerImage, .taglineOnBannerImage").Length())
	}
}

func TestHomeContainsHelloWorld(t *testing.T) {
	doc := parse(t, render(t, Home(testConfig())))

	assert.Equal(t, "Hello, World", doc.Find("main .container h1").Text())
	assert.Equal(t, 1, doc.Find("header.hero").Length())
	assert.Equal(t, "Tidewater | Tidewater", doc.Find("title").Text())
	assert.Equal(t, "Charts for every harbor", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Equal(t, "https://docs.example.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
}

func TestHomeIsDeterministic(t *testing.T) {
	first := render(t, Home(testConfig()))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, Home(testConfig())))
	}

	other := testConfig()
	other.Tagline = "Another tagline"
	assert.NotEqual(t, first, render(t, Home(other)))
}

func TestHomeEscapesConfig(t *testing.T) {
	cfg := SiteConfig{Title: "<script>alert(1)</script>", Tagline: `"quoted" & more`}
	html := render(t, HomepageHeader(cfg))

	assert.NotContains(t, html, "<script>")
	doc := parse(t, html)
	assert.Equal(t, cfg.Title, doc.Find("h1").Text())
	assert.Equal(t, cfg.Tagline, doc.Find("p").Text())
}
