package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	// GetStartedPath is the call-to-action destination of the hero banner.
	GetStartedPath = "/docs/intro"
	// GetStartedLabel is the call-to-action text.
	GetStartedLabel = "Get Started →"
)

// HomepageHeader renders the hero banner: site title, tagline and the
// call-to-action link.
func HomepageHeader(cfg SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &writer{w: w}
		hw.raw("<header")
		hw.attr("class", HeroBannerClass())
		hw.raw(`><div class="container"><h1`)
		hw.attr("class", HeroTitleClass())
		hw.raw(">")
		hw.text(cfg.Title)
		hw.raw("</h1><p")
		hw.attr("class", HeroTaglineClass())
		hw.raw(">")
		hw.text(cfg.Tagline)
		hw.raw(`</p><div class="buttons">`)
		hw.component(ctx, Link(cfg, GetStartedPath, "button button--secondary button--lg", Text(GetStartedLabel)))
		hw.raw("</div></div></header>")
		return hw.err
	})
}

// Home is the landing page.
func Home(cfg SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			hw := &writer{w: w}
			hw.component(ctx, HomepageHeader(cfg))
			hw.raw(`<main><div class="container"><h1>Hello, World</h1></div></main>`)
			return hw.err
		})
		layout := Layout(cfg, LayoutOptions{
			Title:       cfg.Title,
			Description: cfg.Tagline,
			Path:        "/",
		})
		return layout.Render(templ.WithChildren(ctx, body), w)
	})
}
