package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound is the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Page Not Found", "We could not find what you were looking for.")
}

// ServerError is the 5xx page.
func ServerError(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Something Went Wrong", "The page could not be rendered. Please try again later.")
}

func statusPage(cfg SiteConfig, heading, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			hw := &writer{w: w}
			hw.raw(`<main class="container margin-vert--xl"><h1 class="hero__title">`)
			hw.text(heading)
			hw.raw("</h1><p>")
			hw.text(message)
			hw.raw("</p><p>")
			hw.component(ctx, Link(cfg, "/", "", Text("Back to "+cfg.Title)))
			hw.raw("</p></main>")
			return hw.err
		})
		return Layout(cfg, LayoutOptions{Title: heading}).Render(templ.WithChildren(ctx, body), w)
	})
}
