package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StylesheetPath is where the engine serves its bundled stylesheet.
const StylesheetPath = "/assets/docsite.css"

// Layout is the page shell: head metadata, navbar and footer around the
// children passed with templ.WithChildren.
func Layout(cfg SiteConfig, opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		description := opts.Description
		if description == "" {
			description = cfg.Tagline
		}
		title := FormatTitle(cfg, opts.Title)
		canonical := Canonical(cfg, opts.Path)

		hw := &writer{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw("<title>")
		hw.text(title)
		hw.raw("</title>")
		hw.raw(`<meta property="og:title"`)
		hw.attr("content", title)
		hw.raw(`><meta property="og:type" content="website">`)
		if description != "" {
			hw.raw(`<meta name="description"`)
			hw.attr("content", description)
			hw.raw(`><meta property="og:description"`)
			hw.attr("content", description)
			hw.raw(">")
		}
		if canonical != "" {
			hw.raw(`<link rel="canonical"`)
			hw.attr("href", canonical)
			hw.raw(`><meta property="og:url"`)
			hw.attr("content", canonical)
			hw.raw(">")
		}
		hw.raw(`<link rel="stylesheet"`)
		hw.attr("href", Href(cfg, StylesheetPath))
		hw.raw(">")
		hw.raw(`<script type="application/ld+json">`, WebsiteJsonLD(cfg), "</script>")
		hw.raw("</head><body>")
		navbar(ctx, hw, cfg)
		hw.component(ctx, children)
		footer(ctx, hw, cfg)
		hw.raw("</body></html>")
		return hw.err
	})
}

func navbar(ctx context.Context, hw *writer, cfg SiteConfig) {
	hw.raw(`<nav class="navbar"><div class="navbar__inner"><div class="navbar__items">`)
	hw.component(ctx, Link(cfg, "/", "navbar__brand", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		bw := &writer{w: w}
		bw.raw(`<b class="navbar__title">`)
		bw.text(cfg.Title)
		bw.raw("</b>")
		return bw.err
	})))
	for _, item := range cfg.Navbar {
		hw.component(ctx, Link(cfg, item.To, "navbar__item navbar__link", Text(item.Label)))
	}
	hw.raw("</div></div></nav>")
}

func footer(ctx context.Context, hw *writer, cfg SiteConfig) {
	if len(cfg.FooterLinks) == 0 && cfg.Copyright == "" {
		return
	}
	hw.raw(`<footer class="footer"><div class="container">`)
	if len(cfg.FooterLinks) > 0 {
		hw.raw(`<ul class="footer__links">`)
		for _, item := range cfg.FooterLinks {
			hw.raw(`<li class="footer__item">`)
			hw.component(ctx, Link(cfg, item.To, "footer__link-item", Text(item.Label)))
			hw.raw("</li>")
		}
		hw.raw("</ul>")
	}
	if cfg.Copyright != "" {
		hw.raw(`<div class="footer__copyright">`)
		hw.text(cfg.Copyright)
		hw.raw("</div>")
	}
	hw.raw("</div></footer>")
}
