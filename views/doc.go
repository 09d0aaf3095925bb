package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

// DocPage renders a documentation page with the sidebar of all docs and
// previous/next navigation.
func DocPage(cfg SiteConfig, doc Doc, sidebar []Doc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			hw := &writer{w: w}
			hw.raw(`<div class="container docs"><div class="row"><aside class="docs__sidebar"><ul class="menu__list">`)
			for _, d := range sidebar {
				hw.raw(`<li class="menu__list-item">`)
				hw.component(ctx, Link(cfg, d.Path, menuLinkClass(d.Slug == doc.Slug), Text(d.Label())))
				hw.raw("</li>")
			}
			hw.raw(`</ul></aside><main class="docs__main"><article class="markdown">`)
			if !doc.TitleInBody {
				hw.raw("<header><h1>")
				hw.text(doc.Title)
				hw.raw("</h1></header>")
			}
			hw.component(ctx, templ.Raw(doc.HTML))
			hw.raw("</article>")
			pagination(ctx, hw, cfg, doc, sidebar)
			hw.raw("</main></div></div>")
			return hw.err
		})
		layout := Layout(cfg, LayoutOptions{
			Title:       doc.Title,
			Description: doc.Description,
			Path:        doc.Path,
		})
		return layout.Render(templ.WithChildren(ctx, body), w)
	})
}

func pagination(ctx context.Context, hw *writer, cfg SiteConfig, doc Doc, sidebar []Doc) {
	_, idx, ok := lo.FindIndexOf(sidebar, func(d Doc) bool { return d.Slug == doc.Slug })
	if !ok || len(sidebar) < 2 {
		return
	}
	hw.raw(`<nav class="pagination-nav" aria-label="Docs pages">`)
	if idx > 0 {
		prev := sidebar[idx-1]
		hw.component(ctx, Link(cfg, prev.Path, "pagination-nav__link pagination-nav__link--prev", Text("« "+prev.Label())))
	}
	if idx < len(sidebar)-1 {
		next := sidebar[idx+1]
		hw.component(ctx, Link(cfg, next.Path, "pagination-nav__link pagination-nav__link--next", Text(next.Label()+" »")))
	}
	hw.raw("</nav>")
}
