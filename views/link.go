package views

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Link renders an anchor to to. Site paths ("/docs/intro") are resolved
// against cfg.BaseURL; absolute URLs open in a new tab.
func Link(cfg SiteConfig, to, class string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &writer{w: w}
		hw.raw("<a")
		if class != "" {
			hw.attr("class", class)
		}
		hw.attr("href", Href(cfg, to))
		if IsExternal(to) {
			hw.attr("target", "_blank")
			hw.attr("rel", "noopener noreferrer")
		}
		hw.raw(">")
		hw.component(ctx, children)
		hw.raw("</a>")
		return hw.err
	})
}

// Href resolves a link destination the way Link does.
func Href(cfg SiteConfig, to string) string {
	if IsExternal(to) || !strings.HasPrefix(to, "/") {
		return to
	}
	return strings.TrimSuffix(baseURL(cfg), "/") + to
}

// IsExternal reports whether to carries a scheme or is protocol-relative.
func IsExternal(to string) bool {
	if strings.HasPrefix(to, "//") {
		return true
	}
	u, err := url.Parse(to)
	return err == nil && u.Scheme != ""
}

func baseURL(cfg SiteConfig) string {
	if cfg.BaseURL == "" {
		return "/"
	}
	return cfg.BaseURL
}
