package views

import (
	"encoding/json"
	"strings"
)

// FormatTitle builds the document <title>: "Page | Site", or just the site
// title when the page has none.
func FormatTitle(cfg SiteConfig, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return cfg.Title
	}
	return title + " | " + cfg.Title
}

// Canonical returns the absolute URL of a site-relative path, or "" when
// the site has no URL configured.
func Canonical(cfg SiteConfig, path string) string {
	if cfg.URL == "" || path == "" {
		return ""
	}
	return strings.TrimSuffix(cfg.URL, "/") + Href(cfg, path)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Title,
	}
	if u := Canonical(cfg, "/"); u != "" {
		data["url"] = u
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
