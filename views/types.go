package views

// SiteConfig is the read-only site metadata every page component receives.
// It is built once from the engine configuration; components never mutate it.
type SiteConfig struct {
	Title   string // site title, hero heading and navbar brand
	Tagline string // hero subtitle and default meta description
	URL     string // production origin, e.g. "https://docs.example.com"
	BaseURL string // path prefix the site lives under (default "/")

	Navbar      []NavItem
	FooterLinks []NavItem
	Copyright   string
}

// NavItem is a labelled link in the navbar or footer.
type NavItem struct {
	Label string
	To    string
}

// LayoutOptions carries per-page head metadata into Layout.
type LayoutOptions struct {
	Title       string
	Description string
	Path        string // site-relative path used for the canonical URL, e.g. "/docs/intro"
}

// Doc is a rendered documentation page.
type Doc struct {
	Slug         string  // "intro", "guides/install"; empty for the docs index
	Path         string  // site-relative URL path, e.g. "/docs/intro"
	Source       string  // file path relative to the docs directory
	Title        string
	SidebarLabel string
	Description  string
	Position     float64 // sidebar_position, meaningful when HasPosition is set
	HasPosition  bool
	HTML         string  // sanitized body HTML

	// TitleInBody is set when the title was taken from the body's first
	// heading, so the page must not repeat it.
	TitleInBody bool
}

// Label returns the text shown for d in the sidebar.
func (d Doc) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	return d.Title
}
