package docsite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/eringen/docsite/views"
)

// Broken link policies for static builds.
const (
	BrokenLinksThrow  = "throw"
	BrokenLinksWarn   = "warn"
	BrokenLinksIgnore = "ignore"
)

// NavItem is a labelled link in the navbar or footer.
type NavItem struct {
	Label string `mapstructure:"label"`
	To    string `mapstructure:"to"`
}

// SiteConfig holds all configuration for a docsite site.
type SiteConfig struct {
	Title   string `mapstructure:"title"`    // Required: site title
	Tagline string `mapstructure:"tagline"`  // Hero subtitle and meta description
	URL     string `mapstructure:"url"`      // Canonical origin (default "http://localhost:3000")
	BaseURL string `mapstructure:"base_url"` // Path prefix (default "/")

	Navbar      []NavItem `mapstructure:"navbar"`
	FooterLinks []NavItem `mapstructure:"footer_links"`
	Copyright   string    `mapstructure:"copyright"`

	DocsDir   string `mapstructure:"docs_dir"`   // Markdown sources (default "docs")
	StaticDir string `mapstructure:"static_dir"` // Copied verbatim to the site root (default "static")
	OutDir    string `mapstructure:"out_dir"`    // Static build output (default "build")
	Addr      string `mapstructure:"addr"`       // Listen address (default ":3000")

	OnBrokenLinks string        `mapstructure:"on_broken_links"` // throw, warn or ignore (default "throw")
	Minify        bool          `mapstructure:"minify"`          // Minify built HTML and CSS
	DocCacheTTL   time.Duration `mapstructure:"doc_cache_ttl"`   // Doc cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
	if c.DocsDir == "" {
		c.DocsDir = "docs"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutDir == "" {
		c.OutDir = "build"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.OnBrokenLinks == "" {
		c.OnBrokenLinks = BrokenLinksThrow
	}
	if c.DocCacheTTL == 0 {
		c.DocCacheTTL = 5 * time.Minute
	}
}

// Validate reports the first invalid setting.
func (c SiteConfig) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("docsite: title is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("docsite: invalid url %q: %w", c.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("docsite: url %q must be absolute", c.URL)
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("docsite: base_url %q must start and end with /", c.BaseURL)
	}
	switch c.OnBrokenLinks {
	case BrokenLinksThrow, BrokenLinksWarn, BrokenLinksIgnore:
	default:
		return fmt.Errorf("docsite: on_broken_links must be throw, warn or ignore, got %q", c.OnBrokenLinks)
	}
	return nil
}

// View returns the subset of the configuration page components read.
func (c SiteConfig) View() views.SiteConfig {
	return views.SiteConfig{
		Title:       c.Title,
		Tagline:     c.Tagline,
		URL:         c.URL,
		BaseURL:     c.BaseURL,
		Navbar:      navItems(c.Navbar),
		FooterLinks: navItems(c.FooterLinks),
		Copyright:   c.Copyright,
	}
}

func navItems(items []NavItem) []views.NavItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]views.NavItem, len(items))
	for i, it := range items {
		out[i] = views.NavItem{Label: it.Label, To: it.To}
	}
	return out
}

// ConfigName is the base name of the configuration file, without extension.
const ConfigName = "docsite"

// LoadConfig reads docsite.yaml from dir and applies DOCSITE_* environment
// overrides. A missing file is fine as long as the environment supplies a
// valid configuration.
func LoadConfig(dir string) (SiteConfig, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("DOCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"title", "tagline", "url", "base_url", "copyright", "docs_dir", "static_dir", "out_dir", "addr", "on_broken_links"} {
		v.SetDefault(key, "")
	}
	v.SetDefault("minify", true)
	v.SetDefault("doc_cache_ttl", 5*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("docsite: read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("docsite: decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, cfg.Validate()
}

// Option configures additional App behavior.
type Option func(*App)

// WithViews replaces the page components.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithFs sets the filesystem docs and static files are read from
// (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "static").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
