package docsite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docsite/views"
)

func testSiteConfig() SiteConfig {
	return SiteConfig{
		Title:   "Tidewater",
		Tagline: "Charts for every harbor",
		URL:     "https://docs.example.com",
	}
}

const configYAML = `title: Tidewater
tagline: Charts for every harbor
url: https://docs.example.com
base_url: /handbook/
navbar:
  - label: Docs
    to: /docs/intro
footer_links:
  - label: GitHub
    to: https://github.com/eringen/docsite
copyright: Copyright © Tidewater
on_broken_links: warn
minify: false
doc_cache_ttl: 30s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docsite.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, configYAML))
	require.NoError(t, err)

	assert.Equal(t, "Tidewater", cfg.Title)
	assert.Equal(t, "Charts for every harbor", cfg.Tagline)
	assert.Equal(t, "/handbook/", cfg.BaseURL)
	assert.Equal(t, []NavItem{{Label: "Docs", To: "/docs/intro"}}, cfg.Navbar)
	assert.Equal(t, []NavItem{{Label: "GitHub", To: "https://github.com/eringen/docsite"}}, cfg.FooterLinks)
	assert.Equal(t, "Copyright © Tidewater", cfg.Copyright)
	assert.Equal(t, BrokenLinksWarn, cfg.OnBrokenLinks)
	assert.False(t, cfg.Minify)
	assert.Equal(t, 30*time.Second, cfg.DocCacheTTL)

	assert.Equal(t, "docs", cfg.DocsDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "build", cfg.OutDir)
	assert.Equal(t, ":3000", cfg.Addr)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := writeConfig(t, configYAML)
	t.Setenv("DOCSITE_TAGLINE", "From the environment")
	t.Setenv("DOCSITE_ADDR", ":8080")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "From the environment", cfg.Tagline)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "Tidewater", cfg.Title)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("DOCSITE_TITLE", "Env Only")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Env Only", cfg.Title)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, "/", cfg.BaseURL)
	assert.True(t, cfg.Minify)
	assert.Equal(t, BrokenLinksThrow, cfg.OnBrokenLinks)
	assert.Equal(t, 5*time.Minute, cfg.DocCacheTTL)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "title: Tidewater\nbase_url: handbook\n"))
	assert.ErrorContains(t, err, "base_url")

	_, err = LoadConfig(writeConfig(t, "title: [broken\n"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SiteConfig)
		wantErr string
	}{
		{"valid", func(*SiteConfig) {}, ""},
		{"missing title", func(c *SiteConfig) { c.Title = "  " }, "title is required"},
		{"relative url", func(c *SiteConfig) { c.URL = "docs.example.com" }, "must be absolute"},
		{"base without leading slash", func(c *SiteConfig) { c.BaseURL = "handbook/" }, "base_url"},
		{"base without trailing slash", func(c *SiteConfig) { c.BaseURL = "/handbook" }, "base_url"},
		{"unknown broken link policy", func(c *SiteConfig) { c.OnBrokenLinks = "explode" }, "on_broken_links"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSiteConfig()
			cfg.setDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestView(t *testing.T) {
	cfg := testSiteConfig()
	cfg.Navbar = []NavItem{{Label: "Docs", To: "/docs/intro"}}
	cfg.Copyright = "©"
	cfg.setDefaults()

	assert.Equal(t, views.SiteConfig{
		Title:     "Tidewater",
		Tagline:   "Charts for every harbor",
		URL:       "https://docs.example.com",
		BaseURL:   "/",
		Navbar:    []views.NavItem{{Label: "Docs", To: "/docs/intro"}},
		Copyright: "©",
	}, cfg.View())
}
