package docsite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"

	"github.com/eringen/docsite/log"
	"github.com/eringen/docsite/views"
)

// ErrBrokenLinks is returned by Build when internal links point at pages
// that were not generated and OnBrokenLinks is "throw".
var ErrBrokenLinks = errors.New("docsite: broken links")

// BrokenLink is an internal link whose target does not exist in the build.
type BrokenLink struct {
	Page string // output file containing the link
	Href string
}

// BuildReport summarizes a static build.
type BuildReport struct {
	Pages       int
	BrokenLinks []BrokenLink
}

type page struct {
	path string
	cmp  templ.Component
}

// Build renders the whole site into out.
func (a *App) Build(ctx context.Context, out afero.Fs) (BuildReport, error) {
	var report BuildReport
	if err := a.Config.Validate(); err != nil {
		return report, err
	}

	a.Cache.Invalidate()
	docs, err := a.Cache.ListDocs()
	if err != nil {
		return report, err
	}

	cfg := a.view()
	pages := []page{
		{path: "index.html", cmp: a.Views.Home(cfg)},
		{path: "404.html", cmp: a.Views.NotFound(cfg)},
	}
	for _, d := range docs {
		pages = append(pages, page{
			path: path.Join(DocsRoute, d.Slug, "index.html"),
			cmp:  a.Views.Doc(cfg, d, docs),
		})
	}

	// Static files go first so generated pages win on a shared path.
	static, err := a.copyStatic(out)
	if err != nil {
		return report, err
	}
	shadowed := func(name string) {
		if static[name] {
			log.S().Warnw("generated file replaces static file", "path", name)
		}
	}

	m := a.minifier()
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		b, err := renderBytes(ctx, p.cmp)
		if err != nil {
			return report, fmt.Errorf("docsite: render %s: %w", p.path, err)
		}
		shadowed(p.path)
		if err := writeFile(out, p.path, b, m, "text/html"); err != nil {
			return report, err
		}
		log.S().Debugw("page written", "path", p.path)
	}
	report.Pages = len(pages)

	sitemap, err := a.sitemap(docs)
	if err != nil {
		return report, err
	}
	shadowed("sitemap.xml")
	if err := writeFile(out, "sitemap.xml", sitemap, nil, ""); err != nil {
		return report, err
	}
	shadowed("robots.txt")
	if err := writeFile(out, "robots.txt", []byte(a.robots()), nil, ""); err != nil {
		return report, err
	}
	style, err := stylesheet()
	if err != nil {
		return report, err
	}
	stylePath := strings.TrimPrefix(views.StylesheetPath, "/")
	shadowed(stylePath)
	if err := writeFile(out, stylePath, style, m, "text/css"); err != nil {
		return report, err
	}

	if a.Config.OnBrokenLinks == BrokenLinksIgnore {
		return report, nil
	}
	htmlPaths := make([]string, len(pages))
	for i, p := range pages {
		htmlPaths[i] = p.path
	}
	report.BrokenLinks, err = checkLinks(out, htmlPaths, a.Config.BaseURL)
	if err != nil {
		return report, err
	}
	if len(report.BrokenLinks) == 0 {
		return report, nil
	}
	for _, bl := range report.BrokenLinks {
		log.S().Warnw("broken link", "page", bl.Page, "href", bl.Href)
	}
	if a.Config.OnBrokenLinks == BrokenLinksThrow {
		return report, fmt.Errorf("%w: %d found", ErrBrokenLinks, len(report.BrokenLinks))
	}
	return report, nil
}

// minifier returns nil when minification is disabled.
func (a *App) minifier() *minify.M {
	if !a.Config.Minify {
		return nil
	}
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
	})
	return m
}

func writeFile(out afero.Fs, name string, b []byte, m *minify.M, mediatype string) error {
	if m != nil && mediatype != "" {
		minified, err := m.Bytes(mediatype, b)
		if err != nil {
			return fmt.Errorf("docsite: minify %s: %w", name, err)
		}
		b = minified
	}
	if err := out.MkdirAll(path.Dir(name), 0o755); err != nil {
		return fmt.Errorf("docsite: mkdir for %s: %w", name, err)
	}
	if err := afero.WriteFile(out, name, b, 0o644); err != nil {
		return fmt.Errorf("docsite: write %s: %w", name, err)
	}
	return nil
}

// copyStatic copies the static dir to the output root and returns the
// slash-separated paths it wrote.
func (a *App) copyStatic(out afero.Fs) (map[string]bool, error) {
	written := map[string]bool{}
	dir := a.Config.StaticDir
	exists, err := afero.DirExists(a.fs, dir)
	if err != nil || !exists {
		return written, err
	}
	err = afero.Walk(a.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		b, err := afero.ReadFile(a.fs, p)
		if err != nil {
			return fmt.Errorf("docsite: read static %s: %w", rel, err)
		}
		name := filepath.ToSlash(rel)
		written[name] = true
		return writeFile(out, name, b, nil, "")
	})
	return written, err
}

// checkLinks parses every written page and reports internal anchors whose
// target is missing from out.
func checkLinks(out afero.Fs, pages []string, baseURL string) ([]BrokenLink, error) {
	var broken []BrokenLink
	for _, p := range pages {
		b, err := afero.ReadFile(out, p)
		if err != nil {
			return nil, fmt.Errorf("docsite: read %s: %w", p, err)
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("docsite: parse %s: %w", p, err)
		}
		seen := map[string]bool{}
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			if seen[href] {
				return
			}
			seen[href] = true
			if !linkResolves(out, p, href, baseURL) {
				broken = append(broken, BrokenLink{Page: p, Href: href})
			}
		})
	}
	return broken, nil
}

func linkResolves(out afero.Fs, page, href, baseURL string) bool {
	if href == "" || strings.HasPrefix(href, "#") || views.IsExternal(href) {
		return true
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme != "" || u.Opaque != "" {
		return true
	}

	target := u.Path
	if target == "" {
		return true
	}
	if strings.HasPrefix(target, "/") {
		if target+"/" == baseURL {
			target = baseURL
		}
		if !strings.HasPrefix(target, baseURL) {
			return false
		}
		target = strings.TrimPrefix(target, baseURL)
	} else {
		// Pages are addressed without their index.html suffix.
		pageURL := strings.TrimSuffix(strings.TrimSuffix(page, "index.html"), "/")
		target = path.Join(path.Dir(pageURL), target)
	}
	target = strings.Trim(path.Clean("/"+target), "/")

	candidates := []string{
		path.Join(target, "index.html"),
		target + ".html",
		target,
	}
	for _, c := range candidates {
		if c == "" || c == "." {
			continue
		}
		if ok, _ := afero.Exists(out, c); ok {
			if isDir, _ := afero.IsDir(out, c); !isDir {
				return true
			}
		}
	}
	return false
}
