package docsite

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/eringen/docsite/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (a *App) sitemap(docs []views.Doc) ([]byte, error) {
	cfg := a.view()
	urls := []sitemapURL{
		{Loc: views.Canonical(cfg, "/")},
	}
	for _, d := range docs {
		urls = append(urls, sitemapURL{Loc: views.Canonical(cfg, d.Path)})
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("docsite: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (a *App) robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", views.Canonical(a.view(), "/sitemap.xml"))
}
