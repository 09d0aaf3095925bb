package docsite

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/eringen/docsite/markdown"
	"github.com/eringen/docsite/views"
)

var (
	// ErrDocNotFound is returned when no doc has the requested slug.
	ErrDocNotFound = errors.New("docsite: doc not found")
	// ErrDuplicateDoc is returned when two sources resolve to the same slug.
	ErrDuplicateDoc = errors.New("docsite: duplicate doc slug")
	// ErrInvalidSlug is returned when a front matter slug points outside the
	// docs route.
	ErrInvalidSlug = errors.New("docsite: slug leaves the docs root")
)

// DocsRoute is the URL segment docs are served under.
const DocsRoute = "docs"

// LoadDocs reads every markdown file below dir and returns the published
// docs in sidebar order. A missing dir yields no docs.
func LoadDocs(fsys afero.Fs, dir string) ([]views.Doc, error) {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("docsite: stat docs dir: %w", err)
	}
	if !exists {
		return nil, nil
	}

	var docs []views.Doc
	sources := map[string]string{}
	err = afero.Walk(fsys, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if p != dir && strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(info.Name()) || strings.HasPrefix(info.Name(), "_") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		doc, ok, err := loadDoc(fsys, p, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("docsite: load %s: %w", rel, err)
		}
		if !ok {
			return nil
		}
		if prev, dup := sources[doc.Slug]; dup {
			return fmt.Errorf("%w: %q from %s and %s", ErrDuplicateDoc, doc.Slug, prev, doc.Source)
		}
		sources[doc.Slug] = doc.Source
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(docs, compareDocs)
	return docs, nil
}

func loadDoc(fsys afero.Fs, p, rel string) (views.Doc, bool, error) {
	content, err := afero.ReadFile(fsys, p)
	if err != nil {
		return views.Doc{}, false, err
	}
	block, body, err := markdown.Split(content)
	if err != nil {
		return views.Doc{}, false, err
	}
	fm, err := markdown.ParseFrontMatter(block)
	if err != nil {
		return views.Doc{}, false, err
	}
	if fm.Draft {
		return views.Doc{}, false, nil
	}
	html, err := markdown.Render(body)
	if err != nil {
		return views.Doc{}, false, err
	}

	slug, err := docSlug(rel, fm)
	if err != nil {
		return views.Doc{}, false, err
	}
	doc := views.Doc{
		Slug:         slug,
		Path:         docPath(slug),
		Source:       rel,
		Title:        fm.Title,
		SidebarLabel: fm.SidebarLabel,
		Description:  fm.Description,
		Position:     lo.FromPtr(fm.SidebarPosition),
		HasPosition:  fm.SidebarPosition != nil,
		HTML:         html,
	}
	heading := markdown.FirstHeading(body)
	switch {
	case doc.Title == "" && heading != "":
		doc.Title = heading
		doc.TitleInBody = true
	case doc.Title == "":
		doc.Title = strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	default:
		doc.TitleInBody = heading != ""
	}
	return doc, true, nil
}

// docSlug derives the URL slug of a source file. index.md and README.md
// stand for their directory; front matter id replaces the file name and
// slug replaces the whole path.
func docSlug(rel string, fm markdown.FrontMatter) (string, error) {
	dir, file := path.Split(rel)
	dir = strings.Trim(dir, "/")
	name := strings.TrimSuffix(file, path.Ext(file))

	var slug string
	switch {
	case strings.HasPrefix(fm.Slug, "/"):
		slug = path.Clean(fm.Slug)
	case fm.Slug != "":
		slug = path.Join(dir, fm.Slug)
	case fm.ID != "":
		slug = path.Join(dir, fm.ID)
	case strings.EqualFold(name, "index") || strings.EqualFold(name, "readme"):
		slug = dir
	default:
		slug = path.Join(dir, name)
	}
	if slug == ".." || strings.HasPrefix(slug, "../") {
		return "", fmt.Errorf("%w: %q in %s", ErrInvalidSlug, slug, rel)
	}
	if slug == "." {
		return "", nil
	}
	return strings.Trim(slug, "/"), nil
}

func docPath(slug string) string {
	if slug == "" {
		return "/" + DocsRoute
	}
	return "/" + DocsRoute + "/" + slug
}

// compareDocs orders by sidebar position (unset last), then title.
func compareDocs(a, b views.Doc) int {
	switch {
	case a.HasPosition && !b.HasPosition:
		return -1
	case !a.HasPosition && b.HasPosition:
		return 1
	}
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
