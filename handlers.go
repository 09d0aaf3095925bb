package docsite

import (
	"errors"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/eringen/docsite/log"
	"github.com/eringen/docsite/views"
)

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	}))

	prefix := a.basePrefix()
	if prefix != "" {
		e.GET(prefix, func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, a.Config.BaseURL)
		})
	}

	g := e.Group(prefix)
	g.GET(views.StylesheetPath, a.handleStylesheet)
	g.GET("/robots.txt", a.handleRobots)
	g.GET("/sitemap.xml", a.handleSitemap)
	g.GET("/", a.handleHome)
	g.GET("/"+DocsRoute, a.handleDocsIndex)
	g.GET("/"+DocsRoute+"/*", a.handleDoc)
	g.GET("/*", a.handleStatic)
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.view()))
}

// handleDocsIndex serves docs/index.md when present, otherwise redirects to
// the first doc in the sidebar.
func (a *App) handleDocsIndex(c echo.Context) error {
	if _, err := a.Cache.GetDoc(""); err == nil {
		return a.renderDoc(c, "")
	} else if !errors.Is(err, ErrDocNotFound) {
		return err
	}
	docs, err := a.Cache.ListDocs()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusFound, views.Href(a.view(), docs[0].Path))
}

func (a *App) handleDoc(c echo.Context) error {
	return a.renderDoc(c, strings.Trim(c.Param("*"), "/"))
}

func (a *App) renderDoc(c echo.Context, slug string) error {
	doc, err := a.Cache.GetDoc(slug)
	if errors.Is(err, ErrDocNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	docs, err := a.Cache.ListDocs()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Doc(a.view(), doc, docs))
}

func (a *App) handleSitemap(c echo.Context) error {
	docs, err := a.Cache.ListDocs()
	if err != nil {
		return err
	}
	b, err := a.sitemap(docs)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", b)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, a.robots())
}

func (a *App) handleStylesheet(c echo.Context) error {
	b, err := stylesheet()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", b)
}

// handleStatic serves files from the static dir at the site root.
func (a *App) handleStatic(c echo.Context) error {
	name := path.Clean("/" + c.Param("*"))
	f, err := a.staticFs().Open(name)
	if err != nil {
		return echo.ErrNotFound
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return echo.ErrNotFound
	}
	http.ServeContent(c.Response(), c.Request(), fi.Name(), fi.ModTime(), f)
	return nil
}

func (a *App) staticFs() afero.Fs {
	return afero.NewBasePathFs(a.fs, a.Config.StaticDir)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if (ok && he.Code == http.StatusNotFound) || errors.Is(err, os.ErrNotExist) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.view()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		log.S().Errorw("server error", "path", c.Request().URL.Path, "error", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.view()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
