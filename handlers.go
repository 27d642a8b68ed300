package landing

import (
	"errors"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	return a.serveCached(c, "/", echo.MIMETextHTMLCharsetUTF8, func() ([]byte, error) {
		return RenderBytes(c.Request().Context(), a.Views.Home(a.Page()))
	})
}

func (a *App) handleOGImage(c echo.Context) error {
	return a.serveCached(c, "/og.png", "image/png", func() ([]byte, error) {
		return renderOGImage(a.Config.StaticDir, a.Config.Name, a.Meta.OpenGraph.Description)
	})
}

// handleFavicon serves favicon.ico from the static dir when present and a
// generated icon otherwise.
func (a *App) handleFavicon(c echo.Context) error {
	return a.serveCached(c, "/favicon.ico", "image/x-icon", func() ([]byte, error) {
		data, err := a.Assets.ReadFile("favicon.ico")
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return renderFavicon(a.Config.Name)
	})
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.serveCached(c, "/sitemap.xml", "application/xml; charset=utf-8", a.sitemapXML)
}

func (a *App) handleRobots(c echo.Context) error {
	return a.serveCached(c, "/robots.txt", echo.MIMETextPlainCharsetUTF8, func() ([]byte, error) {
		return a.robotsTxt(), nil
	})
}

// handleAsset serves /public/* from the static dir, falling back to the
// embedded defaults.
func (a *App) handleAsset(c echo.Context) error {
	name := path.Clean("/" + c.Param("*"))[1:]
	if name == "" {
		return echo.ErrNotFound
	}
	local, err := a.Assets.localPath(name)
	if err != nil {
		return echo.ErrNotFound
	}
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return c.File(local)
	}
	return echo.StaticFileHandler(name, a.Assets.embedded)(c)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// serveCached answers from the page cache, honouring If-None-Match. The
// ETag is weak because gzip may re-encode the body on the way out.
func (a *App) serveCached(c echo.Context, key, contentType string, render func() ([]byte, error)) error {
	body, etag, err := a.Cache.Get(key, render)
	if err != nil {
		return err
	}
	etag = "W/" + etag
	c.Response().Header().Set("ETag", etag)
	if etagMatch(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, contentType, body)
}

// etagMatch applies the weak comparison of RFC 9110 to an If-None-Match
// header: a list of entity tags, or "*".
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	if strings.TrimSpace(header) == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(tag), "W/") == want {
			return true
		}
	}
	return false
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		if err := RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Page())); err != nil {
			c.Logger().Errorf("render not found page: %v", err)
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if err := RenderStatus(c, code, a.Views.ServerError(a.Page())); err != nil {
			c.Logger().Errorf("render error page: %v", err)
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
