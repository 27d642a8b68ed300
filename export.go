package landing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ExportResult lists the files written by Export, relative to its dir.
type ExportResult struct {
	Files []string
}

// Export writes a static build of the site into dir: the landing page, the
// 404 page, robots.txt, sitemap.xml, the Open Graph image, the favicon and
// every static asset under public/. Existing files are overwritten.
func (a *App) Export(ctx context.Context, dir string) (ExportResult, error) {
	var res ExportResult
	if err := a.Config.Validate(); err != nil {
		return res, err
	}
	if err := a.Assets.Build(); err != nil {
		return res, err
	}
	page := a.Page()

	write := func(name string, data []byte) error {
		out := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("landing: export %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
		return nil
	}

	index, err := RenderBytes(ctx, a.Views.Home(page))
	if err != nil {
		return res, fmt.Errorf("landing: render home: %w", err)
	}
	notFound, err := RenderBytes(ctx, a.Views.NotFound(page))
	if err != nil {
		return res, fmt.Errorf("landing: render 404: %w", err)
	}
	sitemap, err := a.sitemapXML()
	if err != nil {
		return res, err
	}
	og, err := renderOGImage(a.Config.StaticDir, a.Config.Name, a.Meta.OpenGraph.Description)
	if err != nil {
		return res, err
	}

	generated := []struct {
		name string
		data []byte
	}{
		{"index.html", index},
		{"404.html", notFound},
		{"robots.txt", a.robotsTxt()},
		{"sitemap.xml", sitemap},
		{"og.png", og},
	}
	for _, f := range generated {
		if err := write(f.name, f.data); err != nil {
			return res, err
		}
	}

	if _, ok := a.Assets.Hash("favicon.ico"); !ok {
		icon, err := renderFavicon(a.Config.Name)
		if err != nil {
			return res, err
		}
		if err := write("favicon.ico", icon); err != nil {
			return res, err
		}
	}

	for _, name := range a.Assets.Names() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		data, err := a.Assets.ReadFile(name)
		if err != nil {
			return res, fmt.Errorf("landing: read asset %s: %w", name, err)
		}
		target := "public/" + name
		if name == "favicon.ico" {
			target = name
		}
		if err := write(target, data); err != nil {
			return res, err
		}
	}
	return res, nil
}
