package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Stylesheet is the asset name of the site stylesheet.
const Stylesheet = "site.css"

// Layout is the root shell: it fills <head> from p.Meta, preloads the fonts
// that exist, links the stylesheet and renders body inside <body>.
func Layout(p Page, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				Head(p.Meta),
				g.Map(Fonts, func(f Font) g.Node {
					if !p.has(f.File) {
						return nil
					}
					// Unversioned, so the preload is the same request as the
					// @font-face src.
					return h.Link(
						h.Rel("preload"),
						h.Href(PlainAssets(f.File)),
						g.Attr("as", "font"),
						h.Type("font/woff2"),
						g.Attr("crossorigin", ""),
					)
				}),
				h.Link(h.Rel("stylesheet"), h.Href(p.asset(Stylesheet))),
			),
			h.Body(h.Class(FontClass()), g.Group(body)),
		),
	)
}
