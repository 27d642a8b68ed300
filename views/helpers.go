package views

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// classes joins non-empty class fragments with single spaces.
func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// frame renders an illustration inside a bordered 4:3 frame. bg is the frame
// background class shown while the image loads or when it is missing.
func frame(p Page, img illustration, bg string, priority bool) g.Node {
	return h.Div(h.Class(classes("relative aspect-[4/3] w-full overflow-hidden rounded-xl border border-gray-200", bg)),
		h.Img(
			h.Src(p.asset(img.File)),
			h.Alt(img.Alt),
			h.Class("absolute inset-0 h-full w-full object-cover"),
			g.Attr("sizes", img.Sizes),
			g.If(priority, g.Attr("fetchpriority", "high")),
			g.If(!priority, g.Attr("loading", "lazy")),
			g.Attr("decoding", "async"),
		),
	)
}

// startTrial is the call-to-action link to the pricing section.
func startTrial(class string) g.Node {
	return h.A(h.Href("#"+PricingAnchor), h.Class(class), g.Text(labelStartTrial))
}

// sectionHeading is the h2 shared by every section after the hero.
func sectionHeading(text string) g.Node {
	return h.H2(h.Class("text-3xl font-semibold"), g.Text(text))
}

// container is the centred, padded column inside each section.
func container(extra string, children ...g.Node) g.Node {
	return h.Div(h.Class(classes("mx-auto max-w-6xl px-6 py-20", extra)), g.Group(children))
}
