package views

import "strings"

// AssetFunc resolves a static asset name (for example "hero-relist.png") to
// the URL the browser should fetch. The App passes its manifest lookup so
// templates emit cache-busted URLs.
type AssetFunc func(name string) string

// PlainAssets maps names directly under /public/ without a version query.
func PlainAssets(name string) string {
	return "/public/" + name
}

// Page carries everything a full-document template needs. Has reports
// whether a static asset exists; a nil Has means none do.
type Page struct {
	Meta  Metadata
	Asset AssetFunc
	Has   func(name string) bool
}

func (p Page) has(name string) bool {
	return p.Has != nil && p.Has(name)
}

func (p Page) asset(name string) string {
	if p.Asset == nil {
		return PlainAssets(name)
	}
	return p.Asset(name)
}

// Font is a self-hosted font loaded by the root shell.
type Font struct {
	Family   string
	Variable string // CSS custom property set on <body>
	File     string // asset name under /public/, matching the @font-face src in site.css
}

// Fonts are preloaded in the order listed.
var Fonts = []Font{
	{Family: "Geist", Variable: "--font-geist-sans", File: "fonts/geist.woff2"},
	{Family: "Geist Mono", Variable: "--font-geist-mono", File: "fonts/geist-mono.woff2"},
}

// FontClass returns the body class list that exposes every font variable.
func FontClass() string {
	classes := make([]string, 0, len(Fonts)+1)
	for _, f := range Fonts {
		classes = append(classes, strings.TrimPrefix(f.Variable, "--"))
	}
	return strings.Join(append(classes, "antialiased"), " ")
}
