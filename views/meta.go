package views

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultURL is the canonical site URL used when none is configured.
const DefaultURL = "https://fashflow.app"

// OGImage is one Open Graph preview image.
type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph carries the og:* fields used for link previews.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []OGImage
	Type        string
}

// Metadata describes the document head: title, description, favicon and
// Open Graph fields.
type Metadata struct {
	Title       string
	Description string
	Icon        string
	OpenGraph   OpenGraph
}

// DefaultMetadata returns the landing page metadata for the given canonical
// URL. An empty url falls back to DefaultURL.
func DefaultMetadata(url string) Metadata {
	if url == "" {
		url = DefaultURL
	}
	title := SiteName + " — " + Tagline
	return Metadata{
		Title:       title,
		Description: Pitch,
		Icon:        "/favicon.ico",
		OpenGraph: OpenGraph{
			Title:       title,
			Description: "Save 5+ hours/week with safe, human‑like automation for Depop. Automatic relisting and auto‑like to stay at the top of search.",
			URL:         url,
			SiteName:    SiteName,
			Images: []OGImage{
				{URL: "/og.png", Width: 1200, Height: 630, Alt: SiteName},
			},
			Type: "website",
		},
	}
}

// absolute prefixes root-relative paths with the canonical URL so crawlers
// that ignore <base> still resolve preview images.
func (m Metadata) absolute(path string) string {
	if len(path) > 0 && path[0] == '/' {
		return m.OpenGraph.URL + path
	}
	return path
}

// Head renders the <head> children for meta.
func Head(meta Metadata) g.Node {
	og := meta.OpenGraph
	nodes := g.Group{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		g.El("title", g.Text(meta.Title)),
		h.Meta(h.Name("description"), h.Content(meta.Description)),
		h.Link(h.Rel("icon"), h.Href(meta.Icon)),
		h.Link(h.Rel("canonical"), h.Href(og.URL)),
		property("og:title", og.Title),
		property("og:description", og.Description),
		property("og:url", og.URL),
		property("og:site_name", og.SiteName),
		property("og:type", og.Type),
	}
	for _, img := range og.Images {
		nodes = append(nodes,
			property("og:image", meta.absolute(img.URL)),
			property("og:image:width", strconv.Itoa(img.Width)),
			property("og:image:height", strconv.Itoa(img.Height)),
			property("og:image:alt", img.Alt),
		)
	}
	nodes = append(nodes,
		h.Meta(h.Name("twitter:card"), h.Content("summary_large_image")),
		h.Meta(h.Name("twitter:title"), h.Content(og.Title)),
		h.Meta(h.Name("twitter:description"), h.Content(og.Description)),
	)
	if len(og.Images) > 0 {
		nodes = append(nodes, h.Meta(h.Name("twitter:image"), h.Content(meta.absolute(og.Images[0].URL))))
	}
	nodes = append(nodes, h.Script(h.Type("application/ld+json"), g.Raw(WebsiteJsonLD(meta))))
	return nodes
}

func property(name, content string) g.Node {
	return h.Meta(g.Attr("property", name), h.Content(content))
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for meta.
func WebsiteJsonLD(meta Metadata) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        meta.OpenGraph.SiteName,
		"url":         meta.OpenGraph.URL,
		"description": meta.Description,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
