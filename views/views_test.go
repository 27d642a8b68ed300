package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func renderDoc(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func testPage() Page {
	return Page{Meta: DefaultMetadata(""), Asset: PlainAssets}
}

func TestHomeRendersHeadingsInOrder(t *testing.T) {
	doc := renderDoc(t, HomePage(testPage()))

	var got []string
	doc.Find("main section").Each(func(_ int, s *goquery.Selection) {
		got = append(got, strings.TrimSpace(s.Find("h1, h2").First().Text()))
	})
	assert.Equal(t, SectionHeadings, got)
	assert.Equal(t, "Human‑Like Automation for Depop Sellers", got[0])
	assert.Contains(t, got, "Simple, Affordable Pricing")
}

func TestStartTrialLinksTargetPricing(t *testing.T) {
	doc := renderDoc(t, HomePage(testPage()))

	pricing := doc.Find("section#" + PricingAnchor)
	require.Equal(t, 1, pricing.Length())
	assert.Equal(t, HeadingPricing, strings.TrimSpace(pricing.Find("h2").Text()))

	links := doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == "Start Free Trial"
	})
	require.Equal(t, 2, links.Length())
	links.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.Equal(t, "#"+PricingAnchor, href)
	})

	// The Pro plan button is not a link.
	assert.Equal(t, 1, pricing.Find("button:contains('Start Free Trial')").Length())
}

func TestHomeStaticContent(t *testing.T) {
	doc := renderDoc(t, HomePage(testPage()))

	steps := doc.Find("section").Eq(3).Find("div.text-sm:not(.grid)")
	require.Equal(t, 3, steps.Length())
	for i, want := range []string{"Step 1", "Step 2", "Step 3"} {
		assert.Equal(t, want, steps.Eq(i).Text())
	}

	assert.Equal(t, 3, doc.Find("section").Eq(4).Find("p:contains('2 sales a week')").Length())

	var srcs []string
	doc.Find("main img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		srcs = append(srcs, src)
	})
	assert.Equal(t, []string{"/public/hero-relist.png", "/public/problem.png", "/public/solution.png"}, srcs)
}

func TestPlaceholderVariants(t *testing.T) {
	cases := []struct {
		name  string
		node  g.Node
		box   string
		label string
	}{
		{"default", Placeholder("x"), "border-gray-200 bg-gray-50", "text-gray-500"},
		{"light", Placeholder("x", Light), "border-gray-200 bg-gray-50", "text-gray-500"},
		{"dark", Placeholder("x", Dark), "border-white/20 bg-white/5", "text-white/70"},
		{"unknown", Placeholder("x", Variant("sepia")), "border-gray-200 bg-gray-50", "text-gray-500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := renderDoc(t, tc.node)
			box := doc.Find("div.max-w-4xl > div")
			require.Equal(t, 1, box.Length())
			class, _ := box.Attr("class")
			assert.Contains(t, class, tc.box)

			label := box.Children().First()
			labelClass, _ := label.Attr("class")
			assert.Contains(t, labelClass, tc.label)
			assert.Equal(t, "x", label.Text())
		})
	}
}

func TestPlaceholderDarkOnlyInFinalCTA(t *testing.T) {
	doc := renderDoc(t, HomePage(testPage()))
	labels := doc.Find("div.place-items-center")
	require.Equal(t, 5, labels.Length())

	dark := labels.FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return strings.Contains(class, "text-white/70")
	})
	require.Equal(t, 1, dark.Length())
	assert.Equal(t, "Final CTA image placeholder", dark.Text())
}

func TestDefaultMetadata(t *testing.T) {
	meta := DefaultMetadata("")
	assert.Equal(t, "FashFlow — Human‑Like Automation for Depop Sellers", meta.OpenGraph.Title)
	assert.Equal(t, meta.Title, meta.OpenGraph.Title)
	assert.Equal(t, "Save 5+ hours/week with safe, human‑like automation for Depop. Automatic relisting and auto‑like to stay at the top of search.", meta.OpenGraph.Description)
	assert.Equal(t, "https://fashflow.app", meta.OpenGraph.URL)
	assert.Equal(t, "website", meta.OpenGraph.Type)
	require.Len(t, meta.OpenGraph.Images, 1)
	assert.Equal(t, 1200, meta.OpenGraph.Images[0].Width)
	assert.Equal(t, 630, meta.OpenGraph.Images[0].Height)

	assert.Equal(t, "http://localhost:3000", DefaultMetadata("http://localhost:3000").OpenGraph.URL)
}

func TestHeadTags(t *testing.T) {
	doc := renderDoc(t, HomePage(testPage()))
	head := doc.Find("head")

	prop := func(name string) string {
		v, _ := head.Find("meta[property='" + name + "']").Attr("content")
		return v
	}
	meta := DefaultMetadata("")
	assert.Equal(t, meta.Title, head.Find("title").Text())
	assert.Equal(t, meta.OpenGraph.Title, prop("og:title"))
	assert.Equal(t, meta.OpenGraph.Description, prop("og:description"))
	assert.Equal(t, "FashFlow", prop("og:site_name"))
	assert.Equal(t, "https://fashflow.app/og.png", prop("og:image"))
	assert.Equal(t, "1200", prop("og:image:width"))

	desc, _ := head.Find("meta[name='description']").Attr("content")
	assert.Equal(t, Pitch, desc)
	icon, _ := head.Find("link[rel='icon']").Attr("href")
	assert.Equal(t, "/favicon.ico", icon)

	assert.Zero(t, head.Find("link[rel='preload']").Length())
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	bodyClass, _ := doc.Find("body").Attr("class")
	assert.Equal(t, "font-geist-sans font-geist-mono antialiased", bodyClass)
}

func TestLayoutUsesAssetFunc(t *testing.T) {
	p := testPage()
	p.Asset = func(name string) string { return "/cdn/" + name + "?v=1" }
	doc := renderDoc(t, HomePage(p))

	css, _ := doc.Find("link[rel='stylesheet']").Attr("href")
	assert.Equal(t, "/cdn/site.css?v=1", css)
	hero, _ := doc.Find("main img").First().Attr("src")
	assert.Equal(t, "/cdn/hero-relist.png?v=1", hero)
}

func TestLayoutPreloadsOnlyKnownFonts(t *testing.T) {
	p := testPage()
	p.Asset = func(name string) string { return "/public/" + name + "?v=abc" }
	p.Has = func(name string) bool { return name == "fonts/geist.woff2" }
	doc := renderDoc(t, HomePage(p))

	preloads := doc.Find("link[rel='preload'][as='font']")
	require.Equal(t, 1, preloads.Length())
	href, _ := preloads.Attr("href")
	assert.Equal(t, "/public/fonts/geist.woff2", href)
	typ, _ := preloads.Attr("type")
	assert.Equal(t, "font/woff2", typ)
	_, cors := preloads.Attr("crossorigin")
	assert.True(t, cors)

	p.Has = func(string) bool { return true }
	doc = renderDoc(t, HomePage(p))
	assert.Equal(t, len(Fonts), doc.Find("link[rel='preload'][as='font']").Length())
}

func TestErrorPages(t *testing.T) {
	doc := renderDoc(t, NotFound(testPage()))
	assert.Equal(t, "404", doc.Find("main p").First().Text())
	assert.True(t, strings.HasPrefix(doc.Find("title").Text(), "Page not found"))

	doc = renderDoc(t, ServerError(testPage()))
	assert.Equal(t, "500", doc.Find("main p").First().Text())
}
