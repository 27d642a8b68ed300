package landing

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemapXML lists the landing page, the only indexable URL.
func (a *App) sitemapXML() ([]byte, error) {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: BuildURL(a.Config.URL), ChangeFreq: "monthly", Priority: "1.0"},
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) robotsTxt() []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /debug/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL))
}
