package feeds

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

/*
Sitemap renders a sitemap.xml document for the portfolio: the home
page plus one /work/{slug} detail page per catalog slug, in catalog
order.
*/
func Sitemap(baseURL string, slugs []string) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	set := urlSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]urlEntry, 0, len(slugs)+1),
	}

	set.URLs = append(set.URLs, urlEntry{Loc: base + "/"})

	for _, slug := range slugs {
		set.URLs = append(set.URLs, urlEntry{
			Loc: fmt.Sprintf("%s/work/%s", base, slug),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("error rendering sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
