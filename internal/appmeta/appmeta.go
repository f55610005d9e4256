// Package appmeta extracts the metadata triple from a saved app product
// page. It only parses; fetching pages is somebody else's job.
package appmeta

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/phraselift/combogen/pkg/combogen/internalerr"
)

// Metadata is the extracted input triple
type Metadata struct {
	Title    string
	Subtitle string
	Keywords string
}

// Extract parses an HTML document and pulls out the app title, subtitle,
// and keywords. The first <h1> is the title (falling back to og:title,
// then <title>), the first <h2> is the subtitle (falling back to the
// description meta tag), and the keywords meta tag supplies the keywords
// field. Returns ErrNotFound when no title can be located.
func Extract(r io.Reader) (Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Metadata{}, fmt.Errorf("parse page: %w", err)
	}

	var meta Metadata
	var pageTitle, ogTitle, description string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1":
				if meta.Title == "" {
					meta.Title = textContent(n)
				}
			case "h2":
				if meta.Subtitle == "" {
					meta.Subtitle = textContent(n)
				}
			case "title":
				if pageTitle == "" {
					pageTitle = textContent(n)
				}
			case "meta":
				name, property, content := metaAttrs(n)
				switch {
				case property == "og:title" && ogTitle == "":
					ogTitle = content
				case name == "description" && description == "":
					description = content
				case name == "keywords" && meta.Keywords == "":
					meta.Keywords = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if meta.Title == "" {
		meta.Title = ogTitle
	}
	if meta.Title == "" {
		meta.Title = pageTitle
	}
	if meta.Subtitle == "" {
		meta.Subtitle = description
	}

	if meta.Title == "" {
		return Metadata{}, fmt.Errorf("extract app title: %w", internalerr.ErrNotFound)
	}
	return meta, nil
}

func metaAttrs(n *html.Node) (name, property, content string) {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "name":
			name = attr.Val
		case "property":
			property = attr.Val
		case "content":
			content = attr.Val
		}
	}
	return name, property, content
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
