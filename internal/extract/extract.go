package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// maxSnippet bounds the text collected from a page body.
const maxSnippet = 120

// Page is what we can say about an HTML body that came back where JSON
// was expected.
type Page struct {
	Title   string
	Snippet string
}

func (p Page) Empty() bool { return p.Title == "" && p.Snippet == "" }

// LooksLikeHTML reports whether body plausibly holds markup. Only the
// leading bytes are inspected.
func LooksLikeHTML(body []byte) bool {
	head := bytes.TrimSpace(body)
	if len(head) > 512 {
		head = head[:512]
	}
	lower := bytes.ToLower(head)
	return bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body")) ||
		bytes.Contains(lower, []byte("<pre"))
}

// Describe parses r as HTML and returns its <title> and the first run of
// visible text, whitespace collapsed. Script and style contents are skipped.
func Describe(r io.Reader) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, fmt.Errorf("parse html: %w", err)
	}

	var page Page
	var text strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if page.Title == "" && n.FirstChild != nil {
					page.Title = collapse(n.FirstChild.Data)
				}
				return
			}
		}

		if n.Type == html.TextNode && text.Len() < maxSnippet {
			if t := collapse(n.Data); t != "" {
				if text.Len() > 0 {
					text.WriteByte(' ')
				}
				text.WriteString(t)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	page.Snippet = text.String()
	if len(page.Snippet) > maxSnippet {
		page.Snippet = page.Snippet[:maxSnippet]
	}
	return page, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
