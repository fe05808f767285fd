package extractor

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rojanmagar2001/primeprobe/internal/extract"
)

const maxPlain = 80

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// Describe summarizes an HTML page by title and text; anything else is
// echoed back, trimmed and cut short.
func (a *Adapter) Describe(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return "empty body"
	}

	if extract.LooksLikeHTML(body) {
		page, err := extract.Describe(bytes.NewReader(body))
		if err == nil && !page.Empty() {
			switch {
			case page.Title == "":
				return fmt.Sprintf("html: %s", page.Snippet)
			case page.Snippet == "":
				return fmt.Sprintf("html %q", page.Title)
			default:
				return fmt.Sprintf("html %q: %s", page.Title, page.Snippet)
			}
		}
	}

	if !utf8.Valid(body) {
		return fmt.Sprintf("%d bytes of binary data", len(body))
	}

	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > maxPlain {
		s = s[:maxPlain] + "..."
	}
	return s
}
