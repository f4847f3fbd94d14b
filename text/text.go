package text

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	WordsPerMinute = 200
	excerptLength  = 100
)

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "td": true, "th": true,
	"section": true, "article": true, "hr": true,
}

// PlainText returns the text content of an HTML fragment with images and
// scripts dropped. Block elements are separated by a space and runs of
// whitespace are collapsed.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("img, script, style").Remove()

	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			if name == "#text" {
				b.WriteString(c.Text())
				return
			}
			if blockElements[name] {
				b.WriteByte(' ')
				walk(c)
				b.WriteByte(' ')
				return
			}
			walk(c)
		})
	}
	walk(doc.Find("body"))
	return strings.Join(strings.Fields(b.String()), " ")
}

func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadingMinutes is the whole number of minutes needed to read words at
// WordsPerMinute, rounded up.
func ReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// Stats is what the chapter preview shows under the rendered HTML.
type Stats struct {
	Words   int
	Minutes int
}

func HTMLStats(html string) Stats {
	words := WordCount(PlainText(html))
	return Stats{Words: words, Minutes: ReadingMinutes(words)}
}

// Excerpt cuts s to its first 100 characters and marks the cut with "...".
func Excerpt(s string) string {
	if utf8.RuneCountInString(s) <= excerptLength {
		return s
	}
	return string([]rune(s)[:excerptLength]) + "..."
}
