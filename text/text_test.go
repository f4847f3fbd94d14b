package text

import (
	"strings"
	"testing"
)

func TestHTMLStats(t *testing.T) {
	html := `<h2>Sutrasthana</h2><p>The science of <b>life</b> is eternal.</p><img src="x.png"><script>var a = 1</script>`
	stats := HTMLStats(html)
	if stats.Words != 7 {
		t.Fatalf("words = %d, want 7 (%q)", stats.Words, PlainText(html))
	}
	if stats.Minutes != 1 {
		t.Fatalf("minutes = %d, want 1", stats.Minutes)
	}
}

func TestReadingMinutesRoundsUp(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 200: 1, 201: 2, 1000: 5}
	for words, want := range cases {
		if got := ReadingMinutes(words); got != want {
			t.Errorf("ReadingMinutes(%d) = %d, want %d", words, got, want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	short := "A short message"
	if got := Excerpt(short); got != short {
		t.Fatalf("Excerpt(short) = %q", got)
	}
	long := strings.Repeat("ॐ", 120)
	got := Excerpt(long)
	if got != strings.Repeat("ॐ", 100)+"..." {
		t.Fatalf("Excerpt(long) = %q", got)
	}
}
