package model

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestNCXPlayOrder(t *testing.T) {
	ncx := NewNCX("urn:uuid:1", "Charaka Samhita")
	ncx.AddChapter("Chapter 1: Sutra", "OEBPS/Text/chapter-000.xhtml")
	ncx.AddChapter("Chapter 2: Nidana", "OEBPS/Text/chapter-001.xhtml")

	out, err := xml.Marshal(ncx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		`<navPoint id="navPoint-2" playOrder="2">`,
		`<navLabel><text>Chapter 2: Nidana</text></navLabel>`,
		`<meta name="dtb:uid" content="urn:uuid:1"></meta>`,
		`<docTitle><text>Charaka Samhita</text></docTitle>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in\n%s", want, s)
		}
	}
}
