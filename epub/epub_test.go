package epub

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"vedic-admin/model"
)

func testBook() *model.BookWithChapters {
	return &model.BookWithChapters{
		Book: model.Book{Id: 1, Title: "Charaka Samhita", Author: "Charaka", Language: "English"},
		Chapters: []*model.Chapter{
			{Id: 11, ChapterNumber: 2, ChapterTitle: "Nidana", ContentHtml: "<p>Second<br>line</p>"},
			{Id: 10, ChapterNumber: 1, ChapterTitle: "Sutra & Rules", ContentHtml: "<p>First</p><img src=\"a.png\">"},
		},
	}
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if zr.File[0].Name != "mimetype" || zr.File[0].Method != zip.Store {
		t.Fatalf("first entry must be stored mimetype, got %s (method %d)", zr.File[0].Name, zr.File[0].Method)
	}
	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, _ := io.ReadAll(rc)
		rc.Close()
		files[f.Name] = string(b)
	}
	return files
}

func wellFormed(t *testing.T, name, doc string) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(doc))
	d.Strict = true
	for {
		_, err := d.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed: %v\n%s", name, err, doc)
		}
	}
}

func TestPackBook(t *testing.T) {
	var buf bytes.Buffer
	if err := PackBook(context.Background(), &buf, testBook()); err != nil {
		t.Fatalf("PackBook: %v", err)
	}
	files := readZip(t, buf.Bytes())

	if files["mimetype"] != "application/epub+zip" {
		t.Fatalf("mimetype = %q", files["mimetype"])
	}
	for _, name := range []string{"META-INF/container.xml", "content.opf", "toc.ncx", "OEBPS/Text/nav.xhtml", "OEBPS/style.css"} {
		if _, ok := files[name]; !ok {
			t.Fatalf("missing %s", name)
		}
	}

	first := files["OEBPS/Text/chapter-000.xhtml"]
	if !strings.Contains(first, "Chapter 1: Sutra &amp; Rules") {
		t.Fatalf("chapters not ordered by number:\n%s", first)
	}
	for _, name := range []string{"OEBPS/Text/chapter-000.xhtml", "OEBPS/Text/chapter-001.xhtml", "OEBPS/Text/nav.xhtml", "content.opf", "toc.ncx"} {
		wellFormed(t, name, files[name])
	}

	opf := files["content.opf"]
	if !strings.Contains(opf, "<dc:title>Charaka Samhita</dc:title>") || !strings.Contains(opf, "<dc:language>en</dc:language>") {
		t.Fatalf("unexpected content.opf:\n%s", opf)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(&model.Book{Title: "Ashtanga: Hridayam"}); got != "Ashtanga_ Hridayam.epub" {
		t.Fatalf("FileName = %q", got)
	}
}
