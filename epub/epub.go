package epub

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/google/uuid"

	"vedic-admin/model"
	"vedic-admin/template"
	"vedic-admin/utils"
)

const (
	identifierID = "book-id"
	navTitle     = "Contents"
)

// FileName is the download name of the EPUB for book.
func FileName(book *model.Book) string {
	return utils.CleanFileName(book.Title) + ".epub"
}

// PackBook writes book and its chapters to w as an EPUB 3 archive.
// Chapters are ordered by chapter number.
func PackBook(ctx context.Context, w io.Writer, book *model.BookWithChapters) error {
	chapters := make([]*model.Chapter, len(book.Chapters))
	copy(chapters, book.Chapters)
	model.SortChapters(chapters)

	zw := zip.NewWriter(w)
	if err := addString(zw, "mimetype", "application/epub+zip", zip.Store); err != nil {
		return err
	}
	if err := addComponent(ctx, zw, "META-INF/container.xml", template.ContainerXML()); err != nil {
		return err
	}

	navItems := make([]template.Option, 0, len(chapters))
	for i, chapter := range chapters {
		body, err := chapterBody(chapter)
		if err != nil {
			return fmt.Errorf("failed to convert chapter %d: %w", chapter.ChapterNumber, err)
		}
		name := chapterFile(i)
		if err := addComponent(ctx, zw, "OEBPS/Text/"+name, template.ContentXHTML(chapterTitle(chapter), body)); err != nil {
			return err
		}
		navItems = append(navItems, template.Option{Value: name, Label: chapterTitle(chapter)})
	}
	if err := addComponent(ctx, zw, "OEBPS/Text/nav.xhtml", template.NavXHTML(navTitle, navItems)); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := addComponent(ctx, zw, "toc.ncx", tocNCX(id, &book.Book, chapters)); err != nil {
		return err
	}
	if err := addComponent(ctx, zw, "content.opf", contentOPF(id, &book.Book, chapters)); err != nil {
		return err
	}
	if err := addString(zw, "OEBPS/style.css", template.EpubCSS, zip.Deflate); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish epub: %w", err)
	}
	return nil
}

// WriteFile packs book into dir and returns the path written.
func WriteFile(ctx context.Context, dir string, book *model.BookWithChapters) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, FileName(&book.Book))
	var buf bytes.Buffer
	if err := PackBook(ctx, &buf, book); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write epub: %w", err)
	}
	return path, nil
}

func chapterFile(i int) string {
	return fmt.Sprintf("chapter-%03d.xhtml", i)
}

func chapterTitle(c *model.Chapter) string {
	return fmt.Sprintf("Chapter %d: %s", c.ChapterNumber, c.ChapterTitle)
}

// chapterBody turns the chapter's HTML into well-formed XHTML under a
// heading.
func chapterBody(c *model.Chapter) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.ContentHtml))
	if err != nil {
		return "", err
	}
	doc.Find("script").Remove()
	content, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<h2>" + templ.EscapeString(chapterTitle(c)) + "</h2>")
	if c.ChapterSubtitle != "" {
		b.WriteString(`<p class="subtitle">` + templ.EscapeString(c.ChapterSubtitle) + "</p>")
	}
	b.WriteString(content)
	return b.String(), nil
}

func contentOPF(id string, book *model.Book, chapters []*model.Chapter) templ.Component {
	dc := &model.DublinCoreMetadata{
		Titles: []model.DCTitle{{Value: book.Title}},
		Identifiers: []model.DCIdentifier{{
			Value: "urn:uuid:" + id,
			ID:    identifierID,
		}},
		Languages: []model.DCLanguage{{Value: language(book)}},
		Metas: []model.DublinCoreMeta{{
			Property: "dcterms:modified",
			Value:    time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		}},
	}
	if book.Author != "" {
		dc.Creators = []model.DCCreator{{Value: book.Author}}
	}
	if book.Description != "" {
		dc.Descriptions = []model.DCDescription{{Value: book.Description}}
	}
	if book.Category != "" {
		dc.Subjects = []model.DCSubject{{Value: book.Category}}
	}
	if book.PublicationYear != nil && *book.PublicationYear > 0 {
		dc.Dates = []model.DCDate{{Value: fmt.Sprintf("%04d", *book.PublicationYear)}}
	}
	if book.Isbn != "" {
		dc.Identifiers = append(dc.Identifiers, model.DCIdentifier{Value: "urn:isbn:" + book.Isbn})
	}

	manifest := &model.Manifest{Items: []model.ManifestItem{
		{ID: "nav", Link: "OEBPS/Text/nav.xhtml", Media: "application/xhtml+xml", Properties: "nav"},
		{ID: "ncx", Link: "toc.ncx", Media: "application/x-dtbncx+xml"},
		{ID: "style", Link: "OEBPS/style.css", Media: "text/css"},
	}}
	spine := &model.Spine{Toc: "ncx", Items: []model.SpineItem{{IDref: "nav"}}}
	for i := range chapters {
		itemID := fmt.Sprintf("chapter-%03d", i)
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    itemID,
			Link:  "OEBPS/Text/" + chapterFile(i),
			Media: "application/xhtml+xml",
		})
		spine.Items = append(spine.Items, model.SpineItem{IDref: itemID})
	}
	return template.ContentOPF(identifierID, dc, manifest, spine)
}

func tocNCX(id string, book *model.Book, chapters []*model.Chapter) templ.Component {
	ncx := model.NewNCX("urn:uuid:"+id, book.Title)
	for i, c := range chapters {
		ncx.AddChapter(chapterTitle(c), "OEBPS/Text/"+chapterFile(i))
	}
	return template.TocNCX(ncx)
}

func language(book *model.Book) string {
	switch strings.ToLower(strings.TrimSpace(book.Language)) {
	case "", "english":
		return "en"
	case "hindi":
		return "hi"
	case "sanskrit":
		return "sa"
	}
	return book.Language
}

func addComponent(ctx context.Context, zw *zip.Writer, name string, c templ.Component) error {
	writer, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	if err := c.Render(ctx, writer); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func addString(zw *zip.Writer, name, content string, method uint16) error {
	writer, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	_, err = io.WriteString(writer, content)
	return err
}
