package console

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"vedic-admin/audit"
)

const textbooksJSON = `[
	{"id":3,"title":"Dravyaguna Vijnana","author":"Sharma","category":"Pharmacology","level":"UG","tags":"herbs, materia medica","totalChapters":2},
	{"id":7,"title":"Kayachikitsa","author":"Tripathi","category":"Medicine","level":"PG","tags":"internal medicine","totalChapters":4,"isActive":false}
]`

func decodeSent(t *testing.T, fake *fakeAPI, key string) map[string]any {
	t.Helper()
	var sent map[string]any
	if err := json.Unmarshal([]byte(fake.body(key)), &sent); err != nil {
		t.Fatalf("bad request body for %s: %v", key, err)
	}
	return sent
}

func metaOf(doc *goquery.Document) map[string]string {
	meta := map[string]string{}
	doc.Find(".meta-item").Each(func(_ int, s *goquery.Selection) {
		meta[textOf(s.Find("dt"))] = textOf(s.Find("dd"))
	})
	return meta
}

func TestTextbookSearchLevelAndTags(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /Textbooks": textbooksJSON})

	doc := parse(t, get(t, h, "/textbooks"))
	if got := textOf(doc.Find("h2").First()); got != "All Textbooks (2)" {
		t.Fatalf("heading = %q", got)
	}

	tests := []struct {
		q    string
		want string
	}{
		{"pg", "Kayachikitsa"},
		{"materia", "Dravyaguna Vijnana"},
		{"PHARMACOLOGY", "Dravyaguna Vijnana"},
	}
	for _, tt := range tests {
		doc := parse(t, get(t, h, "/textbooks?q="+url.QueryEscape(tt.q)))
		rows := doc.Find("tbody tr")
		if rows.Length() != 1 || !strings.Contains(textOf(rows), tt.want) {
			t.Errorf("q=%q rows = %q, want only %q", tt.q, textOf(rows), tt.want)
		}
	}
}

func TestTextbookUpdateCarriesChapterCountAndActive(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /Textbooks/7": `{"id":7,"title":"Kayachikitsa","author":"Tripathi","totalChapters":4,"isActive":false}`,
		"PUT /Textbooks/7": `{"id":7}`,
	})

	rec := post(t, h, "/textbooks/7", url.Values{
		"title":  {"Kayachikitsa Vol 1"},
		"author": {"Tripathi"},
		"level":  {"PG"},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/textbooks" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	if !fake.called("GET /Textbooks/7") {
		t.Fatal("update did not load the existing textbook")
	}
	body := fake.body("PUT /Textbooks/7")
	if !strings.Contains(body, `"totalChapters":4`) || !strings.Contains(body, `"isActive":false`) {
		t.Fatalf("payload = %s", body)
	}
	if got := flashOf(t, rec); got != `success: Textbook "Kayachikitsa Vol 1" updated successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestTextbookCreateOmitsChapterCount(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"POST /Textbooks": `{"id":9}`})

	rec := post(t, h, "/textbooks", url.Values{"title": {"Rasa Shastra"}, "author": {"Mishra"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	sent := decodeSent(t, fake, "POST /Textbooks")
	if _, ok := sent["totalChapters"]; ok {
		t.Fatalf("create sent totalChapters: %v", sent)
	}
	if _, ok := sent["isActive"]; ok {
		t.Fatalf("create sent isActive: %v", sent)
	}
}

func TestTextbookValidation(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"GET /Textbooks": textbooksJSON})

	rec := post(t, h, "/textbooks", url.Values{"title": {"  "}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	errs := map[string]bool{}
	parse(t, rec).Find(".has-error span.form-error").Each(func(_ int, s *goquery.Selection) {
		errs[textOf(s)] = true
	})
	if !errs["Title is required"] || !errs["Author is required"] {
		t.Fatalf("errors = %v", errs)
	}
	if fake.called("POST /Textbooks") {
		t.Fatal("invalid textbook reached the API")
	}
}

func TestTextbookChapterCreateSendsTextbookId(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"POST /TextbookChapters": `{"id":40,"textbookId":3,"chapterNumber":1,"chapterTitle":"Rasa Panchaka"}`,
	})

	rec := post(t, h, "/textbooks/3/chapters", url.Values{
		"chapterNumber": {"1"},
		"chapterTitle":  {"Rasa Panchaka"},
		"contentHtml":   {"<p>Rasa, guna, virya, vipaka and prabhava.</p>"},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/textbooks/3/chapters" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	if !strings.Contains(fake.body("POST /TextbookChapters"), `"textbookId":3`) {
		t.Fatalf("payload = %s", fake.body("POST /TextbookChapters"))
	}
	if fake.called("POST /Chapters") {
		t.Fatal("textbook chapter sent to the book chapter endpoint")
	}
}

func TestTextbookChaptersPickFirstTextbook(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /Textbooks": textbooksJSON,
		"GET /Textbooks/3/chapters": `{"id":3,"title":"Dravyaguna Vijnana","author":"Sharma","chapters":[
			{"id":41,"chapterNumber":1,"chapterTitle":"Rasa Panchaka"}
		]}`,
	})

	doc := parse(t, get(t, h, "/textbook-chapters"))
	if !fake.called("GET /Textbooks/3/chapters") {
		t.Fatal("first textbook's chapters were not loaded")
	}
	if sel, _ := doc.Find(`select[name="textbook"] option[selected]`).Attr("value"); sel != "3" {
		t.Fatalf("selected textbook = %q", sel)
	}
	if got := textOf(doc.Find("tbody tr")); !strings.Contains(got, "Rasa Panchaka") {
		t.Fatalf("rows = %q", got)
	}
}

func TestChapterPreviewWordsAndReadingTime(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("dosha ", 250))
	h, _ := newTestConsole(t, map[string]string{
		"GET /Books":            booksJSON,
		"GET /Books/1/chapters": `{"id":1,"title":"Charaka Samhita","author":"Charaka","chapters":[]}`,
		"GET /Chapters/11":      `{"id":11,"bookId":1,"chapterNumber":1,"chapterTitle":"Sutra","contentHtml":"<p>` + words + `</p>"}`,
	})

	rec := get(t, h, "/books/1/chapters/11")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	doc := parse(t, rec)
	meta := metaOf(doc)
	if meta["Words"] != "250" || meta["Reading Time"] != "2 min" {
		t.Fatalf("meta = %v", meta)
	}
	if doc.Find(".content-preview p").Length() != 1 {
		t.Fatal("chapter content not rendered")
	}
}

const papersJSON = `[
	{"id":5,"title":"Turmeric in Wound Healing","authors":["Rao","Iyer"],"institution":"AIIA","year":2021,"category":"clinical-trial","abstract":"A randomised trial of topical turmeric.","status":"published","isFeatured":true,"viewCount":12}
]`

func TestResearchPaperCreate(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"POST /ResearchPapers": `{"id":6}`})

	rec := post(t, h, "/research-papers", url.Values{
		"title":       {"Ashwagandha and Sleep"},
		"authors":     {"Menon, Das"},
		"institution": {"BHU"},
		"year":        {"2022"},
		"category":    {"research-paper"},
		"abstract":    {"Sleep latency fell in the treated group."},
		"isFeatured":  {"on"},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/research-papers" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	sent := decodeSent(t, fake, "POST /ResearchPapers")
	if sent["year"] != float64(2022) || sent["authors"] != "Menon, Das" || sent["isFeatured"] != true {
		t.Fatalf("payload = %v", sent)
	}
	if got := flashOf(t, rec); got != `success: Research paper "Ashwagandha and Sleep" created successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestResearchPaperYearOutOfRange(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"GET /ResearchPapers": papersJSON})

	rec := post(t, h, "/research-papers", url.Values{
		"title":       {"Old Paper"},
		"authors":     {"Sen"},
		"institution": {"Calcutta"},
		"year":        {"1899"},
		"category":    {"research-paper"},
		"abstract":    {"Historic."},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := textOf(parse(t, rec).Find(".has-error span.form-error")); got != "Year must be between 1900 and 2100" {
		t.Fatalf("error = %q", got)
	}
	if fake.called("POST /ResearchPapers") {
		t.Fatal("out of range year reached the API")
	}
}

func TestResearchPaperEdit(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /ResearchPapers":   papersJSON,
		"GET /ResearchPapers/5": `{"id":5,"title":"Turmeric in Wound Healing","authors":"Rao, Iyer","institution":"AIIA","year":2021,"category":"clinical-trial","abstract":"A randomised trial.","publicationDate":"2021-06-01T00:00:00"}`,
		"PUT /ResearchPapers/5": `{"id":5}`,
	})

	doc := parse(t, get(t, h, "/research-papers/5/edit"))
	if v, _ := doc.Find(`input[name="year"]`).Attr("value"); v != "2021" {
		t.Fatalf("year = %q", v)
	}
	if v, _ := doc.Find(`input[name="authors"]`).Attr("value"); v != "Rao, Iyer" {
		t.Fatalf("authors = %q", v)
	}
	if v, _ := doc.Find(`input[name="publicationDate"]`).Attr("value"); v != "2021-06-01" {
		t.Fatalf("publication date = %q", v)
	}

	rec := post(t, h, "/research-papers/5", url.Values{
		"title":       {"Turmeric in Wound Healing, revised"},
		"authors":     {"Rao, Iyer"},
		"institution": {"AIIA"},
		"year":        {"2021"},
		"category":    {"clinical-trial"},
		"abstract":    {"A randomised trial."},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if sent := decodeSent(t, fake, "PUT /ResearchPapers/5"); sent["isFeatured"] != false {
		t.Fatalf("unticked checkbox sent %v", sent["isFeatured"])
	}
	if got := flashOf(t, rec); got != `success: Research paper "Turmeric in Wound Healing, revised" updated successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestResearchPaperPreview(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{
		"GET /ResearchPapers": papersJSON,
		"GET /ResearchPapers/5": `{"id":5,"title":"Turmeric in Wound Healing","authors":["Rao","Iyer"],"institution":"AIIA","year":2021,
			"category":"clinical-trial","abstract":"A randomised trial.","journalName":"J Ayurveda","doi":"10.1000/xyz","contentHtml":"<h3>Method</h3>"}`,
	})

	doc := parse(t, get(t, h, "/research-papers/5"))
	if got := textOf(doc.Find(".modal-subtitle")); got != "Rao, Iyer" {
		t.Fatalf("subtitle = %q", got)
	}
	meta := metaOf(doc)
	if meta["Year"] != "2021" || meta["Institution"] != "AIIA" || meta["Journal"] != "J Ayurveda" || meta["DOI"] != "10.1000/xyz" {
		t.Fatalf("meta = %v", meta)
	}
	if got := textOf(doc.Find(".content-preview h3")); got != "Method" {
		t.Fatalf("content = %q", got)
	}
	if got := textOf(doc.Find(".stat-card").First().Find(".stat-value")); got != "1" {
		t.Fatalf("total papers = %q", got)
	}
}

func TestResearchPaperDelete(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /ResearchPapers/5":    `{"id":5,"title":"Turmeric in Wound Healing"}`,
		"DELETE /ResearchPapers/5": ``,
	})

	doc := parse(t, get(t, h, "/research-papers/5/delete"))
	if got := textOf(doc.Find(".confirm-message")); !strings.Contains(got, `"Turmeric in Wound Healing"`) {
		t.Fatalf("confirm message = %q", got)
	}
	rec := post(t, h, "/research-papers/5/delete", url.Values{"title": {"Turmeric in Wound Healing"}})
	if !fake.called("DELETE /ResearchPapers/5") {
		t.Fatal("delete not sent")
	}
	if got := flashOf(t, rec); got != `success: Research paper "Turmeric in Wound Healing" deleted successfully` {
		t.Fatalf("flash = %q", got)
	}
}

const thesesJSON = `[
	{"id":8,"title":"Nadi Pariksha Revisited","author":"Kulkarni","institution":"GAU","year":2019,"category":"PhD Thesis","status":"published"}
]`

func TestThesisCreate(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"POST /Thesis": `{"id":9}`})

	rec := post(t, h, "/thesis", url.Values{
		"title":       {"Pulse Diagnosis"},
		"author":      {"Kulkarni"},
		"guideNames":  {"Joshi, Pande"},
		"institution": {"GAU"},
		"year":        {"2020"},
		"category":    {"MD Thesis"},
		"abstract":    {"Nadi readings across prakriti types."},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/thesis" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	sent := decodeSent(t, fake, "POST /Thesis")
	if sent["year"] != float64(2020) || sent["guideNames"] != "Joshi, Pande" {
		t.Fatalf("payload = %v", sent)
	}
	if got := flashOf(t, rec); got != `success: Thesis "Pulse Diagnosis" created successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestThesisValidation(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"GET /Thesis": thesesJSON})

	rec := post(t, h, "/thesis", url.Values{
		"title":       {"Pulse Diagnosis"},
		"author":      {"Kulkarni"},
		"institution": {"GAU"},
		"year":        {"2101"},
		"category":    {"MD Thesis"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	errs := map[string]bool{}
	parse(t, rec).Find(".has-error span.form-error").Each(func(_ int, s *goquery.Selection) {
		errs[textOf(s)] = true
	})
	if !errs["Year must be between 1900 and 2100"] || !errs["Abstract is required"] {
		t.Fatalf("errors = %v", errs)
	}
	if fake.called("POST /Thesis") {
		t.Fatal("invalid thesis reached the API")
	}
}

func TestThesisPreview(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{
		"GET /Thesis": thesesJSON,
		"GET /Thesis/8": `{"id":8,"title":"Nadi Pariksha Revisited","author":"Kulkarni","guideNames":"Joshi, Pande","institution":"GAU",
			"department":"Roga Nidana","year":2019,"thesisType":"Dissertation","grade":"A","defenseDate":"2019-11-20T00:00:00"}`,
	})

	doc := parse(t, get(t, h, "/thesis/8"))
	if got := textOf(doc.Find(".modal-subtitle")); got != "Kulkarni" {
		t.Fatalf("subtitle = %q", got)
	}
	meta := metaOf(doc)
	if meta["Guides"] != "Joshi, Pande" || meta["Department"] != "Roga Nidana" || meta["Type"] != "Dissertation" ||
		meta["Grade"] != "A" || meta["Defense Date"] != "2019-11-20" {
		t.Fatalf("meta = %v", meta)
	}
}

func TestThesisDelete(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /Thesis/8":    `{"id":8,"title":"Nadi Pariksha Revisited"}`,
		"DELETE /Thesis/8": ``,
	})

	doc := parse(t, get(t, h, "/thesis/8/delete"))
	if v, _ := doc.Find(`.confirm-dialog input[name="title"]`).Attr("value"); v != "Nadi Pariksha Revisited" {
		t.Fatalf("confirm title = %q", v)
	}
	rec := post(t, h, "/thesis/8/delete", url.Values{"title": {"Nadi Pariksha Revisited"}})
	if !fake.called("DELETE /Thesis/8") {
		t.Fatal("delete not sent")
	}
	if got := flashOf(t, rec); got != `success: Thesis "Nadi Pariksha Revisited" deleted successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestBookEPUBExport(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{
		"GET /Books/1/chapters": `{"id":1,"title":"Charaka Samhita","author":"Charaka","language":"Sanskrit","chapters":[
			{"id":11,"chapterNumber":1,"chapterTitle":"Sutra","contentHtml":"<p>Ayu</p>"}
		]}`,
	})

	rec := get(t, h, "/books/1/export.epub")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/epub+zip" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Charaka Samhita.epub"` {
		t.Fatalf("content disposition = %q", cd)
	}
	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("body is not a zip: %v", err)
	}
	if zr.File[0].Name != "mimetype" {
		t.Fatalf("first entry = %q", zr.File[0].Name)
	}
}

func TestBookTitleShowsDescriptionExcerpt(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{
		"GET /Books": `[{"id":1,"title":"Charaka Samhita","author":"Charaka","description":"The foundational text of internal medicine."}]`,
	})

	doc := parse(t, get(t, h, "/books"))
	if got := textOf(doc.Find("tbody tr td").First().Find(".cell-note")); got != "The foundational text of internal medicine." {
		t.Fatalf("excerpt = %q", got)
	}
}

func TestContactDetailCarriesName(t *testing.T) {
	s, fake := newTestServer(t, map[string]string{
		"GET /ContactSubmissions":   contactsJSON,
		"GET /ContactSubmissions/1": `{"id":1,"name":"Asha","email":"asha@example.com","subject":"Collaboration","message":"Let us work together","status":"Pending"}`,
		"PUT /ContactSubmissions/1": ``,
	})
	store, err := audit.Open(context.Background(), "sqlite", filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("failed to open audit store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	s.audit = store
	h := s.Handler()

	doc := parse(t, get(t, h, "/contact-submissions/1"))
	hidden := doc.Find(`.inline-status-form input[type="hidden"][name="title"]`)
	if v, _ := hidden.Attr("value"); v != "Asha" {
		t.Fatalf("hidden title = %q", v)
	}

	form := url.Values{"status": {"Resolved"}}
	form.Set("title", "Asha")
	rec := post(t, h, "/contact-submissions/1/status", form)
	if rec.Code != http.StatusSeeOther || !fake.called("PUT /ContactSubmissions/1") {
		t.Fatalf("status update = %d", rec.Code)
	}
	entries, err := store.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Asha" || entries[0].Action != audit.ActionStatus || entries[0].Detail != "Resolved" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestContactDelete(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /ContactSubmissions/1":    `{"id":1,"name":"Asha","email":"asha@example.com","status":"Pending"}`,
		"DELETE /ContactSubmissions/1": ``,
	})

	doc := parse(t, get(t, h, "/contact-submissions/1/delete"))
	if got := textOf(doc.Find(".confirm-message")); !strings.Contains(got, `submission from "Asha"`) {
		t.Fatalf("confirm message = %q", got)
	}
	rec := post(t, h, "/contact-submissions/1/delete", url.Values{"title": {"Asha"}})
	if !fake.called("DELETE /ContactSubmissions/1") {
		t.Fatal("delete not sent")
	}
	if rec.Header().Get("Location") != "/contact-submissions" {
		t.Fatalf("location = %q", rec.Header().Get("Location"))
	}
	if got := flashOf(t, rec); got != `success: Submission from "Asha" deleted successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestNewsletterDelete(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /NewsletterSubscriptions":      subscriptionsJSON,
		"DELETE /NewsletterSubscriptions/2": ``,
	})

	doc := parse(t, get(t, h, "/newsletter-subscriptions/2/delete"))
	if got := textOf(doc.Find(".confirm-message")); !strings.Contains(got, `permanently delete "b@example.com"`) {
		t.Fatalf("confirm message = %q", got)
	}
	rec := post(t, h, "/newsletter-subscriptions/2/delete", url.Values{"title": {"b@example.com"}})
	if !fake.called("DELETE /NewsletterSubscriptions/2") {
		t.Fatal("delete not sent")
	}
	if got := flashOf(t, rec); got != `success: "b@example.com" deleted successfully` {
		t.Fatalf("flash = %q", got)
	}
}
