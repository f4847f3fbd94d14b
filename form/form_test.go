package form

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"vedic-admin/model"
)

func TestBookFormRequiresTitle(t *testing.T) {
	f := &BookForm{Title: "   ", Author: "Charaka"}
	errs := f.Validate()
	if errs["title"] != "Title is required" {
		t.Fatalf("title error = %q", errs["title"])
	}
	if _, ok := errs["author"]; ok {
		t.Fatalf("unexpected author error: %v", errs)
	}
}

func TestBookFormLengthsCountCharacters(t *testing.T) {
	f := &BookForm{Title: strings.Repeat("आ", 500), Author: strings.Repeat("a", 201)}
	errs := f.Validate()
	if _, ok := errs["title"]; ok {
		t.Fatalf("500 characters should be accepted: %v", errs)
	}
	if errs["author"] != "Author name cannot exceed 200 characters" {
		t.Fatalf("author error = %q", errs["author"])
	}
}

func TestBookFormPublicationYear(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"1999":  true,
		"2020a": true,
		"0":     false,
		"10000": false,
		"abc":   false,
	}
	for year, valid := range cases {
		f := &BookForm{Title: "t", Author: "a", PublicationYear: year}
		_, failed := f.Validate()["publicationYear"]
		if failed == valid {
			t.Errorf("publicationYear %q: valid=%v, errors=%v", year, valid, f.Validate())
		}
	}

	in := (&BookForm{Title: "t", Author: "a"}).Input()
	if in.PublicationYear != nil {
		t.Fatalf("empty year should be null, got %d", *in.PublicationYear)
	}
	in = (&BookForm{Title: "t", Author: "a", PublicationYear: "1987"}).Input()
	if in.PublicationYear == nil || *in.PublicationYear != 1987 {
		t.Fatalf("unexpected year %v", in.PublicationYear)
	}
}

func TestChapterFormRules(t *testing.T) {
	errs := (&ChapterForm{}).Validate()
	want := map[string]string{
		"chapterNumber": "Chapter number is required",
		"chapterTitle":  "Chapter title is required",
		"contentHtml":   "Content HTML is required",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("%s error = %q, want %q", field, errs[field], msg)
		}
	}

	errs = (&ChapterForm{ChapterNumber: "0", ChapterTitle: "x", ContentHtml: "<p>x</p>"}).Validate()
	if errs["chapterNumber"] != "Chapter number must be positive" {
		t.Fatalf("chapterNumber error = %q", errs["chapterNumber"])
	}
}

func TestChapterFormInput(t *testing.T) {
	f := &ChapterForm{ChapterNumber: "3", ChapterTitle: "Nidana", ContentHtml: "<p>x</p>", WordCount: "120"}
	in := f.Input()
	if in.ChapterNumber != 3 {
		t.Fatalf("chapterNumber = %d", in.ChapterNumber)
	}
	if in.WordCount == nil || *in.WordCount != 120 {
		t.Fatalf("wordCount = %v", in.WordCount)
	}
	if in.ReadingTimeMinutes != nil || in.DisplayOrder != nil {
		t.Fatal("empty optional numbers should be null")
	}
}

func TestTextbookFormUpdateCarriesExistingFields(t *testing.T) {
	f := NewTextbookForm()
	if f.Status != "completed" {
		t.Fatalf("default status = %q", f.Status)
	}
	f.Title, f.Author, f.Rating = "Dravyaguna", "Sharma", "4.5"

	created := f.Input(nil)
	if created.TotalChapters != nil || created.IsActive != nil {
		t.Fatal("create payload should not carry totalChapters or isActive")
	}
	if created.Rating == nil || *created.Rating != 4.5 {
		t.Fatalf("rating = %v", created.Rating)
	}

	updated := f.Input(&model.Textbook{TotalChapters: 12})
	if updated.TotalChapters == nil || *updated.TotalChapters != 12 {
		t.Fatalf("totalChapters = %v", updated.TotalChapters)
	}
	if updated.IsActive == nil || !*updated.IsActive {
		t.Fatal("isActive should default to true")
	}
}

func TestTextbookFormRanges(t *testing.T) {
	f := &TextbookForm{Title: "t", Author: "a", Rating: "5.5", PageCount: "0"}
	errs := f.Validate()
	if errs["rating"] != "Rating must be between 0 and 5" {
		t.Errorf("rating error = %q", errs["rating"])
	}
	if errs["pageCount"] != "Page count must be between 1 and 10000" {
		t.Errorf("pageCount error = %q", errs["pageCount"])
	}
}

func TestResearchPaperFormDefaultsAndPayload(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	f := NewResearchPaperForm(now)
	if f.Year != "2025" || f.Category != "research-paper" || f.Status != "published" || f.IsFeatured {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	errs := f.Validate()
	if errs["authors"] != "Authors are required" {
		t.Fatalf("authors error = %q", errs["authors"])
	}

	f.Title, f.Authors, f.Institution, f.Abstract = "Turmeric", "A, B", "AIIA", "..."
	f.Pages = "12 pages"
	if errs := f.Validate(); errs.Any() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	in := f.Input()
	if in.Authors != "A, B" || in.Year != 2025 || in.Pages != 12 {
		t.Fatalf("unexpected payload: %+v", in)
	}
	if in.Doi != nil || in.Keywords != nil || in.ContentHtml != nil {
		t.Fatal("empty optional strings should be null")
	}
}

func TestResearchPaperFormFromRecord(t *testing.T) {
	p := &model.ResearchPaper{
		Title:           "Neem",
		Authors:         model.StringList{"A", "B"},
		Year:            2019,
		PublicationDate: "2019-04-02T00:00:00",
	}
	f := ResearchPaperFormFrom(p, time.Now())
	if f.Authors != "A, B" || f.Year != "2019" || f.PublicationDate != "2019-04-02" {
		t.Fatalf("unexpected form: %+v", f)
	}
}

func TestThesisFormYearRange(t *testing.T) {
	f := NewThesisForm(time.Now())
	f.Title, f.Author, f.Institution, f.Abstract = "t", "a", "i", "x"
	f.Year = "1800"
	if got := f.Validate()["year"]; got != "Year must be between 1900 and 2100" {
		t.Fatalf("year error = %q", got)
	}
	f.Year = ""
	if got := f.Validate()["year"]; got != "Year is required" {
		t.Fatalf("year error = %q", got)
	}
	f.Year = "2001"
	in := f.Input()
	if in.ThesisType == nil || *in.ThesisType != "Thesis" || in.Grade != nil {
		t.Fatalf("unexpected payload: %+v", in)
	}
}

func TestContactStatusForm(t *testing.T) {
	for _, status := range model.ContactStatuses {
		if errs := (&ContactStatusForm{Status: status}).Validate(); errs.Any() {
			t.Fatalf("%s rejected: %v", status, errs)
		}
	}
	errs := (&ContactStatusForm{Status: "Archived"}).Validate()
	if errs["status"] != "Status must be Pending, InProgress, Resolved or Closed" {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := (&ContactStatusForm{}).Validate(); errs["status"] != "Status is required" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestBind(t *testing.T) {
	values := url.Values{
		"title":      {"Turmeric"},
		"isFeatured": {"on"},
		"year":       {"2020"},
	}
	r := httptest.NewRequest("POST", "/research-papers", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var f ResearchPaperForm
	if err := Bind(r, &f); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if f.Title != "Turmeric" || f.Year != "2020" || !f.IsFeatured {
		t.Fatalf("unexpected form: %+v", f)
	}
}

func TestBindCheckboxes(t *testing.T) {
	for _, tc := range []struct {
		posted url.Values
		want   bool
	}{
		{url.Values{"title": {"Ayurveda"}}, false},
		{url.Values{"isFeatured": {"true"}}, true},
		{url.Values{"isFeatured": {"YES"}}, true},
		{url.Values{"isFeatured": {"off"}}, false},
	} {
		r := httptest.NewRequest("POST", "/thesis", strings.NewReader(tc.posted.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var f ThesisForm
		if err := Bind(r, &f); err != nil {
			t.Fatalf("Bind(%v): %v", tc.posted, err)
		}
		if f.IsFeatured != tc.want {
			t.Fatalf("Bind(%v) featured = %v, want %v", tc.posted, f.IsFeatured, tc.want)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	if n, ok := ParseInt("  42px"); !ok || n != 42 {
		t.Fatalf("ParseInt = %d, %v", n, ok)
	}
	if _, ok := ParseInt("px"); ok {
		t.Fatal("expected no number")
	}
	if n, ok := ParseFloat("3.5 stars"); !ok || n != 3.5 {
		t.Fatalf("ParseFloat = %v, %v", n, ok)
	}
	if n, ok := ParseFloat(".5"); !ok || n != 0.5 {
		t.Fatalf("ParseFloat = %v, %v", n, ok)
	}
}
