package form

import (
	"time"

	"vedic-admin/model"
)

type ResearchPaperForm struct {
	Title           string `form:"title" validate:"notblank,max=500"`
	Authors         string `form:"authors" validate:"notblank,max=1000"`
	Institution     string `form:"institution" validate:"notblank,max=300"`
	Year            string `form:"year" validate:"required,intrange=1900 2100"`
	Category        string `form:"category" validate:"required"`
	Abstract        string `form:"abstract" validate:"notblank"`
	ContentHtml     string `form:"contentHtml"`
	Keywords        string `form:"keywords"`
	Pages           string `form:"pages" validate:"omitempty,intrange=0 10000"`
	Doi             string `form:"doi"`
	JournalName     string `form:"journalName"`
	Volume          string `form:"volume"`
	IssueNumber     string `form:"issueNumber"`
	PublicationDate string `form:"publicationDate"`
	PdfUrl          string `form:"pdfUrl"`
	CoverImageUrl   string `form:"coverImageUrl"`
	Rating          string `form:"rating" validate:"omitempty,floatrange=0 5"`
	Status          string `form:"status"`
	IsFeatured      bool   `form:"isFeatured"`
}

var paperMessages = map[string]string{
	"title.notblank":       "Title is required",
	"title.max":            "Title cannot exceed 500 characters",
	"authors.notblank":     "Authors are required",
	"authors.max":          "Authors cannot exceed 1000 characters",
	"institution.notblank": "Institution is required",
	"institution.max":      "Institution cannot exceed 300 characters",
	"year.required":        "Year is required",
	"year.intrange":        "Year must be between 1900 and 2100",
	"category.required":    "Category is required",
	"abstract.notblank":    "Abstract is required",
	"pages.intrange":       "Pages must be between 0 and 10000",
	"rating.floatrange":    "Rating must be between 0 and 5",
}

func NewResearchPaperForm(now time.Time) *ResearchPaperForm {
	return &ResearchPaperForm{
		Year:     itoa(now.Year()),
		Category: "research-paper",
		Pages:    "0",
		Rating:   "0",
		Status:   "published",
	}
}

// ResearchPaperFormFrom fills the form from a full record; contentHtml is
// only present on the single-paper endpoint.
func ResearchPaperFormFrom(p *model.ResearchPaper, now time.Time) *ResearchPaperForm {
	f := &ResearchPaperForm{
		Title:           p.Title,
		Authors:         p.Authors.Join(),
		Institution:     p.Institution,
		Year:            itoa(now.Year()),
		Category:        p.Category,
		Abstract:        p.Abstract,
		ContentHtml:     p.ContentHtml,
		Keywords:        p.Keywords.Join(),
		Pages:           itoa(p.Pages),
		Doi:             p.Doi,
		JournalName:     p.JournalName,
		Volume:          p.Volume,
		IssueNumber:     p.IssueNumber,
		PublicationDate: model.DateOnly(p.PublicationDate),
		PdfUrl:          p.PdfUrl,
		CoverImageUrl:   p.CoverImageUrl,
		Rating:          floatText(p.Rating),
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
	}
	if p.Year != 0 {
		f.Year = itoa(p.Year)
	}
	if f.Category == "" {
		f.Category = "research-paper"
	}
	if f.Status == "" {
		f.Status = "published"
	}
	return f
}

func (f *ResearchPaperForm) Validate() Errors {
	return check(f, paperMessages)
}

func (f *ResearchPaperForm) Input() model.ResearchPaperInput {
	return model.ResearchPaperInput{
		Title:           f.Title,
		Authors:         f.Authors,
		Institution:     f.Institution,
		Year:            intOrZero(f.Year),
		Category:        f.Category,
		Abstract:        f.Abstract,
		ContentHtml:     nullable(f.ContentHtml),
		Keywords:        nullable(f.Keywords),
		Pages:           intOrZero(f.Pages),
		Doi:             nullable(f.Doi),
		JournalName:     nullable(f.JournalName),
		Volume:          nullable(f.Volume),
		IssueNumber:     nullable(f.IssueNumber),
		PublicationDate: nullable(f.PublicationDate),
		PdfUrl:          nullable(f.PdfUrl),
		CoverImageUrl:   nullable(f.CoverImageUrl),
		Rating:          floatOrZero(f.Rating),
		Status:          f.Status,
		IsFeatured:      f.IsFeatured,
	}
}
