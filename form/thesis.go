package form

import (
	"time"

	"vedic-admin/model"
)

type ThesisForm struct {
	Title                        string `form:"title" validate:"notblank,max=500"`
	Author                       string `form:"author" validate:"notblank,max=300"`
	GuideNames                   string `form:"guideNames"`
	Institution                  string `form:"institution" validate:"notblank,max=300"`
	Department                   string `form:"department"`
	Year                         string `form:"year" validate:"required,intrange=1900 2100"`
	Category                     string `form:"category" validate:"required"`
	ThesisType                   string `form:"thesisType"`
	Abstract                     string `form:"abstract" validate:"notblank"`
	ContentHtml                  string `form:"contentHtml"`
	Keywords                     string `form:"keywords"`
	Pages                        string `form:"pages" validate:"omitempty,intrange=0 10000"`
	SubmissionDate               string `form:"submissionDate"`
	ApprovalDate                 string `form:"approvalDate"`
	DefenseDate                  string `form:"defenseDate"`
	Grade                        string `form:"grade"`
	PdfUrl                       string `form:"pdfUrl"`
	CoverImageUrl                string `form:"coverImageUrl"`
	UniversityRegistrationNumber string `form:"universityRegistrationNumber"`
	Rating                       string `form:"rating" validate:"omitempty,floatrange=0 5"`
	Status                       string `form:"status"`
	IsFeatured                   bool   `form:"isFeatured"`
}

var thesisMessages = map[string]string{
	"title.notblank":       "Title is required",
	"title.max":            "Title cannot exceed 500 characters",
	"author.notblank":      "Author is required",
	"author.max":           "Author cannot exceed 300 characters",
	"institution.notblank": "Institution is required",
	"institution.max":      "Institution cannot exceed 300 characters",
	"year.required":        "Year is required",
	"year.intrange":        "Year must be between 1900 and 2100",
	"category.required":    "Category is required",
	"abstract.notblank":    "Abstract is required",
	"pages.intrange":       "Pages must be between 0 and 10000",
	"rating.floatrange":    "Rating must be between 0 and 5",
}

func NewThesisForm(now time.Time) *ThesisForm {
	return &ThesisForm{
		Year:       itoa(now.Year()),
		Category:   "MS Thesis",
		ThesisType: "Thesis",
		Pages:      "0",
		Rating:     "0",
		Status:     "published",
	}
}

func ThesisFormFrom(t *model.Thesis, now time.Time) *ThesisForm {
	f := &ThesisForm{
		Title:                        t.Title,
		Author:                       t.Author,
		GuideNames:                   t.GuideNames.Join(),
		Institution:                  t.Institution,
		Department:                   t.Department,
		Year:                         itoa(now.Year()),
		Category:                     t.Category,
		ThesisType:                   t.ThesisType,
		Abstract:                     t.Abstract,
		ContentHtml:                  t.ContentHtml,
		Keywords:                     t.Keywords.Join(),
		Pages:                        itoa(t.Pages),
		SubmissionDate:               model.DateOnly(t.SubmissionDate),
		ApprovalDate:                 model.DateOnly(t.ApprovalDate),
		DefenseDate:                  model.DateOnly(t.DefenseDate),
		Grade:                        t.Grade,
		PdfUrl:                       t.PdfUrl,
		CoverImageUrl:                t.CoverImageUrl,
		UniversityRegistrationNumber: t.UniversityRegistrationNumber,
		Rating:                       floatText(t.Rating),
		Status:                       t.Status,
		IsFeatured:                   t.IsFeatured,
	}
	if t.Year != 0 {
		f.Year = itoa(t.Year)
	}
	if f.Category == "" {
		f.Category = "MS Thesis"
	}
	if f.ThesisType == "" {
		f.ThesisType = "Thesis"
	}
	if f.Status == "" {
		f.Status = "published"
	}
	return f
}

func (f *ThesisForm) Validate() Errors {
	return check(f, thesisMessages)
}

func (f *ThesisForm) Input() model.ThesisInput {
	return model.ThesisInput{
		Title:                        f.Title,
		Author:                       f.Author,
		GuideNames:                   nullable(f.GuideNames),
		Institution:                  f.Institution,
		Department:                   nullable(f.Department),
		Year:                         intOrZero(f.Year),
		Category:                     f.Category,
		ThesisType:                   nullable(f.ThesisType),
		Abstract:                     f.Abstract,
		ContentHtml:                  nullable(f.ContentHtml),
		Keywords:                     nullable(f.Keywords),
		Pages:                        intOrZero(f.Pages),
		SubmissionDate:               nullable(f.SubmissionDate),
		ApprovalDate:                 nullable(f.ApprovalDate),
		DefenseDate:                  nullable(f.DefenseDate),
		Grade:                        nullable(f.Grade),
		PdfUrl:                       nullable(f.PdfUrl),
		CoverImageUrl:                nullable(f.CoverImageUrl),
		UniversityRegistrationNumber: nullable(f.UniversityRegistrationNumber),
		Rating:                       floatOrZero(f.Rating),
		Status:                       f.Status,
		IsFeatured:                   f.IsFeatured,
	}
}
