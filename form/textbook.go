package form

import "vedic-admin/model"

type TextbookForm struct {
	Title           string `form:"title" validate:"notblank,max=500"`
	Author          string `form:"author" validate:"notblank,max=200"`
	Description     string `form:"description" validate:"max=2000"`
	CoverImageUrl   string `form:"coverImageUrl" validate:"max=500"`
	Category        string `form:"category" validate:"max=100"`
	Language        string `form:"language" validate:"max=50"`
	PublicationYear string `form:"publicationYear" validate:"omitempty,intrange=1 9999"`
	Isbn            string `form:"isbn" validate:"max=20"`
	Rating          string `form:"rating" validate:"omitempty,floatrange=0 5"`
	Status          string `form:"status" validate:"max=50"`
	Tags            string `form:"tags" validate:"max=1000"`
	Level           string `form:"level" validate:"max=50"`
	Year            string `form:"year" validate:"max=50"`
	PageCount       string `form:"pageCount" validate:"omitempty,intrange=1 10000"`
}

var textbookMessages = map[string]string{
	"title.notblank":           "Title is required",
	"title.max":                "Title cannot exceed 500 characters",
	"author.notblank":          "Author is required",
	"author.max":               "Author name cannot exceed 200 characters",
	"description.max":          "Description cannot exceed 2000 characters",
	"coverImageUrl.max":        "Cover image URL cannot exceed 500 characters",
	"category.max":             "Category cannot exceed 100 characters",
	"language.max":             "Language cannot exceed 50 characters",
	"publicationYear.intrange": "Publication year must be between 1 and 9999",
	"isbn.max":                 "ISBN cannot exceed 20 characters",
	"rating.floatrange":        "Rating must be between 0 and 5",
	"status.max":               "Status cannot exceed 50 characters",
	"tags.max":                 "Tags cannot exceed 1000 characters",
	"level.max":                "Level cannot exceed 50 characters",
	"year.max":                 "Year cannot exceed 50 characters",
	"pageCount.intrange":       "Page count must be between 1 and 10000",
}

func NewTextbookForm() *TextbookForm {
	return &TextbookForm{Status: "completed"}
}

func TextbookFormFrom(t *model.Textbook) *TextbookForm {
	f := &TextbookForm{
		Title:           t.Title,
		Author:          t.Author,
		Description:     t.Description,
		CoverImageUrl:   t.CoverImageUrl,
		Category:        t.Category,
		Language:        t.Language,
		PublicationYear: intText(t.PublicationYear),
		Isbn:            t.Isbn,
		Status:          t.Status,
		Tags:            t.Tags,
		Level:           t.Level,
		Year:            t.Year,
		PageCount:       intText(t.PageCount),
	}
	if t.Rating != nil && *t.Rating != 0 {
		f.Rating = floatText(*t.Rating)
	}
	if f.Status == "" {
		f.Status = "completed"
	}
	return f
}

func (f *TextbookForm) Validate() Errors {
	return check(f, textbookMessages)
}

// Input builds the request body. existing is the textbook being edited, or
// nil on create; an update carries its chapter count and active flag along.
func (f *TextbookForm) Input(existing *model.Textbook) model.TextbookInput {
	in := model.TextbookInput{
		Title:           f.Title,
		Author:          f.Author,
		Description:     f.Description,
		CoverImageUrl:   f.CoverImageUrl,
		Category:        f.Category,
		Language:        f.Language,
		PublicationYear: optionalInt(f.PublicationYear),
		Isbn:            f.Isbn,
		Rating:          optionalFloat(f.Rating),
		Status:          f.Status,
		Tags:            f.Tags,
		Level:           f.Level,
		Year:            f.Year,
		PageCount:       optionalInt(f.PageCount),
	}
	if existing != nil {
		total := existing.TotalChapters
		active := true
		if existing.IsActive != nil {
			active = *existing.IsActive
		}
		in.TotalChapters = &total
		in.IsActive = &active
	}
	return in
}
