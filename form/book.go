package form

import "vedic-admin/model"

type BookForm struct {
	Title           string `form:"title" validate:"notblank,max=500"`
	Author          string `form:"author" validate:"notblank,max=200"`
	Description     string `form:"description" validate:"max=2000"`
	CoverImageUrl   string `form:"coverImageUrl" validate:"max=500"`
	Category        string `form:"category" validate:"max=100"`
	Language        string `form:"language" validate:"max=50"`
	PublicationYear string `form:"publicationYear" validate:"omitempty,intrange=1 9999"`
	Isbn            string `form:"isbn" validate:"max=20"`
}

var bookMessages = map[string]string{
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
}

func BookFormFrom(b *model.Book) *BookForm {
	return &BookForm{
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImageUrl:   b.CoverImageUrl,
		Category:        b.Category,
		Language:        b.Language,
		PublicationYear: intText(b.PublicationYear),
		Isbn:            b.Isbn,
	}
}

func (f *BookForm) Validate() Errors {
	return check(f, bookMessages)
}

func (f *BookForm) Input() model.BookInput {
	return model.BookInput{
		Title:           f.Title,
		Author:          f.Author,
		Description:     f.Description,
		CoverImageUrl:   f.CoverImageUrl,
		Category:        f.Category,
		Language:        f.Language,
		PublicationYear: optionalInt(f.PublicationYear),
		Isbn:            f.Isbn,
	}
}
