package model

type Textbook struct {
	Id              int64    `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	CoverImageUrl   string   `json:"coverImageUrl"`
	Category        string   `json:"category"`
	Language        string   `json:"language"`
	PublicationYear *int     `json:"publicationYear"`
	Isbn            string   `json:"isbn"`
	Rating          *float64 `json:"rating"`
	Status          string   `json:"status"`
	Tags            string   `json:"tags"`
	Level           string   `json:"level"`
	Year            string   `json:"year"`
	PageCount       *int     `json:"pageCount"`
	ViewCount       int      `json:"viewCount"`
	DownloadCount   int      `json:"downloadCount"`
	TotalChapters   int      `json:"totalChapters"`
	IsActive        *bool    `json:"isActive"`
}

type TextbookWithChapters struct {
	Textbook
	Chapters []*Chapter `json:"chapters"`
}

// TextbookInput is the body of POST /Textbooks and PUT /Textbooks/{id}.
// TotalChapters and IsActive are only sent on update.
type TextbookInput struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	CoverImageUrl   string   `json:"coverImageUrl"`
	Category        string   `json:"category"`
	Language        string   `json:"language"`
	PublicationYear *int     `json:"publicationYear"`
	Isbn            string   `json:"isbn"`
	Rating          *float64 `json:"rating"`
	Status          string   `json:"status"`
	Tags            string   `json:"tags"`
	Level           string   `json:"level"`
	Year            string   `json:"year"`
	PageCount       *int     `json:"pageCount"`
	TotalChapters   *int     `json:"totalChapters,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

func (t *Textbook) Matches(term string) bool {
	return MatchAny(term, t.Title, t.Author, t.Category, t.Level, t.Tags)
}

var (
	TextbookLevels   = []string{"UG", "PG", "Reference"}
	TextbookStatuses = []string{"completed", "in-progress", "planned"}
)
