package model

type Book struct {
	Id              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	CoverImageUrl   string `json:"coverImageUrl"`
	Category        string `json:"category"`
	Language        string `json:"language"`
	PublicationYear *int   `json:"publicationYear"`
	Isbn            string `json:"isbn"`
	TotalChapters   int    `json:"totalChapters"`
}

type BookWithChapters struct {
	Book
	Chapters []*Chapter `json:"chapters"`
}

// BookInput is the body of POST /Books and PUT /Books/{id}.
type BookInput struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	CoverImageUrl   string `json:"coverImageUrl"`
	Category        string `json:"category"`
	Language        string `json:"language"`
	PublicationYear *int   `json:"publicationYear"`
	Isbn            string `json:"isbn"`
}

func (b *Book) Matches(term string) bool {
	return MatchAny(term, b.Title, b.Author, b.Category)
}

// BookStats is what the dashboard shows about the book catalogue.
type BookStats struct {
	TotalBooks    int
	TotalChapters int
	Recent        []*Book
}

func SummarizeBooks(books []*Book) BookStats {
	stats := BookStats{TotalBooks: len(books)}
	for _, b := range books {
		stats.TotalChapters += b.TotalChapters
	}
	n := min(len(books), 5)
	stats.Recent = books[:n]
	return stats
}
