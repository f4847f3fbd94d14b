package model

type ResearchPaper struct {
	Id              int64      `json:"id"`
	Title           string     `json:"title"`
	Authors         StringList `json:"authors"`
	Institution     string     `json:"institution"`
	Year            int        `json:"year"`
	Category        string     `json:"category"`
	Abstract        string     `json:"abstract"`
	ContentHtml     string     `json:"contentHtml"`
	Keywords        StringList `json:"keywords"`
	Pages           int        `json:"pages"`
	Doi             string     `json:"doi"`
	JournalName     string     `json:"journalName"`
	Volume          string     `json:"volume"`
	IssueNumber     string     `json:"issueNumber"`
	PublicationDate string     `json:"publicationDate"`
	PdfUrl          string     `json:"pdfUrl"`
	CoverImageUrl   string     `json:"coverImageUrl"`
	Rating          float64    `json:"rating"`
	Status          string     `json:"status"`
	IsFeatured      bool       `json:"isFeatured"`
	ViewCount       int        `json:"viewCount"`
}

// ResearchPaperInput is the body of POST /ResearchPapers and
// PUT /ResearchPapers/{id}. Authors and Keywords are comma-separated.
type ResearchPaperInput struct {
	Title           string  `json:"title"`
	Authors         string  `json:"authors"`
	Institution     string  `json:"institution"`
	Year            int     `json:"year"`
	Category        string  `json:"category"`
	Abstract        string  `json:"abstract"`
	ContentHtml     *string `json:"contentHtml"`
	Keywords        *string `json:"keywords"`
	Pages           int     `json:"pages"`
	Doi             *string `json:"doi"`
	JournalName     *string `json:"journalName"`
	Volume          *string `json:"volume"`
	IssueNumber     *string `json:"issueNumber"`
	PublicationDate *string `json:"publicationDate"`
	PdfUrl          *string `json:"pdfUrl"`
	CoverImageUrl   *string `json:"coverImageUrl"`
	Rating          float64 `json:"rating"`
	Status          string  `json:"status"`
	IsFeatured      bool    `json:"isFeatured"`
}

func (p *ResearchPaper) Matches(term string) bool {
	if MatchAny(term, p.Title, p.Institution, p.Category) {
		return true
	}
	return MatchAny(term, p.Authors...)
}

var PaperCategories = []string{"research-paper", "clinical-trial", "case-study", "review-article"}

// PublicationStatuses applies to research papers and theses.
var PublicationStatuses = []string{"published", "under-review", "draft"}

type PublicationStats struct {
	Total      int
	Featured   int
	Published  int
	TotalViews int
}

func SummarizePapers(papers []*ResearchPaper) PublicationStats {
	stats := PublicationStats{Total: len(papers)}
	for _, p := range papers {
		stats.add(p.IsFeatured, p.Status, p.ViewCount)
	}
	return stats
}

func (s *PublicationStats) add(featured bool, status string, views int) {
	if featured {
		s.Featured++
	}
	if status == "published" {
		s.Published++
	}
	s.TotalViews += views
}
