package model

type Thesis struct {
	Id                           int64      `json:"id"`
	Title                        string     `json:"title"`
	Author                       string     `json:"author"`
	GuideNames                   StringList `json:"guideNames"`
	Institution                  string     `json:"institution"`
	Department                   string     `json:"department"`
	Year                         int        `json:"year"`
	Category                     string     `json:"category"`
	ThesisType                   string     `json:"thesisType"`
	Abstract                     string     `json:"abstract"`
	ContentHtml                  string     `json:"contentHtml"`
	Keywords                     StringList `json:"keywords"`
	Pages                        int        `json:"pages"`
	SubmissionDate               string     `json:"submissionDate"`
	ApprovalDate                 string     `json:"approvalDate"`
	DefenseDate                  string     `json:"defenseDate"`
	Grade                        string     `json:"grade"`
	PdfUrl                       string     `json:"pdfUrl"`
	CoverImageUrl                string     `json:"coverImageUrl"`
	UniversityRegistrationNumber string     `json:"universityRegistrationNumber"`
	Rating                       float64    `json:"rating"`
	Status                       string     `json:"status"`
	IsFeatured                   bool       `json:"isFeatured"`
	ViewCount                    int        `json:"viewCount"`
}

// ThesisInput is the body of POST /Thesis and PUT /Thesis/{id}.
type ThesisInput struct {
	Title                        string  `json:"title"`
	Author                       string  `json:"author"`
	GuideNames                   *string `json:"guideNames"`
	Institution                  string  `json:"institution"`
	Department                   *string `json:"department"`
	Year                         int     `json:"year"`
	Category                     string  `json:"category"`
	ThesisType                   *string `json:"thesisType"`
	Abstract                     string  `json:"abstract"`
	ContentHtml                  *string `json:"contentHtml"`
	Keywords                     *string `json:"keywords"`
	Pages                        int     `json:"pages"`
	SubmissionDate               *string `json:"submissionDate"`
	ApprovalDate                 *string `json:"approvalDate"`
	DefenseDate                  *string `json:"defenseDate"`
	Grade                        *string `json:"grade"`
	PdfUrl                       *string `json:"pdfUrl"`
	CoverImageUrl                *string `json:"coverImageUrl"`
	UniversityRegistrationNumber *string `json:"universityRegistrationNumber"`
	Rating                       float64 `json:"rating"`
	Status                       string  `json:"status"`
	IsFeatured                   bool    `json:"isFeatured"`
}

func (t *Thesis) Matches(term string) bool {
	return MatchAny(term, t.Title, t.Author, t.Institution, t.Category)
}

var (
	ThesisCategories = []string{"PhD Thesis", "MS Thesis", "MD Thesis", "Post-Doctoral"}
	ThesisTypes      = []string{"Dissertation", "Thesis", "Research Project"}
	ThesisGrades     = []string{"Excellent", "Very Good", "Good", "Pass"}
)

func SummarizeTheses(theses []*Thesis) PublicationStats {
	stats := PublicationStats{Total: len(theses)}
	for _, t := range theses {
		stats.add(t.IsFeatured, t.Status, t.ViewCount)
	}
	return stats
}
