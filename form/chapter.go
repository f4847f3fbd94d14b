package form

import "vedic-admin/model"

// ChapterForm serves book chapters and textbook chapters alike.
type ChapterForm struct {
	ChapterNumber      string `form:"chapterNumber" validate:"notblank,minint=1"`
	ChapterTitle       string `form:"chapterTitle" validate:"notblank,max=500"`
	ChapterSubtitle    string `form:"chapterSubtitle" validate:"max=500"`
	ContentHtml        string `form:"contentHtml" validate:"notblank"`
	Summary            string `form:"summary" validate:"max=2000"`
	WordCount          string `form:"wordCount"`
	ReadingTimeMinutes string `form:"readingTimeMinutes"`
	DisplayOrder       string `form:"displayOrder"`
}

var chapterMessages = map[string]string{
	"chapterNumber.notblank": "Chapter number is required",
	"chapterNumber.minint":   "Chapter number must be positive",
	"chapterTitle.notblank":  "Chapter title is required",
	"chapterTitle.max":       "Chapter title cannot exceed 500 characters",
	"chapterSubtitle.max":    "Chapter subtitle cannot exceed 500 characters",
	"contentHtml.notblank":   "Content HTML is required",
	"summary.max":            "Summary cannot exceed 2000 characters",
}

func ChapterFormFrom(c *model.Chapter) *ChapterForm {
	number := ""
	if c.ChapterNumber != 0 {
		number = itoa(c.ChapterNumber)
	}
	return &ChapterForm{
		ChapterNumber:      number,
		ChapterTitle:       c.ChapterTitle,
		ChapterSubtitle:    c.ChapterSubtitle,
		ContentHtml:        c.ContentHtml,
		Summary:            c.Summary,
		WordCount:          intText(c.WordCount),
		ReadingTimeMinutes: intText(c.ReadingTimeMinutes),
		DisplayOrder:       intText(c.DisplayOrder),
	}
}

func (f *ChapterForm) Validate() Errors {
	return check(f, chapterMessages)
}

func (f *ChapterForm) Input() model.ChapterInput {
	return model.ChapterInput{
		ChapterNumber:      intOrZero(f.ChapterNumber),
		ChapterTitle:       f.ChapterTitle,
		ChapterSubtitle:    f.ChapterSubtitle,
		ContentHtml:        f.ContentHtml,
		Summary:            f.Summary,
		WordCount:          optionalInt(f.WordCount),
		ReadingTimeMinutes: optionalInt(f.ReadingTimeMinutes),
		DisplayOrder:       optionalInt(f.DisplayOrder),
	}
}
