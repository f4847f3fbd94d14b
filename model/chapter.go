package model

import "sort"

// Chapter is shared by book chapters and textbook chapters; exactly one of
// BookId and TextbookId is set on records coming from the API.
type Chapter struct {
	Id                 int64  `json:"id"`
	BookId             int64  `json:"bookId,omitempty"`
	TextbookId         int64  `json:"textbookId,omitempty"`
	ChapterNumber      int    `json:"chapterNumber"`
	ChapterTitle       string `json:"chapterTitle"`
	ChapterSubtitle    string `json:"chapterSubtitle"`
	ContentHtml        string `json:"contentHtml"`
	Summary            string `json:"summary"`
	WordCount          *int   `json:"wordCount"`
	ReadingTimeMinutes *int   `json:"readingTimeMinutes"`
	DisplayOrder       *int   `json:"displayOrder"`
}

type ChapterInput struct {
	ChapterNumber      int    `json:"chapterNumber"`
	ChapterTitle       string `json:"chapterTitle"`
	ChapterSubtitle    string `json:"chapterSubtitle"`
	ContentHtml        string `json:"contentHtml"`
	Summary            string `json:"summary"`
	WordCount          *int   `json:"wordCount"`
	ReadingTimeMinutes *int   `json:"readingTimeMinutes"`
	DisplayOrder       *int   `json:"displayOrder"`
}

// SortChapters orders chapters by chapter number in place, keeping the API
// order for equal numbers.
func SortChapters(chapters []*Chapter) {
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ChapterNumber < chapters[j].ChapterNumber
	})
}
