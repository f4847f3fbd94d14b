package console

import (
	"strconv"

	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
)

// fieldSet collects form fields, attaching the validation message for each.
type fieldSet struct {
	errs   form.Errors
	fields []template.Field
}

func (fs *fieldSet) add(f template.Field) {
	f.Error = fs.errs[f.Name]
	fs.fields = append(fs.fields, f)
}

func (fs *fieldSet) text(name, label, value string, required bool) {
	fs.add(template.Field{Name: name, Label: label, Value: value, Required: required})
}

func (fs *fieldSet) textarea(name, label, value, rows string, required bool) {
	fs.add(template.Field{Name: name, Label: label, Type: "textarea", Value: value, Rows: rows, Required: required, Wide: true})
}

func (fs *fieldSet) number(name, label, value, min, max, step string) {
	fs.add(template.Field{Name: name, Label: label, Type: "number", Value: value, Min: min, Max: max, Step: step})
}

func (fs *fieldSet) selectField(name, label, value string, opts []template.Option, required bool) {
	fs.add(template.Field{Name: name, Label: label, Type: "select", Value: value, Options: opts, Required: required})
}

func withBlank(label string, opts []template.Option) []template.Option {
	return append([]template.Option{{Value: "", Label: label}}, opts...)
}

func bookFields(f *form.BookForm, errs form.Errors) []template.Field {
	fs := &fieldSet{errs: errs}
	fs.text("title", "Title", f.Title, true)
	fs.text("author", "Author", f.Author, true)
	fs.textarea("description", "Description", f.Description, "4", false)
	fs.add(template.Field{Name: "coverImageUrl", Label: "Cover Image URL", Type: "url", Value: f.CoverImageUrl, Placeholder: "https://example.com/image.jpg"})
	fs.text("category", "Category", f.Category, false)
	fs.add(template.Field{Name: "language", Label: "Language", Value: f.Language, Placeholder: "e.g., Sanskrit, English"})
	fs.number("publicationYear", "Publication Year", f.PublicationYear, "1", "9999", "")
	fs.text("isbn", "ISBN", f.Isbn, false)
	return fs.fields
}

func chapterFields(f *form.ChapterForm, errs form.Errors) []template.Field {
	fs := &fieldSet{errs: errs}
	fs.add(template.Field{Name: "chapterNumber", Label: "Chapter Number", Type: "number", Value: f.ChapterNumber, Min: "1", Required: true})
	fs.text("chapterTitle", "Chapter Title", f.ChapterTitle, true)
	fs.text("chapterSubtitle", "Chapter Subtitle", f.ChapterSubtitle, false)
	fs.add(template.Field{
		Name:     "contentHtml",
		Label:    "Content (HTML)",
		Type:     "textarea",
		Value:    f.ContentHtml,
		Rows:     "14",
		Required: true,
		Wide:     true,
		Help:     "Rendered as-is in the chapter preview.",
	})
	fs.textarea("summary", "Summary", f.Summary, "3", false)
	fs.number("wordCount", "Word Count", f.WordCount, "0", "", "")
	fs.number("readingTimeMinutes", "Reading Time (minutes)", f.ReadingTimeMinutes, "0", "", "")
	fs.number("displayOrder", "Display Order", f.DisplayOrder, "", "", "")
	return fs.fields
}

func textbookFields(f *form.TextbookForm, errs form.Errors) []template.Field {
	fs := &fieldSet{errs: errs}
	fs.text("title", "Title", f.Title, true)
	fs.text("author", "Author", f.Author, true)
	fs.textarea("description", "Description", f.Description, "4", false)
	fs.add(template.Field{Name: "coverImageUrl", Label: "Cover Image URL", Type: "url", Value: f.CoverImageUrl})
	fs.text("category", "Category", f.Category, false)
	fs.text("language", "Language", f.Language, false)
	fs.number("publicationYear", "Publication Year", f.PublicationYear, "1", "9999", "")
	fs.text("isbn", "ISBN", f.Isbn, false)
	fs.selectField("level", "Level", f.Level, withBlank("Select level", options(model.TextbookLevels)), false)
	fs.add(template.Field{Name: "year", Label: "Year", Value: f.Year, Placeholder: "e.g., 1st Year, Final Year"})
	fs.selectField("status", "Status", f.Status, options(model.TextbookStatuses), false)
	fs.number("rating", "Rating", f.Rating, "0", "5", "0.1")
	fs.number("pageCount", "Page Count", f.PageCount, "1", "10000", "")
	fs.add(template.Field{Name: "tags", Label: "Tags", Value: f.Tags, Placeholder: "Comma-separated tags", Wide: true})
	return fs.fields
}

func paperFields(f *form.ResearchPaperForm, errs form.Errors) []template.Field {
	fs := &fieldSet{errs: errs}
	fs.text("title", "Title", f.Title, true)
	fs.add(template.Field{Name: "authors", Label: "Authors", Value: f.Authors, Required: true, Help: "Separate multiple authors with commas"})
	fs.text("institution", "Institution", f.Institution, true)
	fs.add(template.Field{Name: "year", Label: "Year", Type: "number", Value: f.Year, Min: "1900", Max: "2100", Required: true})
	fs.selectField("category", "Category", f.Category, options(model.PaperCategories), true)
	fs.textarea("abstract", "Abstract", f.Abstract, "5", true)
	fs.textarea("contentHtml", "Full Content (HTML)", f.ContentHtml, "10", false)
	fs.add(template.Field{Name: "keywords", Label: "Keywords", Value: f.Keywords, Help: "Separate keywords with commas", Wide: true})
	fs.number("pages", "Pages", f.Pages, "0", "10000", "")
	fs.text("doi", "DOI", f.Doi, false)
	fs.text("journalName", "Journal Name", f.JournalName, false)
	fs.text("volume", "Volume", f.Volume, false)
	fs.text("issueNumber", "Issue Number", f.IssueNumber, false)
	fs.add(template.Field{Name: "publicationDate", Label: "Publication Date", Type: "date", Value: f.PublicationDate})
	fs.add(template.Field{Name: "pdfUrl", Label: "PDF URL", Type: "url", Value: f.PdfUrl})
	fs.add(template.Field{Name: "coverImageUrl", Label: "Cover Image URL", Type: "url", Value: f.CoverImageUrl})
	fs.number("rating", "Rating", f.Rating, "0", "5", "0.1")
	fs.selectField("status", "Status", f.Status, options(model.PublicationStatuses), false)
	fs.add(template.Field{Name: "isFeatured", Label: "Featured", Type: "checkbox", Checked: f.IsFeatured})
	return fs.fields
}

func thesisFields(f *form.ThesisForm, errs form.Errors) []template.Field {
	fs := &fieldSet{errs: errs}
	fs.text("title", "Title", f.Title, true)
	fs.text("author", "Author", f.Author, true)
	fs.add(template.Field{Name: "guideNames", Label: "Guide Names", Value: f.GuideNames, Help: "Separate multiple guides with commas"})
	fs.text("institution", "Institution", f.Institution, true)
	fs.text("department", "Department", f.Department, false)
	fs.add(template.Field{Name: "year", Label: "Year", Type: "number", Value: f.Year, Min: "1900", Max: "2100", Required: true})
	fs.selectField("category", "Category", f.Category, options(model.ThesisCategories), true)
	fs.selectField("thesisType", "Thesis Type", f.ThesisType, options(model.ThesisTypes), false)
	fs.textarea("abstract", "Abstract", f.Abstract, "5", true)
	fs.textarea("contentHtml", "Full Content (HTML)", f.ContentHtml, "10", false)
	fs.add(template.Field{Name: "keywords", Label: "Keywords", Value: f.Keywords, Help: "Separate keywords with commas", Wide: true})
	fs.number("pages", "Pages", f.Pages, "0", "10000", "")
	fs.add(template.Field{Name: "submissionDate", Label: "Submission Date", Type: "date", Value: f.SubmissionDate})
	fs.add(template.Field{Name: "approvalDate", Label: "Approval Date", Type: "date", Value: f.ApprovalDate})
	fs.add(template.Field{Name: "defenseDate", Label: "Defense Date", Type: "date", Value: f.DefenseDate})
	fs.selectField("grade", "Grade", f.Grade, withBlank("Select grade", options(model.ThesisGrades)), false)
	fs.text("universityRegistrationNumber", "University Registration Number", f.UniversityRegistrationNumber, false)
	fs.add(template.Field{Name: "pdfUrl", Label: "PDF URL", Type: "url", Value: f.PdfUrl})
	fs.add(template.Field{Name: "coverImageUrl", Label: "Cover Image URL", Type: "url", Value: f.CoverImageUrl})
	fs.number("rating", "Rating", f.Rating, "0", "5", "0.1")
	fs.selectField("status", "Status", f.Status, options(model.PublicationStatuses), false)
	fs.add(template.Field{Name: "isFeatured", Label: "Featured", Type: "checkbox", Checked: f.IsFeatured})
	return fs.fields
}

func contactStatusOptions() []template.Option {
	return []template.Option{
		{Value: model.ContactPending, Label: "Pending"},
		{Value: model.ContactInProgress, Label: "In Progress"},
		{Value: model.ContactResolved, Label: "Resolved"},
		{Value: model.ContactClosed, Label: "Closed"},
	}
}

func contactTypeOptions() []template.Option {
	out := make([]template.Option, 0, len(model.ContactTypes))
	for _, t := range model.ContactTypes {
		out = append(out, template.Option{Value: t.Value, Label: t.Label})
	}
	return out
}

// panel is the create form when id is zero and the edit form otherwise.
func panel(entity, base string, id int64, fields []template.Field, apiErr string) *template.Form {
	f := &template.Form{
		Title:  "Add New " + entity,
		Action: base,
		Submit: "Create " + entity,
		Cancel: base,
		Error:  apiErr,
		Fields: fields,
	}
	if id != 0 {
		f.Title = "Edit " + entity
		f.Action = base + "/" + strconv.FormatInt(id, 10)
		f.Submit = "Update " + entity
	}
	return f
}
