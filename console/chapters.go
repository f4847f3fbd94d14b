package console

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"vedic-admin/api"
	"vedic-admin/audit"
	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
	"vedic-admin/text"
)

// parent is the book or textbook that owns a set of chapters.
type parent struct {
	Id            int64
	Title         string
	Author        string
	TotalChapters int
}

// chapterScope wires the chapter pages to one kind of parent. Book chapters
// and textbook chapters share everything else.
type chapterScope struct {
	nav        string
	index      string
	parentBase string
	noun       string
	auditKind  string
	title      string
	subtitle   string
	noParent   string

	list   func(ctx context.Context) ([]parent, error)
	load   func(ctx context.Context, id int64) (parent, []*model.Chapter, error)
	get    func(ctx context.Context, id int64) (*model.Chapter, error)
	create func(ctx context.Context, parentId int64, in model.ChapterInput) (*model.Chapter, error)
	update func(ctx context.Context, id int64, in model.ChapterInput) (*model.Chapter, error)
	remove func(ctx context.Context, id int64) error
}

func (sc *chapterScope) base(parentId int64) string {
	return fmt.Sprintf("%s/%d/chapters", sc.parentBase, parentId)
}

func (s *Server) bookChapters() *chapterScope {
	return &chapterScope{
		nav:        "chapters",
		index:      "/chapters",
		parentBase: "/books",
		noun:       "book",
		auditKind:  "chapter",
		title:      "Chapters Management",
		subtitle:   "Manage chapters for your books",
		noParent:   "Please select a book first",
		list: func(ctx context.Context) ([]parent, error) {
			books, err := s.api.ListBooks(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]parent, 0, len(books))
			for _, b := range books {
				out = append(out, parent{Id: b.Id, Title: b.Title, Author: b.Author, TotalChapters: b.TotalChapters})
			}
			return out, nil
		},
		load: func(ctx context.Context, id int64) (parent, []*model.Chapter, error) {
			b, err := s.api.GetBookWithChapters(ctx, id)
			if err != nil {
				return parent{}, nil, err
			}
			return parent{Id: b.Id, Title: b.Title, Author: b.Author, TotalChapters: b.TotalChapters}, b.Chapters, nil
		},
		get:    s.api.GetChapter,
		create: s.api.CreateChapter,
		update: s.api.UpdateChapter,
		remove: s.api.DeleteChapter,
	}
}

func (s *Server) textbookChapters() *chapterScope {
	return &chapterScope{
		nav:        "textbook-chapters",
		index:      "/textbook-chapters",
		parentBase: "/textbooks",
		noun:       "textbook",
		auditKind:  "textbook-chapter",
		title:      "Textbook Chapters Management",
		subtitle:   "Manage chapters for your textbooks",
		noParent:   "Please select a textbook first",
		list: func(ctx context.Context) ([]parent, error) {
			textbooks, err := s.api.ListTextbooks(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]parent, 0, len(textbooks))
			for _, t := range textbooks {
				out = append(out, parent{Id: t.Id, Title: t.Title, Author: t.Author, TotalChapters: t.TotalChapters})
			}
			return out, nil
		},
		load: func(ctx context.Context, id int64) (parent, []*model.Chapter, error) {
			t, err := s.api.GetTextbookWithChapters(ctx, id)
			if err != nil {
				return parent{}, nil, err
			}
			return parent{Id: t.Id, Title: t.Title, Author: t.Author, TotalChapters: t.TotalChapters}, t.Chapters, nil
		},
		get:    s.api.GetTextbookChapter,
		create: s.api.CreateTextbookChapter,
		update: s.api.UpdateTextbookChapter,
		remove: s.api.DeleteTextbookChapter,
	}
}

func (s *Server) chapterRoutes(mux *http.ServeMux) {
	for _, sc := range []*chapterScope{s.bookChapters(), s.textbookChapters()} {
		h := &chapterHandlers{s: s, sc: sc}
		mux.HandleFunc("GET "+sc.index, h.index)
		mux.HandleFunc("GET "+sc.index+"/new", h.missingParent)
		mux.HandleFunc("POST "+sc.index, h.missingParent)
		mux.HandleFunc("GET "+sc.parentBase+"/{id}/chapters", h.list)
		mux.HandleFunc("GET "+sc.parentBase+"/{id}/chapters/new", h.newChapter)
		mux.HandleFunc("POST "+sc.parentBase+"/{id}/chapters", h.create)
		mux.HandleFunc("GET "+sc.parentBase+"/{id}/chapters/{chapterId}", h.preview)
		mux.HandleFunc("GET "+sc.parentBase+"/{id}/chapters/{chapterId}/edit", h.edit)
		mux.HandleFunc("POST "+sc.parentBase+"/{id}/chapters/{chapterId}", h.update)
		mux.HandleFunc("GET "+sc.parentBase+"/{id}/chapters/{chapterId}/delete", h.confirmDelete)
		mux.HandleFunc("POST "+sc.parentBase+"/{id}/chapters/{chapterId}/delete", h.deleteChapter)
	}
}

type chapterHandlers struct {
	s  *Server
	sc *chapterScope
}

// chapterView is what one render of the chapter page needs besides the
// selected parent.
type chapterView struct {
	status  int
	flash   *template.Flash
	form    *template.Form
	preview *template.Preview
}

func (h *chapterHandlers) panel(parentId int64, f *form.ChapterForm, errs form.Errors, id int64, apiErr string) *template.Form {
	return panel("Chapter", h.sc.base(parentId), id, chapterFields(f, errs), apiErr)
}

// index shows the parent picked in the selector, or the first parent.
func (h *chapterHandlers) index(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.URL.Query().Get(h.sc.noun), 10, 64)
	h.show(w, r, id, chapterView{status: http.StatusOK})
}

func (h *chapterHandlers) missingParent(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusUnprocessableEntity
	}
	h.show(w, r, 0, chapterView{
		status: status,
		flash:  &template.Flash{Kind: "error", Message: h.sc.noParent},
	})
}

func (h *chapterHandlers) list(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.show(w, r, id, chapterView{status: http.StatusOK})
}

func (h *chapterHandlers) newChapter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.show(w, r, id, chapterView{
		status: http.StatusOK,
		form:   h.panel(id, &form.ChapterForm{}, nil, 0, ""),
	})
}

func (h *chapterHandlers) ids(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	parentId, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return 0, 0, false
	}
	chapterId, ok := pathID(r, "chapterId")
	if !ok {
		http.NotFound(w, r)
		return 0, 0, false
	}
	return parentId, chapterId, true
}

func (h *chapterHandlers) preview(w http.ResponseWriter, r *http.Request) {
	parentId, chapterId, ok := h.ids(w, r)
	if !ok {
		return
	}
	c, err := h.sc.get(r.Context(), chapterId)
	if err != nil {
		h.s.renderError(w, r, h.s.page(w, r, h.sc.title, "", h.sc.nav), err, "Failed to load chapter for preview", h.sc.base(parentId))
		return
	}
	stats := text.HTMLStats(c.ContentHtml)
	base := h.sc.base(parentId)
	h.show(w, r, parentId, chapterView{
		status: http.StatusOK,
		preview: &template.Preview{
			Title:    fmt.Sprintf("Chapter %d: %s", c.ChapterNumber, c.ChapterTitle),
			Subtitle: c.ChapterSubtitle,
			Meta: []template.Stat{
				{Label: "Words", Value: count(stats.Words)},
				{Label: "Reading Time", Value: fmt.Sprintf("%d min", stats.Minutes)},
			},
			HTML: c.ContentHtml,
			Actions: []template.Action{
				{Label: "Edit", Href: fmt.Sprintf("%s/%d/edit", base, chapterId)},
				{Label: "Close", Href: base},
			},
			Close: base,
		},
	})
}

func (h *chapterHandlers) edit(w http.ResponseWriter, r *http.Request) {
	parentId, chapterId, ok := h.ids(w, r)
	if !ok {
		return
	}
	c, err := h.sc.get(r.Context(), chapterId)
	if err != nil {
		h.s.renderError(w, r, h.s.page(w, r, h.sc.title, "", h.sc.nav), err, "Failed to load chapter details", h.sc.base(parentId))
		return
	}
	h.show(w, r, parentId, chapterView{
		status: http.StatusOK,
		form:   h.panel(parentId, form.ChapterFormFrom(c), nil, chapterId, ""),
	})
}

func (h *chapterHandlers) create(w http.ResponseWriter, r *http.Request) {
	parentId, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := &form.ChapterForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		h.show(w, r, parentId, chapterView{
			status: http.StatusUnprocessableEntity,
			form:   h.panel(parentId, f, errs, 0, ""),
		})
		return
	}
	c, err := h.sc.create(r.Context(), parentId, f.Input())
	if err != nil {
		h.show(w, r, parentId, chapterView{
			status: http.StatusBadGateway,
			form:   h.panel(parentId, f, nil, 0, api.Message(err, "Failed to save chapter")),
		})
		return
	}
	h.s.record(r, audit.ActionCreate, h.sc.auditKind, c.Id, f.ChapterTitle, fmt.Sprintf("%s %d", h.sc.noun, parentId))
	h.s.redirect(w, r, h.sc.base(parentId), success(`Chapter "%s" created successfully`, f.ChapterTitle))
}

func (h *chapterHandlers) update(w http.ResponseWriter, r *http.Request) {
	parentId, chapterId, ok := h.ids(w, r)
	if !ok {
		return
	}
	f := &form.ChapterForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		h.show(w, r, parentId, chapterView{
			status: http.StatusUnprocessableEntity,
			form:   h.panel(parentId, f, errs, chapterId, ""),
		})
		return
	}
	if _, err := h.sc.update(r.Context(), chapterId, f.Input()); err != nil {
		h.show(w, r, parentId, chapterView{
			status: http.StatusBadGateway,
			form:   h.panel(parentId, f, nil, chapterId, api.Message(err, "Failed to save chapter")),
		})
		return
	}
	h.s.record(r, audit.ActionUpdate, h.sc.auditKind, chapterId, f.ChapterTitle, fmt.Sprintf("%s %d", h.sc.noun, parentId))
	h.s.redirect(w, r, h.sc.base(parentId), success(`Chapter "%s" updated successfully`, f.ChapterTitle))
}

func (h *chapterHandlers) confirmDelete(w http.ResponseWriter, r *http.Request) {
	parentId, chapterId, ok := h.ids(w, r)
	if !ok {
		return
	}
	p := h.s.page(w, r, "Delete Chapter", "", h.sc.nav)
	c, err := h.sc.get(r.Context(), chapterId)
	if err != nil {
		h.s.renderError(w, r, p, err, "Failed to load chapter details", h.sc.base(parentId))
		return
	}
	h.s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: `Are you sure you want to delete chapter "` + c.ChapterTitle + `"? This action cannot be undone.`,
		Title:   c.ChapterTitle,
		Action:  fmt.Sprintf("%s/%d/delete", h.sc.base(parentId), chapterId),
		Submit:  "Delete Chapter",
		Cancel:  h.sc.base(parentId),
	}))
}

func (h *chapterHandlers) deleteChapter(w http.ResponseWriter, r *http.Request) {
	parentId, chapterId, ok := h.ids(w, r)
	if !ok {
		return
	}
	title := postedTitle(r, chapterId)
	if err := h.sc.remove(r.Context(), chapterId); err != nil {
		h.s.redirect(w, r, h.sc.base(parentId), failure(err, "Failed to delete chapter"))
		return
	}
	h.s.record(r, audit.ActionDelete, h.sc.auditKind, chapterId, title, fmt.Sprintf("%s %d", h.sc.noun, parentId))
	h.s.redirect(w, r, h.sc.base(parentId), success(`Chapter "%s" deleted successfully`, title))
}

// show renders the parent selector and the chapters of parentId, or of the
// first parent when parentId is zero.
func (h *chapterHandlers) show(w http.ResponseWriter, r *http.Request, parentId int64, v chapterView) {
	sc := h.sc
	p := h.s.page(w, r, sc.title, sc.subtitle, sc.nav)
	if v.flash != nil {
		p.Flash = v.flash
	}
	parents, err := sc.list(r.Context())
	if err != nil {
		h.s.renderError(w, r, p, err, "Failed to load "+sc.noun+"s", "/")
		return
	}
	if parentId == 0 && len(parents) > 0 {
		parentId = parents[0].Id
	}

	selector := template.Select{
		Name:    sc.noun,
		Label:   "Select " + capitalize(sc.noun),
		Value:   strconv.FormatInt(parentId, 10),
		Options: []template.Option{{Value: "", Label: "-- Select a " + capitalize(sc.noun) + " --"}},
	}
	for _, pr := range parents {
		selector.Options = append(selector.Options, template.Option{
			Value: strconv.FormatInt(pr.Id, 10),
			Label: fmt.Sprintf("%s by %s (%d chapters)", pr.Title, pr.Author, pr.TotalChapters),
		})
	}

	page := template.ListPage{
		Page:    p,
		Search:  &template.Search{Action: sc.index, Selects: []template.Select{selector}, SelectOnly: true},
		Form:    v.form,
		Preview: v.preview,
	}
	if parentId == 0 {
		page.Heading = "Chapters"
		page.Empty = template.EmptyState{
			Title:   "No " + sc.noun + "s yet",
			Message: "Add a " + sc.noun + " before adding chapters.",
			Action:  &template.Action{Label: "Add " + capitalize(sc.noun), Href: sc.parentBase + "/new", Tone: "primary"},
		}
		h.s.render(w, r, v.status, template.ListView(page))
		return
	}

	owner, chapters, err := sc.load(r.Context(), parentId)
	if err != nil {
		h.s.renderError(w, r, p, err, "Failed to load chapters", sc.index)
		return
	}
	model.SortChapters(chapters)
	base := sc.base(parentId)

	rows := make([]template.Row, 0, len(chapters))
	for _, c := range chapters {
		chapterBase := fmt.Sprintf("%s/%d", base, c.Id)
		reading := "-"
		if c.ReadingTimeMinutes != nil && *c.ReadingTimeMinutes != 0 {
			reading = fmt.Sprintf("%d min", *c.ReadingTimeMinutes)
		}
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				{Text: strconv.Itoa(c.ChapterNumber), Strong: true},
				titleCell(c.ChapterTitle, c.Summary),
				{Text: dash(c.ChapterSubtitle)},
				{Text: optionalCount(c.WordCount)},
				{Text: reading},
			},
			Actions: []template.Action{
				{Label: "Preview", Href: chapterBase, Title: "Preview Chapter"},
				{Label: "Edit", Href: chapterBase + "/edit", Title: "Edit Chapter"},
				{Label: "Delete", Href: chapterBase + "/delete", Tone: "danger", Title: "Delete Chapter"},
			},
		})
	}

	add := template.Action{Label: "Add Chapter", Href: base + "/new", Tone: "primary"}
	first := add
	first.Label = "Add First Chapter"
	page.Heading = fmt.Sprintf("%s by %s (%d chapters)", owner.Title, owner.Author, len(chapters))
	page.HeaderActions = []template.Action{
		{Label: "Back to " + capitalize(sc.noun) + "s", Href: sc.parentBase},
		add,
	}
	page.Table = template.Table{
		Columns: []string{"Ch. #", "Title", "Subtitle", "Word Count", "Reading Time", "Actions"},
		Rows:    rows,
	}
	page.Empty = template.EmptyState{
		Title:   "No chapters yet",
		Message: "Start by adding the first chapter to this " + sc.noun + ".",
		Action:  &first,
	}
	h.s.render(w, r, v.status, template.ListView(page))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
