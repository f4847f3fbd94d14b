package console

import (
	"fmt"
	"net/http"

	"vedic-admin/api"
	"vedic-admin/audit"
	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) textbookRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /textbooks", s.handleTextbooks)
	mux.HandleFunc("GET /textbooks/new", s.handleNewTextbook)
	mux.HandleFunc("POST /textbooks", s.handleCreateTextbook)
	mux.HandleFunc("GET /textbooks/{id}/edit", s.handleEditTextbook)
	mux.HandleFunc("POST /textbooks/{id}", s.handleUpdateTextbook)
	mux.HandleFunc("GET /textbooks/{id}/delete", s.handleConfirmDeleteTextbook)
	mux.HandleFunc("POST /textbooks/{id}/delete", s.handleDeleteTextbook)
}

func textbookPanel(f *form.TextbookForm, errs form.Errors, id int64, apiErr string) *template.Form {
	return panel("Textbook", "/textbooks", id, textbookFields(f, errs), apiErr)
}

func (s *Server) handleTextbooks(w http.ResponseWriter, r *http.Request) {
	var open *template.Form
	if r.URL.Query().Get("action") == "new" {
		open = textbookPanel(form.NewTextbookForm(), nil, 0, "")
	}
	s.showTextbooks(w, r, http.StatusOK, open)
}

func (s *Server) handleNewTextbook(w http.ResponseWriter, r *http.Request) {
	s.showTextbooks(w, r, http.StatusOK, textbookPanel(form.NewTextbookForm(), nil, 0, ""))
}

func (s *Server) handleEditTextbook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, "Textbooks Management", "", "textbooks"), "Textbook not found", "/textbooks")
		return
	}
	tb, err := s.api.GetTextbook(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, "Textbooks Management", "", "textbooks"), err, "Failed to load textbook", "/textbooks")
		return
	}
	s.showTextbooks(w, r, http.StatusOK, textbookPanel(form.TextbookFormFrom(tb), nil, id, ""))
}

func textbookRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return rating(*r)
}

func (s *Server) showTextbooks(w http.ResponseWriter, r *http.Request, status int, open *template.Form) {
	p := s.page(w, r, "Textbooks Management", "Manage textbooks for students and researchers", "textbooks")
	textbooks, err := s.api.ListTextbooks(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load textbooks", "/")
		return
	}
	q := r.URL.Query().Get("q")
	textbooks = model.Filter(textbooks, q)

	rows := make([]template.Row, 0, len(textbooks))
	for _, t := range textbooks {
		base := fmt.Sprintf("/textbooks/%d", t.Id)
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				titleCell(t.Title, t.Year),
				{Text: t.Author},
				{Text: dash(t.Level), Badge: levelTone(t.Level)},
				{Text: dash(t.Category)},
				{Text: textbookRating(t.Rating)},
				{Text: fmt.Sprintf("%s downloads · %s views", count(t.DownloadCount), count(t.ViewCount)), Muted: true},
				{Text: count(t.TotalChapters)},
				{Text: dash(t.Status), Badge: textbookTone(t.Status)},
			},
			Actions: []template.Action{
				{Label: "Chapters", Href: base + "/chapters", Title: "View Chapters"},
				{Label: "Edit", Href: base + "/edit", Title: "Edit Textbook"},
				{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete Textbook"},
			},
		})
	}

	add := template.Action{Label: "Add New Textbook", Href: "/textbooks/new", Tone: "primary"}
	first := add
	first.Label = "Add First Textbook"
	s.render(w, r, status, template.ListView(template.ListPage{
		Page:          p,
		Heading:       fmt.Sprintf("All Textbooks (%d)", len(textbooks)),
		HeaderActions: []template.Action{add},
		Search: &template.Search{
			Action:      "/textbooks",
			Placeholder: "Search by title, author, category, level, or tags...",
			Query:       q,
		},
		Table: template.Table{
			Columns: []string{"Title", "Author", "Level", "Category", "Rating", "Stats", "Chapters", "Status", "Actions"},
			Rows:    rows,
		},
		Empty: emptyState(q, "textbooks", "Start by adding your first textbook to the system.", &first),
		Form:  open,
	}))
}

func (s *Server) handleCreateTextbook(w http.ResponseWriter, r *http.Request) {
	f := &form.TextbookForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showTextbooks(w, r, http.StatusUnprocessableEntity, textbookPanel(f, errs, 0, ""))
		return
	}
	tb, err := s.api.CreateTextbook(r.Context(), f.Input(nil))
	if err != nil {
		s.showTextbooks(w, r, http.StatusBadGateway, textbookPanel(f, nil, 0, api.Message(err, "Failed to save textbook")))
		return
	}
	s.record(r, audit.ActionCreate, "textbook", tb.Id, f.Title, "")
	s.redirect(w, r, "/textbooks", success(`Textbook "%s" created successfully`, f.Title))
}

func (s *Server) handleUpdateTextbook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := &form.TextbookForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showTextbooks(w, r, http.StatusUnprocessableEntity, textbookPanel(f, errs, id, ""))
		return
	}
	existing, err := s.api.GetTextbook(r.Context(), id)
	if err == nil {
		_, err = s.api.UpdateTextbook(r.Context(), id, f.Input(existing))
	}
	if err != nil {
		s.showTextbooks(w, r, http.StatusBadGateway, textbookPanel(f, nil, id, api.Message(err, "Failed to save textbook")))
		return
	}
	s.record(r, audit.ActionUpdate, "textbook", id, f.Title, "")
	s.redirect(w, r, "/textbooks", success(`Textbook "%s" updated successfully`, f.Title))
}

func (s *Server) handleConfirmDeleteTextbook(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Textbook", "", "textbooks")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Textbook not found", "/textbooks")
		return
	}
	tb, err := s.api.GetTextbook(r.Context(), id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load textbook", "/textbooks")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: confirmDelete(tb.Title),
		Title:   tb.Title,
		Action:  fmt.Sprintf("/textbooks/%d/delete", id),
		Submit:  "Delete Textbook",
		Cancel:  "/textbooks",
	}))
}

func (s *Server) handleDeleteTextbook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := postedTitle(r, id)
	if err := s.api.DeleteTextbook(r.Context(), id); err != nil {
		s.redirect(w, r, "/textbooks", failure(err, "Failed to delete textbook"))
		return
	}
	s.record(r, audit.ActionDelete, "textbook", id, title, "")
	s.redirect(w, r, "/textbooks", success(`Textbook "%s" deleted successfully`, title))
}
