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

func (s *Server) thesisRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /thesis", s.handleTheses)
	mux.HandleFunc("GET /thesis/new", s.handleNewThesis)
	mux.HandleFunc("POST /thesis", s.handleCreateThesis)
	mux.HandleFunc("GET /thesis/{id}", s.handlePreviewThesis)
	mux.HandleFunc("GET /thesis/{id}/edit", s.handleEditThesis)
	mux.HandleFunc("POST /thesis/{id}", s.handleUpdateThesis)
	mux.HandleFunc("GET /thesis/{id}/delete", s.handleConfirmDeleteThesis)
	mux.HandleFunc("POST /thesis/{id}/delete", s.handleDeleteThesis)
}

const thesesTitle = "Thesis"

func thesisPanel(f *form.ThesisForm, errs form.Errors, id int64, apiErr string) *template.Form {
	return panel("Thesis", "/thesis", id, thesisFields(f, errs), apiErr)
}

func (s *Server) handleTheses(w http.ResponseWriter, r *http.Request) {
	var open *template.Form
	if r.URL.Query().Get("action") == "new" {
		open = thesisPanel(form.NewThesisForm(s.now()), nil, 0, "")
	}
	s.showTheses(w, r, http.StatusOK, open, nil)
}

func (s *Server) handleNewThesis(w http.ResponseWriter, r *http.Request) {
	s.showTheses(w, r, http.StatusOK, thesisPanel(form.NewThesisForm(s.now()), nil, 0, ""), nil)
}

func (s *Server) handleEditThesis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, thesesTitle, "", "thesis"), "Thesis not found", "/thesis")
		return
	}
	t, err := s.api.GetThesis(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, thesesTitle, "", "thesis"), err, "Failed to load thesis details", "/thesis")
		return
	}
	s.showTheses(w, r, http.StatusOK, thesisPanel(form.ThesisFormFrom(t, s.now()), nil, id, ""), nil)
}

func (s *Server) handlePreviewThesis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, thesesTitle, "", "thesis"), "Thesis not found", "/thesis")
		return
	}
	t, err := s.api.GetThesis(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, thesesTitle, "", "thesis"), err, "Failed to load thesis for preview", "/thesis")
		return
	}
	meta := []template.Stat{
		{Label: "Guides", Value: dash(t.GuideNames.Join())},
		{Label: "Institution", Value: dash(t.Institution)},
		{Label: "Department", Value: dash(t.Department)},
		{Label: "Year", Value: yearText(t.Year)},
		{Label: "Category", Value: dash(t.Category)},
		{Label: "Type", Value: dash(t.ThesisType)},
		{Label: "Grade", Value: dash(t.Grade)},
		{Label: "Pages", Value: count(t.Pages)},
		{Label: "Views", Value: count(t.ViewCount)},
		{Label: "Rating", Value: rating(t.Rating)},
		{Label: "Status", Value: dash(t.Status)},
		{Label: "Keywords", Value: dash(t.Keywords.Join())},
	}
	if d := model.DateOnly(t.DefenseDate); d != "" {
		meta = append(meta, template.Stat{Label: "Defense Date", Value: d})
	}
	s.showTheses(w, r, http.StatusOK, nil, &template.Preview{
		Title:    t.Title,
		Subtitle: t.Author,
		Meta:     meta,
		Text:     t.Abstract,
		HTML:     t.ContentHtml,
		Actions: []template.Action{
			{Label: "Edit", Href: fmt.Sprintf("/thesis/%d/edit", id), Tone: "primary"},
			{Label: "Close", Href: "/thesis"},
		},
		Close: "/thesis",
	})
}

func (s *Server) showTheses(w http.ResponseWriter, r *http.Request, status int, open *template.Form, preview *template.Preview) {
	p := s.page(w, r, thesesTitle, "Manage thesis and dissertations", "thesis")
	theses, err := s.api.ListTheses(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load thesis", "/")
		return
	}
	stats := model.SummarizeTheses(theses)
	q := r.URL.Query().Get("q")
	theses = model.Filter(theses, q)

	rows := make([]template.Row, 0, len(theses))
	for _, t := range theses {
		base := fmt.Sprintf("/thesis/%d", t.Id)
		title := titleCell(t.Title, t.Abstract)
		if t.IsFeatured {
			title.Text = "★ " + title.Text
		}
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				title,
				{Text: dash(t.Author)},
				{Text: dash(t.Institution)},
				{Text: yearText(t.Year)},
				{Text: dash(t.Category), Badge: thesisCategoryTone(t.Category)},
				{Text: dash(t.Grade)},
				{Text: count(t.ViewCount)},
				{Text: rating(t.Rating)},
				{Text: dash(t.Status), Badge: publicationTone(t.Status)},
			},
			Actions: []template.Action{
				{Label: "Preview", Href: base, Title: "Preview Thesis"},
				{Label: "Edit", Href: base + "/edit", Title: "Edit"},
				{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete"},
			},
		})
	}

	add := template.Action{Label: "Add Thesis", Href: "/thesis/new", Tone: "primary"}
	s.render(w, r, status, template.ListView(template.ListPage{
		Page:          p,
		Heading:       fmt.Sprintf("All Thesis (%d)", len(theses)),
		HeaderActions: []template.Action{add},
		Stats:         publicationStats("Total Thesis", stats),
		Search: &template.Search{
			Action:      "/thesis",
			Placeholder: "Search by title, author, institution, or category...",
			Query:       q,
		},
		Table: template.Table{
			Columns: []string{"Title", "Author", "Institution", "Year", "Category", "Grade", "Views", "Rating", "Status", "Actions"},
			Rows:    rows,
		},
		Empty:   emptyState(q, "thesis", "Get started by adding your first thesis", &add),
		Form:    open,
		Preview: preview,
	}))
}

func (s *Server) handleCreateThesis(w http.ResponseWriter, r *http.Request) {
	f := &form.ThesisForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showTheses(w, r, http.StatusUnprocessableEntity, thesisPanel(f, errs, 0, ""), nil)
		return
	}
	t, err := s.api.CreateThesis(r.Context(), f.Input())
	if err != nil {
		s.showTheses(w, r, http.StatusBadGateway, thesisPanel(f, nil, 0, api.Message(err, "Failed to save thesis")), nil)
		return
	}
	s.record(r, audit.ActionCreate, "thesis", t.Id, f.Title, "")
	s.redirect(w, r, "/thesis", success(`Thesis "%s" created successfully`, f.Title))
}

func (s *Server) handleUpdateThesis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := &form.ThesisForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showTheses(w, r, http.StatusUnprocessableEntity, thesisPanel(f, errs, id, ""), nil)
		return
	}
	if _, err := s.api.UpdateThesis(r.Context(), id, f.Input()); err != nil {
		s.showTheses(w, r, http.StatusBadGateway, thesisPanel(f, nil, id, api.Message(err, "Failed to save thesis")), nil)
		return
	}
	s.record(r, audit.ActionUpdate, "thesis", id, f.Title, "")
	s.redirect(w, r, "/thesis", success(`Thesis "%s" updated successfully`, f.Title))
}

func (s *Server) handleConfirmDeleteThesis(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Thesis", "", "thesis")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Thesis not found", "/thesis")
		return
	}
	t, err := s.api.GetThesis(r.Context(), id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load thesis details", "/thesis")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: confirmDelete(t.Title),
		Title:   t.Title,
		Action:  fmt.Sprintf("/thesis/%d/delete", id),
		Submit:  "Delete Thesis",
		Cancel:  "/thesis",
	}))
}

func (s *Server) handleDeleteThesis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := postedTitle(r, id)
	if err := s.api.DeleteThesis(r.Context(), id); err != nil {
		s.redirect(w, r, "/thesis", failure(err, "Failed to delete thesis"))
		return
	}
	s.record(r, audit.ActionDelete, "thesis", id, title, "")
	s.redirect(w, r, "/thesis", success(`Thesis "%s" deleted successfully`, title))
}
