package console

import (
	"fmt"
	"net/http"
	"strings"

	"vedic-admin/api"
	"vedic-admin/audit"
	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) paperRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /research-papers", s.handlePapers)
	mux.HandleFunc("GET /research-papers/new", s.handleNewPaper)
	mux.HandleFunc("POST /research-papers", s.handleCreatePaper)
	mux.HandleFunc("GET /research-papers/{id}", s.handlePreviewPaper)
	mux.HandleFunc("GET /research-papers/{id}/edit", s.handleEditPaper)
	mux.HandleFunc("POST /research-papers/{id}", s.handleUpdatePaper)
	mux.HandleFunc("GET /research-papers/{id}/delete", s.handleConfirmDeletePaper)
	mux.HandleFunc("POST /research-papers/{id}/delete", s.handleDeletePaper)
}

const papersTitle = "Research Papers"

func paperPanel(f *form.ResearchPaperForm, errs form.Errors, id int64, apiErr string) *template.Form {
	return panel("Research Paper", "/research-papers", id, paperFields(f, errs), apiErr)
}

func publicationStats(label string, st model.PublicationStats) []template.Stat {
	return []template.Stat{
		{Label: label, Value: count(st.Total)},
		{Label: "Featured", Value: count(st.Featured), Tone: "warning"},
		{Label: "Published", Value: count(st.Published), Tone: "success"},
		{Label: "Total Views", Value: count(st.TotalViews), Tone: "info"},
	}
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	var open *template.Form
	if r.URL.Query().Get("action") == "new" {
		open = paperPanel(form.NewResearchPaperForm(s.now()), nil, 0, "")
	}
	s.showPapers(w, r, http.StatusOK, open, nil)
}

func (s *Server) handleNewPaper(w http.ResponseWriter, r *http.Request) {
	s.showPapers(w, r, http.StatusOK, paperPanel(form.NewResearchPaperForm(s.now()), nil, 0, ""), nil)
}

func (s *Server) handleEditPaper(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, papersTitle, "", "research-papers"), "Research paper not found", "/research-papers")
		return
	}
	paper, err := s.api.GetResearchPaper(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, papersTitle, "", "research-papers"), err, "Failed to load research paper details", "/research-papers")
		return
	}
	s.showPapers(w, r, http.StatusOK, paperPanel(form.ResearchPaperFormFrom(paper, s.now()), nil, id, ""), nil)
}

func (s *Server) handlePreviewPaper(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, papersTitle, "", "research-papers"), "Research paper not found", "/research-papers")
		return
	}
	paper, err := s.api.GetResearchPaper(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, papersTitle, "", "research-papers"), err, "Failed to load research paper for preview", "/research-papers")
		return
	}
	meta := []template.Stat{
		{Label: "Institution", Value: dash(paper.Institution)},
		{Label: "Year", Value: yearText(paper.Year)},
		{Label: "Category", Value: dash(paper.Category)},
		{Label: "Pages", Value: count(paper.Pages)},
		{Label: "Views", Value: count(paper.ViewCount)},
		{Label: "Rating", Value: rating(paper.Rating)},
		{Label: "Status", Value: dash(paper.Status)},
		{Label: "Keywords", Value: dash(paper.Keywords.Join())},
	}
	if paper.JournalName != "" {
		meta = append(meta, template.Stat{Label: "Journal", Value: paper.JournalName})
	}
	if paper.Doi != "" {
		meta = append(meta, template.Stat{Label: "DOI", Value: paper.Doi})
	}
	s.showPapers(w, r, http.StatusOK, nil, &template.Preview{
		Title:    paper.Title,
		Subtitle: paper.Authors.Join(),
		Meta:     meta,
		Text:     paper.Abstract,
		HTML:     paper.ContentHtml,
		Actions: []template.Action{
			{Label: "Edit", Href: fmt.Sprintf("/research-papers/%d/edit", id), Tone: "primary"},
			{Label: "Close", Href: "/research-papers"},
		},
		Close: "/research-papers",
	})
}

func yearText(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprint(year)
}

func (s *Server) showPapers(w http.ResponseWriter, r *http.Request, status int, open *template.Form, preview *template.Preview) {
	p := s.page(w, r, papersTitle, "Manage research papers and publications", "research-papers")
	papers, err := s.api.ListResearchPapers(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load research papers", "/")
		return
	}
	stats := model.SummarizePapers(papers)
	q := r.URL.Query().Get("q")
	papers = model.Filter(papers, q)

	rows := make([]template.Row, 0, len(papers))
	for _, paper := range papers {
		base := fmt.Sprintf("/research-papers/%d", paper.Id)
		title := titleCell(paper.Title, paper.Abstract)
		if paper.IsFeatured {
			title.Text = "★ " + title.Text
		}
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				title,
				{Text: authorsText(paper.Authors)},
				{Text: dash(paper.Institution)},
				{Text: yearText(paper.Year)},
				{Text: dash(strings.Replace(paper.Category, "-", " ", 1)), Badge: paperCategoryTone(paper.Category)},
				{Text: count(paper.ViewCount)},
				{Text: rating(paper.Rating)},
				{Text: dash(paper.Status), Badge: publicationTone(paper.Status)},
			},
			Actions: []template.Action{
				{Label: "Preview", Href: base, Title: "Preview Research Paper"},
				{Label: "Edit", Href: base + "/edit", Title: "Edit"},
				{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete"},
			},
		})
	}

	add := template.Action{Label: "Add Research Paper", Href: "/research-papers/new", Tone: "primary"}
	s.render(w, r, status, template.ListView(template.ListPage{
		Page:          p,
		Heading:       fmt.Sprintf("All Research Papers (%d)", len(papers)),
		HeaderActions: []template.Action{add},
		Stats:         publicationStats("Total Papers", stats),
		Search: &template.Search{
			Action:      "/research-papers",
			Placeholder: "Search by title, authors, institution, or category...",
			Query:       q,
		},
		Table: template.Table{
			Columns: []string{"Title", "Authors", "Institution", "Year", "Category", "Views", "Rating", "Status", "Actions"},
			Rows:    rows,
		},
		Empty:   emptyState(q, "research papers", "Get started by adding your first research paper", &add),
		Form:    open,
		Preview: preview,
	}))
}

func (s *Server) handleCreatePaper(w http.ResponseWriter, r *http.Request) {
	f := &form.ResearchPaperForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showPapers(w, r, http.StatusUnprocessableEntity, paperPanel(f, errs, 0, ""), nil)
		return
	}
	paper, err := s.api.CreateResearchPaper(r.Context(), f.Input())
	if err != nil {
		s.showPapers(w, r, http.StatusBadGateway, paperPanel(f, nil, 0, api.Message(err, "Failed to save research paper")), nil)
		return
	}
	s.record(r, audit.ActionCreate, "research-paper", paper.Id, f.Title, "")
	s.redirect(w, r, "/research-papers", success(`Research paper "%s" created successfully`, f.Title))
}

func (s *Server) handleUpdatePaper(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := &form.ResearchPaperForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showPapers(w, r, http.StatusUnprocessableEntity, paperPanel(f, errs, id, ""), nil)
		return
	}
	if _, err := s.api.UpdateResearchPaper(r.Context(), id, f.Input()); err != nil {
		s.showPapers(w, r, http.StatusBadGateway, paperPanel(f, nil, id, api.Message(err, "Failed to save research paper")), nil)
		return
	}
	s.record(r, audit.ActionUpdate, "research-paper", id, f.Title, "")
	s.redirect(w, r, "/research-papers", success(`Research paper "%s" updated successfully`, f.Title))
}

func (s *Server) handleConfirmDeletePaper(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Research Paper", "", "research-papers")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Research paper not found", "/research-papers")
		return
	}
	paper, err := s.api.GetResearchPaper(r.Context(), id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load research paper details", "/research-papers")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: confirmDelete(paper.Title),
		Title:   paper.Title,
		Action:  fmt.Sprintf("/research-papers/%d/delete", id),
		Submit:  "Delete Research Paper",
		Cancel:  "/research-papers",
	}))
}

func (s *Server) handleDeletePaper(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := postedTitle(r, id)
	if err := s.api.DeleteResearchPaper(r.Context(), id); err != nil {
		s.redirect(w, r, "/research-papers", failure(err, "Failed to delete research paper"))
		return
	}
	s.record(r, audit.ActionDelete, "research-paper", id, title, "")
	s.redirect(w, r, "/research-papers", success(`Research paper "%s" deleted successfully`, title))
}
