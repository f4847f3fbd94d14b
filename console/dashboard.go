package console

import (
	"fmt"
	"net/http"
	"strings"

	"vedic-admin/logger"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Dashboard", "Welcome to Vedic AI Admin Panel", "dashboard")
	books, err := s.api.ListBooks(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load dashboard data", "")
		return
	}
	stats := model.SummarizeBooks(books)

	recent := template.Table{Columns: []string{"Title", "Author", "Category", "Chapters", "Language"}}
	for _, b := range stats.Recent {
		recent.Rows = append(recent.Rows, template.Row{
			Cells: []template.Cell{
				{Text: b.Title, Strong: true, Href: fmt.Sprintf("/books/%d/chapters", b.Id)},
				{Text: b.Author},
				{Text: dash(b.Category)},
				{Text: count(b.TotalChapters)},
				{Text: dash(b.Language)},
			},
		})
	}

	activity := template.Table{Columns: []string{"When", "Action", "Record", "Detail"}}
	entries, err := s.audit.Recent(r.Context(), 10)
	if err != nil {
		logger.Logger.Printf("failed to read audit log: %v", err)
	}
	for _, e := range entries {
		activity.Rows = append(activity.Rows, template.Row{
			Cells: []template.Cell{
				s.activityTime(e.At),
				{Text: e.Action, Badge: actionTone(e.Action)},
				{Text: fmt.Sprintf("%s %s", strings.ReplaceAll(e.Kind, "-", " "), e.Title)},
				{Text: dash(e.Detail), Muted: true},
			},
		})
	}

	s.render(w, r, http.StatusOK, template.DashboardView(template.DashboardPage{
		Page: p,
		Stats: []template.Stat{
			{Label: "Total Books", Value: count(stats.TotalBooks), Tone: "primary"},
			{Label: "Total Chapters", Value: count(stats.TotalChapters), Tone: "success"},
		},
		QuickActions: []template.Action{
			{Label: "Add New Book", Href: "/books?action=new", Tone: "primary"},
			{Label: "View All Books", Href: "/books"},
			{Label: "Manage Chapters", Href: "/chapters"},
		},
		RecentBooks: recent,
		Activity:    activity,
	}))
}
