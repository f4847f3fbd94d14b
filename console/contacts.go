package console

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"vedic-admin/audit"
	"vedic-admin/export"
	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) contactRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /contact-submissions", s.handleContacts)
	mux.HandleFunc("GET /contact-submissions/export.csv", s.handleExportContacts)
	mux.HandleFunc("GET /contact-submissions/{id}", s.handleContact)
	mux.HandleFunc("POST /contact-submissions/{id}/status", s.handleContactStatus)
	mux.HandleFunc("GET /contact-submissions/{id}/delete", s.handleConfirmDeleteContact)
	mux.HandleFunc("POST /contact-submissions/{id}/delete", s.handleDeleteContact)
}

const contactsTitle = "Contact Submissions"

func contactFilter(r *http.Request) model.ContactFilter {
	q := r.URL.Query()
	return model.ContactFilter{
		Term:   q.Get("q"),
		Status: orAll(q.Get("status")),
		Type:   orAll(q.Get("type")),
	}
}

func orAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

// filterQuery keeps the list filters on links out of the list page.
func filterQuery(f model.ContactFilter) string {
	v := url.Values{}
	if f.Term != "" {
		v.Set("q", f.Term)
	}
	if f.Status != "all" {
		v.Set("status", f.Status)
	}
	if f.Type != "all" {
		v.Set("type", f.Type)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func contactStatusLabel(status string) string {
	for _, o := range contactStatusOptions() {
		if o.Value == status {
			return o.Label
		}
	}
	return status
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	s.showContacts(w, r, http.StatusOK, nil)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, contactsTitle, "", "contact-submissions"), "Submission not found", "/contact-submissions")
		return
	}
	sub, err := s.api.GetContactSubmission(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, contactsTitle, "", "contact-submissions"), err, "Failed to load submission", "/contact-submissions")
		return
	}
	s.showContacts(w, r, http.StatusOK, s.contactPreview(r, sub, ""))
}

func (s *Server) contactPreview(r *http.Request, sub *model.ContactSubmission, statusErr string) *template.Preview {
	back := "/contact-submissions" + filterQuery(contactFilter(r))
	meta := []template.Stat{
		{Label: "Name", Value: sub.Name},
		{Label: "Email", Value: sub.Email},
		{Label: "Organization", Value: dash(sub.Organization)},
		{Label: "Type", Value: export.ContactTypeLabel(sub.ContactType)},
		{Label: "Status", Value: contactStatusLabel(sub.Status)},
		{Label: "Submitted At", Value: dash(sub.SubmittedAt.Display(s.loc))},
		{Label: "Subject", Value: sub.Subject},
	}
	body := sub.Message
	if strings.TrimSpace(sub.Notes) != "" {
		body += "\n\nInternal Notes:\n" + sub.Notes
	}
	base := fmt.Sprintf("/contact-submissions/%d", sub.Id)
	return &template.Preview{
		Title:    "Contact Submission Details",
		Subtitle: sub.Subject,
		Meta:     meta,
		Text:     body,
		Form: &template.Form{
			Action: base + "/status",
			Submit: "Update Status",
			Error:  statusErr,
			Fields: []template.Field{
				{Name: "title", Type: "hidden", Value: sub.Name},
				{
					Name:    "status",
					Label:   "Status",
					Type:    "select",
					Value:   sub.Status,
					Options: contactStatusOptions(),
				},
			},
		},
		Actions: []template.Action{
			{Label: "Delete", Href: base + "/delete", Tone: "danger"},
			{Label: "Close", Href: back},
		},
		Close: back,
	}
}

func (s *Server) showContacts(w http.ResponseWriter, r *http.Request, status int, preview *template.Preview) {
	p := s.page(w, r, contactsTitle, "Manage and respond to contact form submissions", "contact-submissions")
	subs, err := s.api.ListContactSubmissions(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load contact submissions", "/")
		return
	}
	stats := model.SummarizeContacts(subs)
	filter := contactFilter(r)
	subs = filter.Apply(subs)
	query := filterQuery(filter)

	rows := make([]template.Row, 0, len(subs))
	for _, sub := range subs {
		base := fmt.Sprintf("/contact-submissions/%d", sub.Id)
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				{Text: sub.Name, Strong: true},
				{Text: sub.Email, Href: "mailto:" + sub.Email},
				{Text: export.ContactTypeLabel(sub.ContactType), Badge: "info"},
				{Text: sub.Subject, Title: sub.Subject},
				{Text: contactStatusLabel(sub.Status), Badge: contactTone(sub.Status)},
				s.dateCell(sub.SubmittedAt),
			},
			Actions: []template.Action{
				{Label: "View", Href: base + query, Title: "View Details"},
				{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete"},
			},
		})
	}

	empty := template.EmptyState{
		Title:   "No contact submissions found",
		Message: "Contact submissions will appear here when users submit the contact form",
	}
	if query != "" {
		empty.Message = "Try adjusting your filters or search term"
	}

	s.render(w, r, status, template.ListView(template.ListPage{
		Page:    p,
		Heading: fmt.Sprintf("All Submissions (%d)", len(subs)),
		HeaderActions: []template.Action{
			{Label: "Export to CSV", Href: "/contact-submissions/export.csv" + query, Tone: "primary"},
		},
		Stats: []template.Stat{
			{Label: "Total Submissions", Value: count(stats.Total)},
			{Label: "Pending", Value: count(stats.Pending), Tone: "warning"},
			{Label: "In Progress", Value: count(stats.InProgress), Tone: "info"},
			{Label: "Resolved", Value: count(stats.Resolved), Tone: "success"},
		},
		Search: &template.Search{
			Action:      "/contact-submissions",
			Placeholder: "Search by name, email, subject, or message...",
			Query:       filter.Term,
			Selects: []template.Select{
				{Name: "status", Label: "Status", Value: filter.Status, Options: append([]template.Option{{Value: "all", Label: "All Status"}}, contactStatusOptions()...)},
				{Name: "type", Label: "Type", Value: filter.Type, Options: append([]template.Option{{Value: "all", Label: "All Types"}}, contactTypeOptions()...)},
			},
		},
		Table: template.Table{
			Columns: []string{"Name", "Email", "Type", "Subject", "Status", "Submitted", "Actions"},
			Rows:    rows,
		},
		Empty:   empty,
		Preview: preview,
	}))
}

func (s *Server) handleContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := fmt.Sprintf("/contact-submissions/%d", id)
	f := &form.ContactStatusForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		sub, err := s.api.GetContactSubmission(r.Context(), id)
		if err != nil {
			s.renderError(w, r, s.page(w, r, contactsTitle, "", "contact-submissions"), err, "Failed to load submission", "/contact-submissions")
			return
		}
		s.showContacts(w, r, http.StatusUnprocessableEntity, s.contactPreview(r, sub, errs["status"]))
		return
	}
	if err := s.api.UpdateContactStatus(r.Context(), id, f.Status); err != nil {
		s.redirect(w, r, back, failure(err, "Failed to update status"))
		return
	}
	s.record(r, audit.ActionStatus, "contact-submission", id, postedTitle(r, id), f.Status)
	s.redirect(w, r, back, success("Status updated successfully"))
}

func (s *Server) handleConfirmDeleteContact(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Submission", "", "contact-submissions")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Submission not found", "/contact-submissions")
		return
	}
	sub, err := s.api.GetContactSubmission(r.Context(), id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load submission", "/contact-submissions")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: fmt.Sprintf(`Are you sure you want to delete the submission from "%s"? This action cannot be undone.`, sub.Name),
		Title:   sub.Name,
		Action:  fmt.Sprintf("/contact-submissions/%d/delete", id),
		Submit:  "Delete Submission",
		Cancel:  "/contact-submissions",
	}))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	name := postedTitle(r, id)
	if err := s.api.DeleteContactSubmission(r.Context(), id); err != nil {
		s.redirect(w, r, "/contact-submissions", failure(err, "Failed to delete submission"))
		return
	}
	s.record(r, audit.ActionDelete, "contact-submission", id, name, "")
	s.redirect(w, r, "/contact-submissions", success(`Submission from "%s" deleted successfully`, name))
}

// handleExportContacts downloads the submissions matching the list filters.
func (s *Server) handleExportContacts(w http.ResponseWriter, r *http.Request) {
	subs, err := s.api.ListContactSubmissions(r.Context())
	if err != nil {
		s.redirect(w, r, "/contact-submissions", failure(err, "Failed to export contact submissions"))
		return
	}
	subs = contactFilter(r).Apply(subs)
	var buf bytes.Buffer
	if err := export.WriteContacts(&buf, subs, s.loc); err != nil {
		s.redirect(w, r, "/contact-submissions", failure(err, "Failed to export contact submissions"))
		return
	}
	attachment(w, "text/csv; charset=utf-8", export.ContactsFileName(s.now()))
	_, _ = w.Write(buf.Bytes())
}
