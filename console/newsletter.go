package console

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"vedic-admin/audit"
	"vedic-admin/export"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) newsletterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /newsletter-subscriptions", s.handleSubscriptions)
	mux.HandleFunc("GET /newsletter-subscriptions/export.csv", s.handleExportSubscriptions)
	mux.HandleFunc("GET /newsletter-subscriptions/{id}/unsubscribe", s.handleConfirmUnsubscribe)
	mux.HandleFunc("POST /newsletter-subscriptions/{id}/unsubscribe", s.handleUnsubscribe)
	mux.HandleFunc("GET /newsletter-subscriptions/{id}/delete", s.handleConfirmDeleteSubscription)
	mux.HandleFunc("POST /newsletter-subscriptions/{id}/delete", s.handleDeleteSubscription)
}

const newsletterTitle = "Newsletter Subscriptions"

func subscriptionFilter(r *http.Request) model.SubscriptionFilter {
	q := r.URL.Query()
	return model.SubscriptionFilter{Term: q.Get("q"), Status: orAll(q.Get("status"))}
}

func subscriptionQuery(f model.SubscriptionFilter) string {
	v := url.Values{}
	if f.Term != "" {
		v.Set("q", f.Term)
	}
	if f.Status != "all" {
		v.Set("status", f.Status)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// findSubscription looks id up in the full list; the API has no single
// subscription endpoint.
func (s *Server) findSubscription(r *http.Request, id int64) (*model.NewsletterSubscription, error) {
	subs, err := s.api.ListNewsletterSubscriptions(r.Context())
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Id == id {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, newsletterTitle, "Manage newsletter subscribers and export email lists", "newsletter-subscriptions")
	subs, err := s.api.ListNewsletterSubscriptions(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load newsletter subscriptions", "/")
		return
	}
	stats := model.SummarizeSubscriptions(subs, s.now().In(s.loc))
	filter := subscriptionFilter(r)
	subs = filter.Apply(subs)
	query := subscriptionQuery(filter)

	rows := make([]template.Row, 0, len(subs))
	for _, sub := range subs {
		base := fmt.Sprintf("/newsletter-subscriptions/%d", sub.Id)
		status := template.Cell{Text: "Inactive", Badge: "secondary"}
		if sub.IsActive {
			status = template.Cell{Text: "Active", Badge: "success"}
		}
		source := template.Cell{Text: sub.Source}
		if sub.Source == "" {
			source = template.Cell{Text: "N/A", Muted: true}
		}
		unsubscribed := template.Cell{Text: "-", Muted: true}
		if sub.UnsubscribedAt != nil {
			unsubscribed = s.dateCell(*sub.UnsubscribedAt)
		}
		var actions []template.Action
		if sub.IsActive {
			actions = append(actions, template.Action{Label: "Unsubscribe", Href: base + "/unsubscribe", Tone: "warning", Title: "Unsubscribe"})
		}
		actions = append(actions, template.Action{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete permanently"})
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				{Text: sub.Email, Strong: true},
				status,
				source,
				s.dateCell(sub.SubscribedAt),
				unsubscribed,
			},
			Actions: actions,
		})
	}

	empty := template.EmptyState{
		Title:   "No newsletter subscriptions found",
		Message: "Newsletter subscriptions will appear here when users subscribe",
	}
	if query != "" {
		empty.Message = "Try adjusting your filters or search term"
	}

	s.render(w, r, http.StatusOK, template.ListView(template.ListPage{
		Page:    p,
		Heading: fmt.Sprintf("All Subscriptions (%d)", len(subs)),
		HeaderActions: []template.Action{
			{Label: "Export to CSV", Href: "/newsletter-subscriptions/export.csv" + query, Tone: "primary"},
		},
		Stats: []template.Stat{
			{Label: "Total Subscriptions", Value: count(stats.Total)},
			{Label: "Active Subscribers", Value: count(stats.Active), Tone: "success"},
			{Label: "Unsubscribed", Value: count(stats.Inactive), Tone: "danger"},
			{Label: "This Month", Value: count(stats.ThisMonth), Tone: "info"},
		},
		Search: &template.Search{
			Action:      "/newsletter-subscriptions",
			Placeholder: "Search by email...",
			Query:       filter.Term,
			Selects: []template.Select{{
				Name:  "status",
				Label: "Status",
				Value: filter.Status,
				Options: []template.Option{
					{Value: "all", Label: "All Subscriptions"},
					{Value: "active", Label: "Active Only"},
					{Value: "inactive", Label: "Inactive Only"},
				},
			}},
		},
		Table: template.Table{
			Columns: []string{"Email", "Status", "Source", "Subscribed At", "Unsubscribed At", "Actions"},
			Rows:    rows,
		},
		Empty: empty,
	}))
}

func (s *Server) handleConfirmUnsubscribe(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Unsubscribe", "", "newsletter-subscriptions")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Subscription not found", "/newsletter-subscriptions")
		return
	}
	sub, err := s.findSubscription(r, id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load newsletter subscriptions", "/newsletter-subscriptions")
		return
	}
	if sub == nil {
		s.notFound(w, r, p, "Subscription not found", "/newsletter-subscriptions")
		return
	}
	if !sub.IsActive {
		s.redirect(w, r, "/newsletter-subscriptions", &template.Flash{Kind: "error", Message: fmt.Sprintf(`"%s" is already unsubscribed`, sub.Email)})
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: fmt.Sprintf(`Are you sure you want to unsubscribe "%s"?`, sub.Email),
		Title:   sub.Email,
		Action:  fmt.Sprintf("/newsletter-subscriptions/%d/unsubscribe", id),
		Submit:  "Unsubscribe",
		Cancel:  "/newsletter-subscriptions",
	}))
}

func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	email := postedTitle(r, id)
	if err := s.api.UnsubscribeNewsletter(r.Context(), id); err != nil {
		s.redirect(w, r, "/newsletter-subscriptions", failure(err, "Failed to unsubscribe"))
		return
	}
	s.record(r, audit.ActionUnsubscribe, "newsletter-subscription", id, email, "")
	s.redirect(w, r, "/newsletter-subscriptions", success(`"%s" unsubscribed successfully`, email))
}

func (s *Server) handleConfirmDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Subscription", "", "newsletter-subscriptions")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Subscription not found", "/newsletter-subscriptions")
		return
	}
	sub, err := s.findSubscription(r, id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load newsletter subscriptions", "/newsletter-subscriptions")
		return
	}
	if sub == nil {
		s.notFound(w, r, p, "Subscription not found", "/newsletter-subscriptions")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: fmt.Sprintf(`Are you sure you want to permanently delete "%s" from the database? This action cannot be undone.`, sub.Email),
		Title:   sub.Email,
		Action:  fmt.Sprintf("/newsletter-subscriptions/%d/delete", id),
		Submit:  "Delete Subscription",
		Cancel:  "/newsletter-subscriptions",
	}))
}

func (s *Server) handleDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	email := postedTitle(r, id)
	if err := s.api.DeleteNewsletterSubscription(r.Context(), id); err != nil {
		s.redirect(w, r, "/newsletter-subscriptions", failure(err, "Failed to delete subscription"))
		return
	}
	s.record(r, audit.ActionDelete, "newsletter-subscription", id, email, "")
	s.redirect(w, r, "/newsletter-subscriptions", success(`"%s" deleted successfully`, email))
}

// handleExportSubscriptions downloads the subscriptions matching the list
// filters, in list order.
func (s *Server) handleExportSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.api.ListNewsletterSubscriptions(r.Context())
	if err != nil {
		s.redirect(w, r, "/newsletter-subscriptions", failure(err, "Failed to export subscriptions"))
		return
	}
	subs = subscriptionFilter(r).Apply(subs)
	var buf bytes.Buffer
	if err := export.WriteNewsletter(&buf, subs, s.loc); err != nil {
		s.redirect(w, r, "/newsletter-subscriptions", failure(err, "Failed to export subscriptions"))
		return
	}
	attachment(w, "text/csv; charset=utf-8", export.NewsletterFileName(s.now()))
	_, _ = w.Write(buf.Bytes())
}
