package console

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"vedic-admin/audit"
	"vedic-admin/model"
	"vedic-admin/template"
	"vedic-admin/text"
)

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func optionalCount(n *int) string {
	if n == nil || *n == 0 {
		return "-"
	}
	return count(*n)
}

// dateCell shows t in the display layout with a relative time tooltip.
func (s *Server) dateCell(t model.Timestamp) template.Cell {
	if t.IsZero() {
		return template.Cell{Text: "-", Muted: true}
	}
	return template.Cell{
		Text:  t.Display(s.loc),
		Title: humanize.RelTime(t.Time, s.now(), "ago", "from now"),
	}
}

func (s *Server) activityTime(at time.Time) template.Cell {
	return template.Cell{
		Text:  humanize.RelTime(at, s.now(), "ago", "from now"),
		Title: at.In(s.loc).Format(model.DisplayLayout),
		Muted: true,
	}
}

// titleCell is a bold title with an excerpt of the secondary text under it.
func titleCell(title, secondary string) template.Cell {
	c := template.Cell{Text: title, Strong: true}
	if strings.TrimSpace(secondary) != "" {
		c.Note = text.Excerpt(secondary)
	}
	return c
}

func rating(r float64) string {
	if r == 0 {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func publicationTone(status string) string {
	switch status {
	case "published":
		return "success"
	case "under-review":
		return "warning"
	}
	return "secondary"
}

func contactTone(status string) string {
	switch status {
	case model.ContactPending:
		return "warning"
	case model.ContactInProgress:
		return "info"
	case model.ContactResolved:
		return "success"
	case model.ContactClosed:
		return "secondary"
	}
	return "default"
}

func actionTone(action string) string {
	switch action {
	case audit.ActionCreate:
		return "success"
	case audit.ActionUpdate, audit.ActionStatus:
		return "info"
	case audit.ActionUnsubscribe:
		return "warning"
	case audit.ActionDelete:
		return "danger"
	}
	return "secondary"
}

func textbookTone(status string) string {
	switch status {
	case "completed":
		return "success"
	case "in-progress":
		return "warning"
	}
	return "secondary"
}

func levelTone(level string) string {
	if level == "UG" {
		return "primary"
	}
	return "success"
}

func paperCategoryTone(category string) string {
	switch category {
	case "clinical-trial":
		return "success"
	case "research-paper":
		return "primary"
	case "review-article":
		return "info"
	case "case-study":
		return "warning"
	}
	return "secondary"
}

func thesisCategoryTone(category string) string {
	switch category {
	case "PhD Thesis":
		return "success"
	case "MS Thesis":
		return "primary"
	case "MD Thesis":
		return "info"
	case "Post-Doctoral":
		return "warning"
	}
	return "secondary"
}

// authorsText shows the first two authors and how many more there are.
func authorsText(authors model.StringList) string {
	if len(authors) <= 2 {
		return dash(authors.Join())
	}
	return authors[:2].Join() + " +" + strconv.Itoa(len(authors)-2)
}

func options(values []string) []template.Option {
	out := make([]template.Option, 0, len(values))
	for _, v := range values {
		out = append(out, template.Option{Value: v, Label: v})
	}
	return out
}

// emptyState picks the "no results" or the "nothing yet" variant.
func emptyState(query, entity, firstMessage string, add *template.Action) template.EmptyState {
	if strings.TrimSpace(query) != "" {
		return template.EmptyState{
			Title:   "No " + entity + " found",
			Message: "Try adjusting your search terms",
		}
	}
	return template.EmptyState{
		Title:   "No " + entity + " yet",
		Message: firstMessage,
		Action:  add,
	}
}

func confirmDelete(title string) string {
	return `Are you sure you want to delete "` + title + `"? This action cannot be undone.`
}
