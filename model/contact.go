package model

type ContactSubmission struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	ContactType  string    `json:"contactType"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	SubmittedAt  Timestamp `json:"submittedAt"`
}

// ContactStatusInput is the body of PUT /ContactSubmissions/{id}.
type ContactStatusInput struct {
	Status string `json:"status"`
}

const (
	ContactPending    = "Pending"
	ContactInProgress = "InProgress"
	ContactResolved   = "Resolved"
	ContactClosed     = "Closed"
)

var ContactStatuses = []string{ContactPending, ContactInProgress, ContactResolved, ContactClosed}

type ContactType struct {
	Value string
	Label string
}

var ContactTypes = []ContactType{
	{"general", "General Inquiry"},
	{"collaboration", "Collaboration"},
	{"contribution", "Content Contribution"},
	{"technical", "Technical Support"},
	{"research", "Research Submission"},
	{"feedback", "Feedback & Suggestions"},
}

// ContactFilter narrows the loaded submissions. "all" or "" disables the
// status and type constraints.
type ContactFilter struct {
	Term   string
	Status string
	Type   string
}

func (f ContactFilter) Apply(subs []*ContactSubmission) []*ContactSubmission {
	out := make([]*ContactSubmission, 0, len(subs))
	for _, s := range subs {
		if !isAll(f.Status) && s.Status != f.Status {
			continue
		}
		if !isAll(f.Type) && s.ContactType != f.Type {
			continue
		}
		if !MatchAny(f.Term, s.Name, s.Email, s.Subject, s.Organization, s.Message) {
			continue
		}
		out = append(out, s)
	}
	return out
}

type ContactStats struct {
	Total      int
	Pending    int
	InProgress int
	Resolved   int
}

func SummarizeContacts(subs []*ContactSubmission) ContactStats {
	stats := ContactStats{Total: len(subs)}
	for _, s := range subs {
		switch s.Status {
		case ContactPending:
			stats.Pending++
		case ContactInProgress:
			stats.InProgress++
		case ContactResolved:
			stats.Resolved++
		}
	}
	return stats
}

func ValidContactStatus(status string) bool {
	for _, s := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func isAll(v string) bool {
	return v == "" || v == "all"
}
