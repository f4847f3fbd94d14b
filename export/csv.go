package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"vedic-admin/model"
)

const notAvailable = "N/A"

var (
	newsletterHeader = []string{"Email", "Status", "Subscribed At", "Source", "Unsubscribed At"}
	contactHeader    = []string{"Name", "Email", "Organization", "Type", "Subject", "Status", "Submitted At"}
)

// NewsletterFileName is the download name for an export made at now.
func NewsletterFileName(now time.Time) string {
	return fmt.Sprintf("newsletter-subscriptions-%s.csv", now.UTC().Format(time.DateOnly))
}

func ContactsFileName(now time.Time) string {
	return fmt.Sprintf("contact-submissions-%s.csv", now.UTC().Format(time.DateOnly))
}

// WriteNewsletter writes subs as CSV in the order given. Times are
// rendered in loc.
func WriteNewsletter(w io.Writer, subs []*model.NewsletterSubscription, loc *time.Location) error {
	rows := make([][]string, 0, len(subs)+1)
	rows = append(rows, newsletterHeader)
	for _, s := range subs {
		status := "Inactive"
		if s.IsActive {
			status = "Active"
		}
		unsubscribed := notAvailable
		if s.UnsubscribedAt != nil && !s.UnsubscribedAt.IsZero() {
			unsubscribed = s.UnsubscribedAt.Display(loc)
		}
		rows = append(rows, []string{
			s.Email,
			status,
			orNA(s.SubscribedAt.Display(loc)),
			orNA(s.Source),
			unsubscribed,
		})
	}
	return writeAll(w, rows)
}

func WriteContacts(w io.Writer, subs []*model.ContactSubmission, loc *time.Location) error {
	rows := make([][]string, 0, len(subs)+1)
	rows = append(rows, contactHeader)
	for _, s := range subs {
		rows = append(rows, []string{
			s.Name,
			s.Email,
			orNA(s.Organization),
			orNA(ContactTypeLabel(s.ContactType)),
			s.Subject,
			s.Status,
			orNA(s.SubmittedAt.Display(loc)),
		})
	}
	return writeAll(w, rows)
}

// ContactTypeLabel maps a contact type value to its label, passing unknown
// values through.
func ContactTypeLabel(value string) string {
	for _, t := range model.ContactTypes {
		if t.Value == value {
			return t.Label
		}
	}
	return value
}

func writeAll(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
