package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"vedic-admin/model"
)

func TestWriteNewsletterFilteredRows(t *testing.T) {
	at := model.Timestamp{Time: time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)}
	subs := []*model.NewsletterSubscription{
		{Id: 1, Email: "a@example.com", IsActive: true, Source: "footer", SubscribedAt: at},
		{Id: 2, Email: "b@example.com", IsActive: false, SubscribedAt: at, UnsubscribedAt: &at},
	}
	active := model.SubscriptionFilter{Status: "active"}.Apply(subs)

	var buf bytes.Buffer
	if err := WriteNewsletter(&buf, active, time.UTC); err != nil {
		t.Fatalf("WriteNewsletter: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	want := []string{"a@example.com", "Active", "Jan 5, 2025, 02:30 PM", "footer", "N/A"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("column %d = %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestWriteContactsQuotesCommas(t *testing.T) {
	subs := []*model.ContactSubmission{
		{Name: "Rao, K.", Email: "k@example.com", ContactType: "research", Subject: "Paper", Status: model.ContactPending},
	}
	var buf bytes.Buffer
	if err := WriteContacts(&buf, subs, time.UTC); err != nil {
		t.Fatalf("WriteContacts: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := rows[1]
	if got[0] != "Rao, K." || got[2] != "N/A" || got[3] != "Research Submission" || got[6] != "N/A" {
		t.Fatalf("unexpected row: %q", got)
	}
}

func TestNewsletterFileName(t *testing.T) {
	now := time.Date(2025, 7, 9, 23, 0, 0, 0, time.UTC)
	if got := NewsletterFileName(now); got != "newsletter-subscriptions-2025-07-09.csv" {
		t.Fatalf("NewsletterFileName = %q", got)
	}
}
