package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFilterBooks(t *testing.T) {
	books := []*Book{
		{Id: 1, Title: "Charaka Samhita", Author: "Charaka", Category: "Ayurveda"},
		{Id: 2, Title: "Sushruta Samhita", Author: "Sushruta", Category: "Surgery"},
		{Id: 3, Title: "Ashtanga Hridayam", Author: "Vagbhata"},
	}

	cases := []struct {
		term string
		want []int64
	}{
		{"", []int64{1, 2, 3}},
		{"   ", []int64{1, 2, 3}},
		{"samhita", []int64{1, 2}},
		{"SURGERY", []int64{2}},
		{"vagbh", []int64{3}},
		{"nothing", nil},
	}
	for _, c := range cases {
		got := Filter(books, c.term)
		if len(got) != len(c.want) {
			t.Fatalf("term %q: got %d books, want %d", c.term, len(got), len(c.want))
		}
		for i, b := range got {
			if b.Id != c.want[i] {
				t.Fatalf("term %q: got id %d at %d, want %d", c.term, b.Id, i, c.want[i])
			}
		}
	}
}

func TestFilterPapersMatchesAnyAuthor(t *testing.T) {
	papers := []*ResearchPaper{
		{Id: 1, Title: "Turmeric trial", Authors: StringList{"A. Rao", "B. Iyer"}, Institution: "AIIA"},
		{Id: 2, Title: "Ashwagandha review", Authors: StringList{"C. Das"}, Institution: "BHU"},
	}
	got := Filter(papers, "iyer")
	if len(got) != 1 || got[0].Id != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestContactFilter(t *testing.T) {
	subs := []*ContactSubmission{
		{Id: 1, Name: "Asha", Email: "asha@example.com", Subject: "Hello", Message: "collab?", ContactType: "collaboration", Status: ContactPending},
		{Id: 2, Name: "Ravi", Email: "ravi@example.com", Subject: "Bug", Message: "page broken", ContactType: "technical", Status: ContactResolved},
		{Id: 3, Name: "Meera", Email: "meera@example.com", Subject: "Paper", Organization: "AIIMS", ContactType: "research", Status: ContactPending},
	}

	if got := (ContactFilter{Status: "all", Type: "all"}).Apply(subs); len(got) != 3 {
		t.Fatalf("expected all submissions, got %d", len(got))
	}
	if got := (ContactFilter{Status: ContactPending}).Apply(subs); len(got) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(got))
	}
	if got := (ContactFilter{Status: ContactPending, Type: "research"}).Apply(subs); len(got) != 1 || got[0].Id != 3 {
		t.Fatalf("unexpected pending research: %+v", got)
	}
	if got := (ContactFilter{Term: "aiims"}).Apply(subs); len(got) != 1 || got[0].Id != 3 {
		t.Fatalf("organization search failed: %+v", got)
	}
	if got := (ContactFilter{Term: "broken"}).Apply(subs); len(got) != 1 || got[0].Id != 2 {
		t.Fatalf("message search failed: %+v", got)
	}

	stats := SummarizeContacts(subs)
	if stats.Total != 3 || stats.Pending != 2 || stats.Resolved != 1 || stats.InProgress != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSubscriptionFilterAndStats(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	subs := []*NewsletterSubscription{
		{Id: 1, Email: "one@example.com", IsActive: true, SubscribedAt: Timestamp{now.AddDate(0, 0, -3)}},
		{Id: 2, Email: "two@example.com", IsActive: false, SubscribedAt: Timestamp{now.AddDate(0, -2, 0)}},
		{Id: 3, Email: "three@example.org", IsActive: true, SubscribedAt: Timestamp{now.AddDate(-1, 0, 0)}},
	}

	if got := (SubscriptionFilter{Status: "active"}).Apply(subs); len(got) != 2 {
		t.Fatalf("expected 2 active, got %d", len(got))
	}
	if got := (SubscriptionFilter{Status: "inactive"}).Apply(subs); len(got) != 1 || got[0].Id != 2 {
		t.Fatalf("unexpected inactive: %+v", got)
	}
	if got := (SubscriptionFilter{Status: "active", Term: ".org"}).Apply(subs); len(got) != 1 || got[0].Id != 3 {
		t.Fatalf("unexpected search result: %+v", got)
	}

	stats := SummarizeSubscriptions(subs, now)
	want := SubscriptionStats{Total: 3, Active: 2, Inactive: 1, ThisMonth: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestStringListDecodesArrayAndString(t *testing.T) {
	var fromArray struct {
		Authors StringList `json:"authors"`
	}
	if err := json.Unmarshal([]byte(`{"authors":["A","B"]}`), &fromArray); err != nil {
		t.Fatalf("array: %v", err)
	}
	if fromArray.Authors.Join() != "A, B" {
		t.Fatalf("unexpected join: %q", fromArray.Authors.Join())
	}

	var fromString struct {
		Authors StringList `json:"authors"`
	}
	if err := json.Unmarshal([]byte(`{"authors":"A, B,,C "}`), &fromString); err != nil {
		t.Fatalf("string: %v", err)
	}
	if len(fromString.Authors) != 3 || fromString.Authors[2] != "C" {
		t.Fatalf("unexpected split: %#v", fromString.Authors)
	}
}

func TestTimestampLayouts(t *testing.T) {
	for _, s := range []string{"2024-03-05T10:20:30Z", "2024-03-05T10:20:30.1234567", "2024-03-05T10:20:30", "2024-03-05"} {
		ts, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 5 {
			t.Fatalf("%s parsed as %v", s, ts.Time)
		}
	}
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected error for garbage timestamp")
	}
	if got := DateOnly("2024-03-05T00:00:00"); got != "2024-03-05" {
		t.Fatalf("DateOnly = %q", got)
	}
}

func TestSummarizeBooksKeepsFirstFive(t *testing.T) {
	var books []*Book
	for i := 1; i <= 7; i++ {
		books = append(books, &Book{Id: int64(i), TotalChapters: i})
	}
	stats := SummarizeBooks(books)
	if stats.TotalBooks != 7 || stats.TotalChapters != 28 || len(stats.Recent) != 5 || stats.Recent[0].Id != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
