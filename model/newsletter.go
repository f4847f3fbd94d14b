package model

import "time"

type NewsletterSubscription struct {
	Id             int64      `json:"id"`
	Email          string     `json:"email"`
	IsActive       bool       `json:"isActive"`
	Source         string     `json:"source"`
	SubscribedAt   Timestamp  `json:"subscribedAt"`
	UnsubscribedAt *Timestamp `json:"unsubscribedAt"`
}

// SubscriptionFilter narrows loaded subscriptions by status
// ("all", "active", "inactive") and an email search term.
type SubscriptionFilter struct {
	Term   string
	Status string
}

func (f SubscriptionFilter) Apply(subs []*NewsletterSubscription) []*NewsletterSubscription {
	out := make([]*NewsletterSubscription, 0, len(subs))
	for _, s := range subs {
		switch f.Status {
		case "active":
			if !s.IsActive {
				continue
			}
		case "inactive":
			if s.IsActive {
				continue
			}
		}
		if !MatchAny(f.Term, s.Email) {
			continue
		}
		out = append(out, s)
	}
	return out
}

type SubscriptionStats struct {
	Total     int
	Active    int
	Inactive  int
	ThisMonth int
}

// SummarizeSubscriptions counts subscriptions; ThisMonth uses the calendar
// month of now in now's location.
func SummarizeSubscriptions(subs []*NewsletterSubscription, now time.Time) SubscriptionStats {
	stats := SubscriptionStats{Total: len(subs)}
	for _, s := range subs {
		if s.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		if s.SubscribedAt.IsZero() {
			continue
		}
		at := s.SubscribedAt.In(now.Location())
		if at.Year() == now.Year() && at.Month() == now.Month() {
			stats.ThisMonth++
		}
	}
	return stats
}
