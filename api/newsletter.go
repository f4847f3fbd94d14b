package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListNewsletterSubscriptions(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	subs := make([]*model.NewsletterSubscription, 0)
	if err := c.get(ctx, "/NewsletterSubscriptions", &subs); err != nil {
		return nil, fmt.Errorf("failed to list newsletter subscriptions: %w", err)
	}
	return subs, nil
}

// UnsubscribeNewsletter marks the subscription inactive; the record is kept.
func (c *Client) UnsubscribeNewsletter(ctx context.Context, id int64) error {
	if err := c.post(ctx, fmt.Sprintf("/NewsletterSubscriptions/%d/unsubscribe", id), nil, nil); err != nil {
		return fmt.Errorf("failed to unsubscribe %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteNewsletterSubscription(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/NewsletterSubscriptions/%d", id)); err != nil {
		return fmt.Errorf("failed to delete newsletter subscription %d: %w", id, err)
	}
	return nil
}
