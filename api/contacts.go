package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	subs := make([]*model.ContactSubmission, 0)
	if err := c.get(ctx, "/ContactSubmissions", &subs); err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return subs, nil
}

func (c *Client) GetContactSubmission(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{}
	if err := c.get(ctx, fmt.Sprintf("/ContactSubmissions/%d", id), sub); err != nil {
		return nil, fmt.Errorf("failed to get contact submission %d: %w", id, err)
	}
	return sub, nil
}

func (c *Client) UpdateContactStatus(ctx context.Context, id int64, status string) error {
	body := model.ContactStatusInput{Status: status}
	if err := c.put(ctx, fmt.Sprintf("/ContactSubmissions/%d", id), body, nil); err != nil {
		return fmt.Errorf("failed to update contact submission %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteContactSubmission(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/ContactSubmissions/%d", id)); err != nil {
		return fmt.Errorf("failed to delete contact submission %d: %w", id, err)
	}
	return nil
}
