package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListTheses(ctx context.Context) ([]*model.Thesis, error) {
	theses := make([]*model.Thesis, 0)
	if err := c.get(ctx, "/Thesis", &theses); err != nil {
		return nil, fmt.Errorf("failed to list thesis: %w", err)
	}
	return theses, nil
}

func (c *Client) GetThesis(ctx context.Context, id int64) (*model.Thesis, error) {
	thesis := &model.Thesis{}
	if err := c.get(ctx, fmt.Sprintf("/Thesis/%d", id), thesis); err != nil {
		return nil, fmt.Errorf("failed to get thesis %d: %w", id, err)
	}
	return thesis, nil
}

func (c *Client) CreateThesis(ctx context.Context, in model.ThesisInput) (*model.Thesis, error) {
	thesis := &model.Thesis{}
	if err := c.post(ctx, "/Thesis", in, thesis); err != nil {
		return nil, fmt.Errorf("failed to create thesis: %w", err)
	}
	return thesis, nil
}

func (c *Client) UpdateThesis(ctx context.Context, id int64, in model.ThesisInput) (*model.Thesis, error) {
	thesis := &model.Thesis{}
	if err := c.put(ctx, fmt.Sprintf("/Thesis/%d", id), in, thesis); err != nil {
		return nil, fmt.Errorf("failed to update thesis %d: %w", id, err)
	}
	return thesis, nil
}

func (c *Client) DeleteThesis(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/Thesis/%d", id)); err != nil {
		return fmt.Errorf("failed to delete thesis %d: %w", id, err)
	}
	return nil
}
