package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListTextbooks(ctx context.Context) ([]*model.Textbook, error) {
	textbooks := make([]*model.Textbook, 0)
	if err := c.get(ctx, "/Textbooks", &textbooks); err != nil {
		return nil, fmt.Errorf("failed to list textbooks: %w", err)
	}
	return textbooks, nil
}

func (c *Client) GetTextbook(ctx context.Context, id int64) (*model.Textbook, error) {
	textbook := &model.Textbook{}
	if err := c.get(ctx, fmt.Sprintf("/Textbooks/%d", id), textbook); err != nil {
		return nil, fmt.Errorf("failed to get textbook %d: %w", id, err)
	}
	return textbook, nil
}

func (c *Client) CreateTextbook(ctx context.Context, in model.TextbookInput) (*model.Textbook, error) {
	textbook := &model.Textbook{}
	if err := c.post(ctx, "/Textbooks", in, textbook); err != nil {
		return nil, fmt.Errorf("failed to create textbook: %w", err)
	}
	return textbook, nil
}

func (c *Client) UpdateTextbook(ctx context.Context, id int64, in model.TextbookInput) (*model.Textbook, error) {
	textbook := &model.Textbook{}
	if err := c.put(ctx, fmt.Sprintf("/Textbooks/%d", id), in, textbook); err != nil {
		return nil, fmt.Errorf("failed to update textbook %d: %w", id, err)
	}
	return textbook, nil
}

func (c *Client) DeleteTextbook(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/Textbooks/%d", id)); err != nil {
		return fmt.Errorf("failed to delete textbook %d: %w", id, err)
	}
	return nil
}

func (c *Client) GetTextbookWithChapters(ctx context.Context, id int64) (*model.TextbookWithChapters, error) {
	textbook := &model.TextbookWithChapters{}
	if err := c.get(ctx, fmt.Sprintf("/Textbooks/%d/chapters", id), textbook); err != nil {
		return nil, fmt.Errorf("failed to get chapters of textbook %d: %w", id, err)
	}
	if textbook.Chapters == nil {
		textbook.Chapters = make([]*model.Chapter, 0)
	}
	return textbook, nil
}
