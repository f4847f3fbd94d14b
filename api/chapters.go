package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

type bookChapterPayload struct {
	model.ChapterInput
	BookId int64 `json:"bookId"`
}

type textbookChapterPayload struct {
	model.ChapterInput
	TextbookId int64 `json:"textbookId"`
}

func (c *Client) GetChapter(ctx context.Context, id int64) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	if err := c.get(ctx, fmt.Sprintf("/Chapters/%d", id), chapter); err != nil {
		return nil, fmt.Errorf("failed to get chapter %d: %w", id, err)
	}
	return chapter, nil
}

// CreateChapter adds a chapter to the book bookId.
func (c *Client) CreateChapter(ctx context.Context, bookId int64, in model.ChapterInput) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	payload := bookChapterPayload{ChapterInput: in, BookId: bookId}
	if err := c.post(ctx, "/Chapters", payload, chapter); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return chapter, nil
}

func (c *Client) UpdateChapter(ctx context.Context, id int64, in model.ChapterInput) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	if err := c.put(ctx, fmt.Sprintf("/Chapters/%d", id), in, chapter); err != nil {
		return nil, fmt.Errorf("failed to update chapter %d: %w", id, err)
	}
	return chapter, nil
}

func (c *Client) DeleteChapter(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/Chapters/%d", id)); err != nil {
		return fmt.Errorf("failed to delete chapter %d: %w", id, err)
	}
	return nil
}

func (c *Client) GetTextbookChapter(ctx context.Context, id int64) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	if err := c.get(ctx, fmt.Sprintf("/TextbookChapters/%d", id), chapter); err != nil {
		return nil, fmt.Errorf("failed to get textbook chapter %d: %w", id, err)
	}
	return chapter, nil
}

// CreateTextbookChapter adds a chapter to the textbook textbookId.
func (c *Client) CreateTextbookChapter(ctx context.Context, textbookId int64, in model.ChapterInput) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	payload := textbookChapterPayload{ChapterInput: in, TextbookId: textbookId}
	if err := c.post(ctx, "/TextbookChapters", payload, chapter); err != nil {
		return nil, fmt.Errorf("failed to create textbook chapter: %w", err)
	}
	return chapter, nil
}

func (c *Client) UpdateTextbookChapter(ctx context.Context, id int64, in model.ChapterInput) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	if err := c.put(ctx, fmt.Sprintf("/TextbookChapters/%d", id), in, chapter); err != nil {
		return nil, fmt.Errorf("failed to update textbook chapter %d: %w", id, err)
	}
	return chapter, nil
}

func (c *Client) DeleteTextbookChapter(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/TextbookChapters/%d", id)); err != nil {
		return fmt.Errorf("failed to delete textbook chapter %d: %w", id, err)
	}
	return nil
}
