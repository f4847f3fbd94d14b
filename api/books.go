package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListBooks(ctx context.Context) ([]*model.Book, error) {
	books := make([]*model.Book, 0)
	if err := c.get(ctx, "/Books", &books); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	book := &model.Book{}
	if err := c.get(ctx, fmt.Sprintf("/Books/%d", id), book); err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return book, nil
}

func (c *Client) CreateBook(ctx context.Context, in model.BookInput) (*model.Book, error) {
	book := &model.Book{}
	if err := c.post(ctx, "/Books", in, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	book := &model.Book{}
	if err := c.put(ctx, fmt.Sprintf("/Books/%d", id), in, book); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/Books/%d", id)); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

// GetBookWithChapters returns the book and all of its chapters.
func (c *Client) GetBookWithChapters(ctx context.Context, id int64) (*model.BookWithChapters, error) {
	book := &model.BookWithChapters{}
	if err := c.get(ctx, fmt.Sprintf("/Books/%d/chapters", id), book); err != nil {
		return nil, fmt.Errorf("failed to get chapters of book %d: %w", id, err)
	}
	if book.Chapters == nil {
		book.Chapters = make([]*model.Chapter, 0)
	}
	return book, nil
}
