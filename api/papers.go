package api

import (
	"context"
	"fmt"

	"vedic-admin/model"
)

func (c *Client) ListResearchPapers(ctx context.Context) ([]*model.ResearchPaper, error) {
	papers := make([]*model.ResearchPaper, 0)
	if err := c.get(ctx, "/ResearchPapers", &papers); err != nil {
		return nil, fmt.Errorf("failed to list research papers: %w", err)
	}
	return papers, nil
}

// GetResearchPaper returns the full record, including contentHtml which the
// list endpoint may omit.
func (c *Client) GetResearchPaper(ctx context.Context, id int64) (*model.ResearchPaper, error) {
	paper := &model.ResearchPaper{}
	if err := c.get(ctx, fmt.Sprintf("/ResearchPapers/%d", id), paper); err != nil {
		return nil, fmt.Errorf("failed to get research paper %d: %w", id, err)
	}
	return paper, nil
}

func (c *Client) CreateResearchPaper(ctx context.Context, in model.ResearchPaperInput) (*model.ResearchPaper, error) {
	paper := &model.ResearchPaper{}
	if err := c.post(ctx, "/ResearchPapers", in, paper); err != nil {
		return nil, fmt.Errorf("failed to create research paper: %w", err)
	}
	return paper, nil
}

func (c *Client) UpdateResearchPaper(ctx context.Context, id int64, in model.ResearchPaperInput) (*model.ResearchPaper, error) {
	paper := &model.ResearchPaper{}
	if err := c.put(ctx, fmt.Sprintf("/ResearchPapers/%d", id), in, paper); err != nil {
		return nil, fmt.Errorf("failed to update research paper %d: %w", id, err)
	}
	return paper, nil
}

func (c *Client) DeleteResearchPaper(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/ResearchPapers/%d", id)); err != nil {
		return fmt.Errorf("failed to delete research paper %d: %w", id, err)
	}
	return nil
}
