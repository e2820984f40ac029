// ABOUTME: Raw content ingestion against the /content/raw endpoint.
// ABOUTME: Forwards title, summary, and text verbatim as a JSON body.

package senso

import (
	"context"
	"errors"
	"net/http"
)

// AddContentRequest is the body for content ingestion.
type AddContentRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Text    string `json:"text"`
}

// AddContentResponse is the ingestion confirmation.
type AddContentResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AddRawContent stores raw text in the knowledge base and returns the
// identifier it was stored under.
func (c *Client) AddRawContent(ctx context.Context, req AddContentRequest) (*AddContentResponse, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.Text == "" {
		return nil, errors.New("text is required")
	}

	var resp AddContentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/content/raw", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
