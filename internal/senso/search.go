// ABOUTME: Knowledge-base search against the /search endpoint.
// ABOUTME: Query and limit travel as URL query parameters; limit <= 0 is omitted.

package senso

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// SearchResult is one matching knowledge-base entry.
type SearchResult struct {
	ContentID string  `json:"content_id"`
	Title     string  `json:"title"`
	ChunkText string  `json:"chunk_text"`
	Score     float64 `json:"score,omitempty"`
}

// SearchResponse is the remote answer plus its supporting results.
type SearchResponse struct {
	Answer  string         `json:"answer"`
	Results []SearchResult `json:"results"`
}

// Search queries the knowledge base. A limit of zero or less leaves the
// limit parameter off the request entirely.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	if query == "" {
		return nil, errors.New("query is required")
	}

	params := url.Values{}
	params.Set("query", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/search", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
