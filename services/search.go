package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"courtroom/apperrors"
)

const searchResultLimit = 5

// Searcher returns ranked result URLs for a keyword query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// SearchClient talks to the Google Custom Search JSON API.
type SearchClient struct {
	APIKey   string
	EngineId string
	URL      string
	client   *http.Client
}

func NewSearchClient(apiKey, engineId string, client *http.Client) *SearchClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &SearchClient{
		APIKey:   apiKey,
		EngineId: engineId,
		URL:      "https://www.googleapis.com/customsearch/v1",
		client:   client,
	}
}

// Search issues the query and returns the result links in ranked order.
func (c *SearchClient) Search(ctx context.Context, query string) ([]string, error) {
	if c.APIKey == "" || c.EngineId == "" {
		return nil, fmt.Errorf("search API key or engine id: %w", apperrors.ErrConfigMissing)
	}

	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("cx", c.EngineId)
	params.Set("q", query)
	params.Set("num", fmt.Sprintf("%d", searchResultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w: %w", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API error (%d): %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	var responseData struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w: %w", apperrors.ErrMalformedResponse, err)
	}
	if len(responseData.Items) == 0 {
		return nil, fmt.Errorf("search response has no results: %w", apperrors.ErrMalformedResponse)
	}

	links := make([]string, 0, len(responseData.Items))
	for _, item := range responseData.Items {
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
