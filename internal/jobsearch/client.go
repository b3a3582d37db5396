// Package jobsearch provides a best-effort client for the external
// job-search provider. Failures never propagate as errors: the client
// returns an empty listing slice so the stored-pool ranking path is
// never blocked.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/types"
)

// defaultTimeout bounds a single provider request.
const defaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of the provider response is read.
const maxResponseBytes = 4 << 20

// Client queries the external job-search provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	logger     *zap.Logger
}

// New creates a search client. A nil logger disables search logs.
func New(baseURL, apiKey, apiHost string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
		logger:     logger,
	}
}

// searchResponse mirrors the provider's payload envelope.
type searchResponse struct {
	Data []struct {
		ID             string   `json:"job_id"`
		Title          string   `json:"job_title"`
		Company        string   `json:"employer_name"`
		Location       string   `json:"job_location"`
		Description    string   `json:"job_description"`
		RequiredSkills []string `json:"job_required_skills"`
		URL            string   `json:"job_apply_link"`
		PostedDate     string   `json:"job_posted_at"`
	} `json:"data"`
}

// Search queries the provider for listings matching the keywords and
// location, up to limit. It is best-effort: any transport, status,
// schema or decode failure yields an empty slice and a warning log,
// never an error.
func (c *Client) Search(ctx context.Context, keywords, location string, limit int) []types.Listing {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("query", keywords)
	if location != "" {
		q.Set("location", location)
	}
	if limit > 0 {
		q.Set("num_pages", "1")
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode()), nil)
	if err != nil {
		c.logger.Warn("job search request build failed", zap.Error(err))
		return []types.Listing{}
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("job search request failed", zap.Error(err))
		return []types.Listing{}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("job search provider returned non-200", zap.Int("status", resp.StatusCode))
		return []types.Listing{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Warn("job search response read failed", zap.Error(err))
		return []types.Listing{}
	}

	if err := validatePayload(body); err != nil {
		c.logger.Warn("job search payload failed schema validation", zap.Error(err))
		return []types.Listing{}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("job search payload decode failed", zap.Error(err))
		return []types.Listing{}
	}

	listings := make([]types.Listing, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		if limit > 0 && len(listings) >= limit {
			break
		}
		listings = append(listings, types.Listing{
			ID:             item.ID,
			Title:          item.Title,
			Company:        item.Company,
			Location:       item.Location,
			Description:    StripHTML(item.Description),
			RequiredSkills: item.RequiredSkills,
			URL:            item.URL,
			PostedDate:     item.PostedDate,
		})
	}

	c.logger.Info("job search completed",
		zap.String("keywords", keywords), zap.Int("listings", len(listings)))
	return listings
}
