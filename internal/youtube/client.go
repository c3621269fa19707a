package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/model"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// The platform serves at most 50 items per page regardless of the
	// requested maximum.
	pageSize = 50

	// DefaultMaxResults caps a trending fetch when the caller does not
	// ask for a specific count.
	DefaultMaxResults = 200
)

// ErrMissingAPIKey is returned before any network call when the client
// was built with an empty credential.
var ErrMissingAPIKey = errors.New("youtube: missing API key")

// APIError is a non-2xx response from the platform, carrying enough of
// the body to tell a bad credential from an exhausted quota.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client calls the platform's public data API for a fixed region.
// It holds no mutable state between calls and never retries.
type Client struct {
	apiKey     string
	region     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, region, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{apiKey: apiKey, region: region, baseURL: baseURL, httpClient: httpClient}
}

// FetchTrending returns the region's most-popular videos in trending
// rank order, at most maxResults of them. It pages through the listing
// in full pages and truncates the tail, so the final page may be
// over-fetched. An empty listing yields an empty slice, not an error.
func (c *Client) FetchTrending(ctx context.Context, maxResults int) ([]model.VideoRecord, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	records := []model.VideoRecord{}
	pageToken := ""
	for len(records) < maxResults {
		page, err := c.trendingPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			records = append(records, item.record())
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	if len(records) > maxResults {
		records = records[:maxResults]
	}
	return records, nil
}

func (c *Client) trendingPage(ctx context.Context, pageToken string) (*videoListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", c.region)
	params.Set("maxResults", strconv.Itoa(pageSize))
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var page videoListResponse
	if err := c.get(ctx, "videos", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchCategories returns the region's category id to display name
// mapping. The snapshot is immutable; callers refetch per run rather
// than cache across runs.
func (c *Client) FetchCategories(ctx context.Context) (model.CategoryMap, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("regionCode", c.region)
	params.Set("key", c.apiKey)

	var resp categoryListResponse
	if err := c.get(ctx, "videoCategories", params, &resp); err != nil {
		return nil, err
	}

	categories := make(model.CategoryMap, len(resp.Items))
	for _, item := range resp.Items {
		id, err := strconv.Atoi(item.ID)
		if err != nil {
			return nil, fmt.Errorf("youtube videoCategories: category id %q: %w", item.ID, err)
		}
		categories[id] = item.Snippet.Title
	}
	return categories, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("youtube %s: build request: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube %s: decode response: %w", endpoint, err)
	}
	return nil
}
