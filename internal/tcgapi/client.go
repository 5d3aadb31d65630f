package tcgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cardvault/catalogsync/internal/logger"
	"github.com/cardvault/catalogsync/internal/metrics"
)

// UpstreamError reports a non-success response from the catalog API.
// It is fatal for the whole fetch: no partial pagination results survive it.
type UpstreamError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog %s fetch failed: status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// Client fetches paginated resource collections from the external card
// catalog API. Fetches are restartable: each call pages the collection
// from the beginning.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	retry    PageRetry
	http     *http.Client
}

// NewClient creates a catalog client. apiKey may be empty; when set it is
// sent as the X-Api-Key header on every page request.
func NewClient(baseURL, apiKey string, pageSize int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		retry:    NoRetry,
		http:     &http.Client{Timeout: timeout},
	}
}

// WithRetry returns a copy of the client that applies the given retry
// policy to individual page requests. The zero policy means no retry.
func (c *Client) WithRetry(retry PageRetry) *Client {
	clone := *c
	clone.retry = retry
	return &clone
}

// FetchAllSets returns every set the catalog reports, in the catalog's
// native order.
func (c *Client) FetchAllSets(ctx context.Context) ([]SetDTO, error) {
	return fetchAllPages[SetDTO](ctx, c, ResourceSets, nil)
}

// FetchAllCardsForSet returns every card belonging to the given set, in
// the catalog's native order.
func (c *Client) FetchAllCardsForSet(ctx context.Context, setID string) ([]CardDTO, error) {
	query := url.Values{}
	query.Set("q", "set.id:"+setID)
	return fetchAllPages[CardDTO](ctx, c, ResourceCards, query)
}

// fetchAllPages pages a collection endpoint until a short or empty page,
// accumulating every record. Any page failure aborts the whole fetch.
func fetchAllPages[T any](ctx context.Context, c *Client, resource string, query url.Values) ([]T, error) {
	var all []T
	for pageNum := 1; ; pageNum++ {
		batch, err := fetchPage[T](ctx, c, resource, query, pageNum)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		all = append(all, batch...)
		if len(batch) < c.pageSize {
			break
		}
	}
	return all, nil
}

// fetchPage issues a single page request under the client's retry policy.
func fetchPage[T any](ctx context.Context, c *Client, resource string, query url.Values, pageNum int) ([]T, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("page", strconv.Itoa(pageNum))
	q.Set("pageSize", strconv.Itoa(c.pageSize))

	pageURL := c.baseURL + "/" + resource + "?" + q.Encode()

	var body []byte
	err := c.retry.Do(ctx, func() (bool, error) {
		var retryable bool
		var err error
		body, retryable, err = c.getPage(ctx, resource, pageURL)
		return retryable, err
	})
	if err != nil {
		return nil, err
	}

	var envelope page[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamError{Resource: resource, StatusCode: http.StatusOK, Body: "malformed payload: " + err.Error()}
	}

	metrics.CatalogPagesFetched.WithLabelValues(resource).Inc()
	logger.FromContext(ctx).Debug(LogMsgPageFetched,
		"resource", resource,
		"page", pageNum,
		"records", len(envelope.Data))

	return envelope.Data, nil
}

// getPage performs one HTTP GET. The boolean result tells the retry policy
// whether the failure is worth retrying (transport errors and 5xx only).
func (c *Client) getPage(ctx context.Context, resource, pageURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(HeaderAPIKey, c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("catalog %s fetch: %w", resource, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, true, fmt.Errorf("catalog %s fetch: reading body: %w", resource, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, res.StatusCode >= 500, &UpstreamError{
			Resource:   resource,
			StatusCode: res.StatusCode,
			Body:       string(body),
		}
	}

	return body, false, nil
}
