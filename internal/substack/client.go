package substack

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// UserAgent identifies the reader to the publication.
const UserAgent = "substack-reader/1.0 (+https://github.com/glabrego/substack-reader)"

const (
	maxBodyBytes    = 64 << 20
	maxErrBodyBytes = 4096
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SetLogger enables debug logging of request outcomes.
func (c *Client) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// FetchPosts requests the newest posts and normalizes them. Non-2xx responses
// return *StatusError; network and read failures return *TransportError.
func (c *Client) FetchPosts(ctx context.Context, limit int) ([]Post, error) {
	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", "0")
	q.Set("sort", "new")

	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/posts?"+q.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "list posts request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: "read posts response", Err: err}
	}

	posts, dropped := parsePosts(data, c.baseURL)
	if c.logger != nil {
		c.logger.Debug("posts fetched", "url", req.URL.String(), "bytes", len(data), "posts", len(posts), "dropped", dropped)
	}
	return posts, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
