package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/raphi011/brws/internal/httpclient"
	"github.com/raphi011/brws/internal/log"
)

// DefaultBaseURL is the github.com API endpoint.
const DefaultBaseURL = "https://api.github.com"

// EnterpriseBaseURL returns the API endpoint of a GitHub Enterprise host.
func EnterpriseBaseURL(host string) string {
	return "https://" + host + "/api/v3"
}

// memoTTL bounds how long a GET response is reused within one client.
const memoTTL = time.Minute

// Client is a minimal GitHub REST API client.
// Successful GET responses are memoized per URL for the client's lifetime.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	memo    *cache.Cache
}

// NewClient creates a client for baseURL. An empty token sends unauthenticated
// requests; a non-empty proxy routes all requests through it.
func NewClient(baseURL, token, proxy string) (*Client, error) {
	hc, err := httpclient.New(proxy, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return NewClientWithHTTP(baseURL, token, hc), nil
}

// NewClientWithHTTP creates a client using hc as is.
func NewClientWithHTTP(baseURL, token string, hc *http.Client) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		http:    hc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: headers,
		memo:    cache.New(memoTTL, 2*memoTTL),
	}
}

// get performs a GET on path with query and JSON-decodes the response into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if body, ok := c.memo.Get(u); ok {
		log.FromContext(ctx).Debug("github api memo hit", "url", u)
		return json.Unmarshal(body.([]byte), v)
	}

	body, err := c.doRequest(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u, err)
	}
	c.memo.Set(u, body, cache.DefaultExpiration)
	return nil
}

func (c *Client) doRequest(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", u, err)
	}
	log.FromContext(ctx).Debug("github api", "url", u, "status", resp.StatusCode, "took", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Msg: errorMessage(body)}
	}
	return body, nil
}

// errorMessage extracts "message" from a GitHub error body, falling back to the raw text.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(bytes.TrimSpace(body))
}
