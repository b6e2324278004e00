// Package httpclient builds the HTTP clients used for API calls and probing.
package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds API requests.
const DefaultTimeout = 10 * time.Second

// New returns a client with the given timeout that routes requests through
// proxy when it is non-empty. An empty proxy means direct connections; the
// environment is not consulted since config already folds in $https_proxy.
func New(proxy string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil

	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", proxy, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy %q: scheme and host are required", proxy)
		}
		transport.Proxy = http.ProxyURL(u)
	}

	return &http.Client{Timeout: timeout, Transport: transport}, nil
}
