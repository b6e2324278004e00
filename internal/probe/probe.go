// Package probe picks the first reachable URL out of a list of guesses.
//
// Probing is best effort: request failures, timeouts and non-200 responses
// all mean "not available", never an error.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/raphi011/brws/internal/httpclient"
	"github.com/raphi011/brws/internal/log"
)

// Timeout bounds each HEAD request.
const Timeout = 5 * time.Second

// Prober issues HEAD requests through an optional proxy.
type Prober struct {
	client *http.Client
}

// New returns a Prober using proxy. An invalid proxy yields a Prober whose
// FirstAvailable always returns the fallback.
func New(proxy string) *Prober {
	client, err := httpclient.New(proxy, Timeout)
	if err != nil {
		return &Prober{}
	}
	return &Prober{client: client}
}

// FirstAvailable returns the first candidate answering a HEAD request with
// 200 OK, or fallback when none does.
func (p *Prober) FirstAvailable(ctx context.Context, candidates []string, fallback string) string {
	if p == nil || p.client == nil {
		return fallback
	}

	logger := log.FromContext(ctx)
	for _, u := range candidates {
		if p.available(ctx, u) {
			logger.Debug("probe hit", "url", u)
			return u
		}
		logger.Debug("probe miss", "url", u)
	}
	return fallback
}

func (p *Prober) available(ctx context.Context, u string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
