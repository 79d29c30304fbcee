package portal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	requestTimeout = 10 * time.Second
	retryCount     = 2
	userAgent      = "empenho-api/1.0 (link audit)"
)

// Client probes transparency portal detail links during audits.
type Client interface {
	CheckLink(ctx context.Context, url string) (int, error)
}

// HTTPClient is a resty-backed implementation of Client.
type HTTPClient struct {
	httpClient *resty.Client
}

// NewClient builds a portal client with audit-friendly timeouts and retries.
func NewClient() *HTTPClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("User-Agent", userAgent).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount)

	return &HTTPClient{httpClient: restyClient}
}

// CheckLink issues a HEAD request against the given URL and returns the
// response status code. Portals that reject HEAD are probed again with GET.
// A transport failure returns a zero status and the underlying error.
func (c *HTTPClient) CheckLink(ctx context.Context, url string) (int, error) {
	resp, err := c.httpClient.R().SetContext(ctx).Head(url)
	if err != nil {
		return 0, fmt.Errorf("check link %s: %w", url, err)
	}

	status := resp.StatusCode()
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		resp, err = c.httpClient.R().SetContext(ctx).Get(url)
		if err != nil {
			return 0, fmt.Errorf("check link %s: %w", url, err)
		}
		status = resp.StatusCode()
	}

	return status, nil
}
