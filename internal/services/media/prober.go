package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultProbeTimeout bounds a single probe when none is configured
const DefaultProbeTimeout = 10 * time.Second

// HTTPProber issues a HEAD request and expects exactly 200 OK.
// Servers that refuse HEAD are retried once with GET; the body is not read.
type HTTPProber struct {
	client    *http.Client
	userAgent string
}

// Ensure HTTPProber implements Prober interface
var _ Prober = (*HTTPProber)(nil)

// ProberOption configures an HTTPProber
type ProberOption func(*HTTPProber)

// WithProbeClient replaces the HTTP client used for probes
func WithProbeClient(client *http.Client) ProberOption {
	return func(p *HTTPProber) {
		if client != nil {
			p.client = client
		}
	}
}

// WithProbeUserAgent sets the User-Agent header sent with probes
func WithProbeUserAgent(userAgent string) ProberOption {
	return func(p *HTTPProber) {
		if userAgent != "" {
			p.userAgent = userAgent
		}
	}
}

func NewHTTPProber(timeout time.Duration, opts ...ProberOption) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	p := &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: "PodcastSync/1.0",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe returns nil when mediaURL answers 200, otherwise a *ProbeError
func (p *HTTPProber) Probe(ctx context.Context, mediaURL string) error {
	u, err := url.Parse(mediaURL)
	if err != nil {
		return &ProbeError{URL: mediaURL, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return &ProbeError{URL: mediaURL, Err: errors.New("not an absolute URL")}
	}

	status, err := p.do(ctx, http.MethodHead, mediaURL)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented) {
		status, err = p.do(ctx, http.MethodGet, mediaURL)
	}
	if err != nil {
		return &ProbeError{URL: mediaURL, Err: err}
	}
	if status != http.StatusOK {
		return &ProbeError{URL: mediaURL, StatusCode: status}
	}
	return nil
}

func (p *HTTPProber) do(ctx context.Context, method, mediaURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, mediaURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "audio/*,video/*,*/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
