package feeds

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostThrottle keeps feed downloads from the same publisher at least one
// interval apart. Feeds on one host share a bucket whatever their path,
// scheme casing or explicit default port.
type HostThrottle struct {
	interval time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostThrottle spaces requests per host by interval. A zero or negative
// interval disables throttling.
func NewHostThrottle(interval time.Duration) *HostThrottle {
	return &HostThrottle{
		interval: interval,
		hosts:    make(map[string]*rate.Limiter),
	}
}

// Wait blocks until feedURL's host may be requested again or ctx is done
func (t *HostThrottle) Wait(ctx context.Context, feedURL string) error {
	key, err := hostKey(feedURL)
	if err != nil {
		return err
	}
	if t.interval <= 0 {
		return ctx.Err()
	}
	return t.limiter(key).Wait(ctx)
}

func (t *HostThrottle) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.hosts[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(t.interval), 1)
		t.hosts[key] = l
	}
	return l
}

// Hosts reports how many distinct hosts have been throttled
func (t *HostThrottle) Hosts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.hosts)
}

// hostKey lowercases the host and drops a port that matches the scheme default
func hostKey(feedURL string) (string, error) {
	u, err := url.Parse(feedURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", &url.Error{Op: "parse", URL: feedURL, Err: errors.New("missing host in URL")}
	}

	host := strings.ToLower(u.Hostname())
	port := u.Port()
	switch {
	case port == "":
		return host, nil
	case port == "80" && strings.EqualFold(u.Scheme, "http"),
		port == "443" && strings.EqualFold(u.Scheme, "https"):
		return host, nil
	}
	return net.JoinHostPort(host, port), nil
}
