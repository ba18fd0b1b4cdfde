package httputil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/daygrid/pkg/buildinfo"
	"github.com/matzehuels/daygrid/pkg/cache"
	"github.com/matzehuels/daygrid/pkg/errors"
)

// MaxFeedBytes bounds the size of a downloaded feed.
const MaxFeedBytes = 16 << 20

const requestTimeout = 30 * time.Second

// Client downloads feeds with caching and retries.
type Client struct {
	http  *http.Client
	cache cache.Cache
	ttl   time.Duration
}

// NewClient creates a Client that stores bodies in c for ttl.
// A nil cache disables caching.
func NewClient(c cache.Cache, ttl time.Duration) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:  NewHTTPClient(),
		cache: c,
		ttl:   ttl,
	}
}

// NewHTTPClient returns the http.Client used for feed downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// IsURL reports whether path names a remote feed.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FeedKey is the cache key for the body of url.
func FeedKey(url string) string {
	return "feed:" + cache.Hash([]byte(url))
}

// Fetch returns the body of url, from cache unless refresh is set.
func (c *Client) Fetch(ctx context.Context, url string, refresh bool) ([]byte, error) {
	key := FeedKey(url)
	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			return data, nil
		}
	}

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, err = c.get(ctx, url)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "fetch %s", url)
		}
		return nil, err
	}

	_ = c.cache.Set(ctx, key, data, c.ttl)
	return data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid feed url")
	}
	req.Header.Set("Accept", "text/calendar, */*;q=0.5")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url))
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFeedBytes+1))
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url))
	}
	if len(data) > MaxFeedBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "feed %s exceeds %d bytes", url, MaxFeedBytes)
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "feed %s not found", url)
	case code >= 500 || code == http.StatusTooManyRequests:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code))
	default:
		return errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code)
	}
}
