// Package fetch retrieves collections over HTTP(S) with bounded retries.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// Defaults used when a Fetcher field is left zero.
const (
	DefaultAttempts = 3
	DefaultDelay    = 500 * time.Millisecond
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 50 << 20
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Temporary reports whether the request may succeed if repeated.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Fetcher downloads documents. The zero value is usable.
type Fetcher struct {
	// Client performs the requests. Defaults to a client with Timeout.
	Client *http.Client
	// Attempts is the total number of tries, including the first.
	Attempts uint
	// Delay is the base delay between tries; retry-go backs off from it.
	Delay time.Duration
	// Timeout bounds each try when Client is nil.
	Timeout time.Duration
	// MaxBytes caps the size of a response body.
	MaxBytes int64
	// UserAgent is sent with every request when set.
	UserAgent string
}

// IsURL reports whether s looks like an http or https URL.
func IsURL(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Get downloads url. Network errors, 429 and 5xx responses are retried;
// other failures return immediately.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if !IsURL(url) {
		return nil, fmt.Errorf("fetch: unsupported url %q", url)
	}

	var body []byte
	err := retry.Do(
		func() error {
			data, err := f.get(ctx, url)
			if err != nil {
				var se *StatusError
				if errors.As(err, &se) && !se.Temporary() {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = data
			return nil
		},
		retry.Attempts(f.attempts()),
		retry.Delay(f.delay()),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("fetch: %w", err))
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	limit := f.maxBytes()
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: reading body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, retry.Unrecoverable(fmt.Errorf("fetch %s: response exceeds %d bytes", url, limit))
	}
	return data, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (f *Fetcher) attempts() uint {
	if f.Attempts == 0 {
		return DefaultAttempts
	}
	return f.Attempts
}

func (f *Fetcher) delay() time.Duration {
	if f.Delay <= 0 {
		return DefaultDelay
	}
	return f.Delay
}

func (f *Fetcher) maxBytes() int64 {
	if f.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return f.MaxBytes
}
