// CLAUDE:SUMMARY HTTP(S) word-list source: GET with three attempts and exponential backoff.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxAttempts = 3

// retryBase is the first backoff delay; it doubles on each retry.
var retryBase = time.Second

func init() {
	Register(&httpSource{scheme: "http"})
	Register(&httpSource{scheme: "https"})
}

type httpSource struct {
	scheme string
}

func (s *httpSource) Scheme() string      { return s.scheme }
func (s *httpSource) Description() string { return "word list downloaded over " + s.scheme }

// Open downloads ident with retries. The caller bounds the total time
// through ctx; the returned body streams the list.
func (s *httpSource) Open(ctx context.Context, ident string) (io.ReadCloser, error) {
	client := &http.Client{}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := retryBase << uint(attempt-1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ident, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, ident)
			continue
		}
		return resp.Body, nil
	}
	return nil, fmt.Errorf("download %s failed after %d attempts: %w", ident, maxAttempts, lastErr)
}
