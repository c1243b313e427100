// Package probe checks that a launch target answers before a window is
// created for it.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a reachability check.
const DefaultTimeout = 5 * time.Second

// Check verifies that target can be loaded at all: the URL must parse and a
// request must get some HTTP response. Any status code counts as reachable;
// only transport failures (DNS, refused connection, TLS) are reported.
// Non-http schemes are not probed.
func Check(ctx context.Context, target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Broz/probe")

	client := &http.Client{
		// a redirect still means the site answered
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("cannot reach %s: %w", u.Host, uerr.Err)
		}
		return err
	}
	resp.Body.Close()
	return nil
}

// WithTimeout creates a child context with the specified timeout, defaulting to DefaultTimeout when d is not positive.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(parent, d)
}
