package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/pagescope"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFunc is called before each retry with the attempt number about to
// run and the error of the previous one.
type RetryFunc func(url string, attempt int, err error)

// FetchWithRetry fetches url, retrying after each delay in delays. Errors
// with the ENOTFOUND or EINVALID codes are permanent and returned at once.
// A done context stops the retries and its error is returned.
func FetchWithRetry(ctx context.Context, f pagescope.Fetcher, url string, delays []time.Duration, onRetry RetryFunc) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := f.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if attempt >= len(delays) || permanent(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

func permanent(err error) bool {
	switch pagescope.ErrorCode(err) {
	case pagescope.ENOTFOUND, pagescope.EINVALID:
		return true
	}
	return false
}
