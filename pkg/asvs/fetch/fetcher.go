// Package fetch retrieves published ASVS catalog CSV content over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"asvsgen/pkg/asvs"
)

// DefaultTimeout bounds the whole catalog download when no timeout is given.
const DefaultTimeout = 30 * time.Second

const defaultMaxContentSize = 32 << 20 // 32 MiB, far above any catalog CSV

// Fetcher downloads catalog content with a bounded response size.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	maxContentSize int64
}

// New creates a Fetcher with the given request timeout.
// A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client:         &http.Client{Timeout: timeout},
		userAgent:      "asvsgen/1.0",
		maxContentSize: defaultMaxContentSize,
	}
}

// Fetch retrieves the content at urlStr.
// Transport failures and non-200 responses return a *asvs.RetrievalError.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, asvs.NewRetrievalError(urlStr, 0, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, asvs.NewRetrievalError(urlStr, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, asvs.NewRetrievalError(urlStr, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	// Read body with size limit
	limitReader := io.LimitReader(resp.Body, f.maxContentSize+1)
	body, err := io.ReadAll(limitReader)
	if err != nil {
		return nil, asvs.NewRetrievalError(urlStr, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	if int64(len(body)) > f.maxContentSize {
		return nil, asvs.NewRetrievalError(urlStr, resp.StatusCode, fmt.Errorf("content too large (exceeds %d bytes)", f.maxContentSize))
	}

	return body, nil
}
