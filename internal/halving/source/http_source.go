// Package source provides block height oracles for the halving tracker.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/halving-countdown/pkg/safe"
)

// DefaultTipHeightURL returns the tip height as a bare JSON integer.
const DefaultTipHeightURL = "https://mempool.space/api/blocks/tip/height"

const maxHeightBodySize = 64

var (
	// ErrUnexpectedStatus is returned for non-2xx oracle responses.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedHeight is returned when the body is not a single JSON integer.
	ErrMalformedHeight = errors.New("malformed tip height")
)

// HTTPSource fetches the tip height from a REST endpoint.
type HTTPSource struct {
	client HTTPDoer
	url    string
}

// NewHTTPSource builds an HTTPSource.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if url == "" {
		url = DefaultTipHeightURL
	}
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// LatestHeight requests the tip height.
func (s *HTTPSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get tip height: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("get tip height: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	height, err := decodeHeight(io.LimitReader(resp.Body, maxHeightBodySize))
	if err != nil {
		return 0, err
	}
	return height, nil
}

// decodeHeight reads exactly one non-null JSON integer from r.
func decodeHeight(r io.Reader) (uint64, error) {
	dec := json.NewDecoder(r)

	var height *int64
	if err := dec.Decode(&height); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedHeight, err)
	}
	if height == nil {
		return 0, fmt.Errorf("%w: null", ErrMalformedHeight)
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: trailing data %v", ErrMalformedHeight, tok)
	}

	h, err := safe.Uint64(*height)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedHeight, err)
	}
	return h, nil
}
