// Package vision is the image-extraction collaborator: it turns a
// photograph of a puzzle into a best-effort 81-character puzzle string.
// The result gets no special trust and goes through the same parsing
// and validation as user-typed text.
package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

// ErrExtract reports that no puzzle could be read from the image. The
// caller must abort the run without invoking the solver.
var ErrExtract = errors.New("sudoku extraction failed")

// Extractor reads a puzzle string from an image file.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}

// HTTPExtractor posts the image to an OCR service and returns the
// service's puzzle string as-is. Transient HTTP failures are retried
// with exponential backoff.
type HTTPExtractor struct {
	client   *resty.Client
	endpoint string
	maxWait  time.Duration
}

// NewHTTPExtractor builds an extractor for the given service endpoint.
func NewHTTPExtractor(endpoint string) *HTTPExtractor {
	return &HTTPExtractor{
		client:   resty.New().SetTimeout(30 * time.Second),
		endpoint: endpoint,
		maxWait:  2 * time.Minute,
	}
}

// Extract uploads the image at imagePath and returns the extracted
// puzzle string. Any terminal failure is wrapped in ErrExtract.
func (e *HTTPExtractor) Extract(ctx context.Context, imagePath string) (string, error) {
	policy := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(e.maxWait),
	), ctx)

	var body string
	op := func() error {
		resp, err := e.client.R().
			SetContext(ctx).
			SetFile("image", imagePath).
			Post(e.endpoint)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 500 {
			return fmt.Errorf("server error: %s", resp.Status())
		}
		if resp.IsError() {
			// the service could not read a grid; retrying won't help
			return backoff.Permanent(fmt.Errorf("%s: %s", resp.Status(), strings.TrimSpace(resp.String())))
		}
		body = strings.TrimSpace(resp.String())
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtract, err)
	}
	if body == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrExtract, e.endpoint)
	}
	return body, nil
}
