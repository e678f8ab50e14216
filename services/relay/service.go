// Package relay proxies a fixed set of audio streams whose upstreams the
// player cannot fetch directly because of cross-origin restrictions.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const userAgent = "SmartTV/1.0"

// ErrUnknownChannel is returned when the LCN is not a known relay channel.
// No upstream request is made in that case.
var ErrUnknownChannel = errors.New("unknown relay channel")

// UpstreamError reports that the upstream fetch for a channel failed.
type UpstreamError struct {
	LCN int
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("channel %d upstream unavailable: %v", e.LCN, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Stream is an open upstream response. The caller owns Body and must close it.
type Stream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64 // -1 when the upstream did not provide one
}

// Service looks up relay channels and opens streaming connections to their
// upstreams. It holds no per-request state; concurrent proxies are
// independent, one upstream connection each.
type Service struct {
	upstreams map[int]string
	client    *http.Client
}

// NewService creates a relay for the given LCN to upstream-URL table. The
// timeout bounds connecting and waiting for response headers; it must not cap
// the whole exchange, since relayed streams are open-ended.
func NewService(upstreams map[int]string, timeout time.Duration) *Service {
	return &Service{
		upstreams: upstreams,
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: timeout,
				}).DialContext,
				ResponseHeaderTimeout: timeout,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// Lookup returns the upstream URL for a relay channel.
func (s *Service) Lookup(lcn int) (string, bool) {
	url, ok := s.upstreams[lcn]
	return url, ok
}

// Proxy opens a streaming GET to the channel's upstream, following redirects.
// It returns ErrUnknownChannel for unmapped LCNs and *UpstreamError when the
// upstream cannot be reached or answers with a non-2xx status.
func (s *Service) Proxy(ctx context.Context, lcn int) (*Stream, error) {
	upstream, ok := s.upstreams[lcn]
	if !ok {
		return nil, ErrUnknownChannel
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstream, nil)
	if err != nil {
		return nil, &UpstreamError{LCN: lcn, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "audio/*,*/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{LCN: lcn, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &UpstreamError{LCN: lcn, Err: fmt.Errorf("upstream returned status %d", resp.StatusCode)}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &Stream{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
	}, nil
}
