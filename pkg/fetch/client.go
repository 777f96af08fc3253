package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/radarpautas/radar/pkg/config"
)

// response is the transport-level outcome of one HTTP execution.
type response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Latency    time.Duration
}

// conditional carries validators from the latest snapshot of the same URL.
type conditional struct {
	ETag         string
	LastModified string
}

func newHTTPClient(guard *Guard) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        64,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     60 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			// Redirect targets go through the same guard as the seed URL.
			return guard.Check(req.Context(), req.URL.String())
		},
	}
}

// doHTTP runs one request for the FEED/HTML/API/SPA_API/PDF strategies.
// SPA_API profiles may override method, body and headers via the profile's
// spa_api_request contract.
func (s *Service) doHTTP(ctx context.Context, p *config.SourceProfile, rawURL string, cond conditional) (*response, error) {
	method := http.MethodGet
	var body io.Reader
	if p.Strategy == config.StrategySPAAPI {
		if r := p.Metadata.SPAAPIRequest; r != nil {
			if r.Method != "" {
				method = strings.ToUpper(r.Method)
			}
			if r.Body != "" {
				body = strings.NewReader(r.Body)
			}
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(p.Limits.TimeoutS)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, rawURL, body)
	if err != nil {
		return nil, classified(ClassConnect, err)
	}
	req.Header.Set("User-Agent", config.InstitutionalUA)
	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}
	if p.Strategy == config.StrategySPAAPI {
		if r := p.Metadata.SPAAPIRequest; r != nil {
			for k, v := range r.Headers {
				req.Header.Set(k, v)
			}
		}
	}
	if cond.ETag != "" {
		req.Header.Set("If-None-Match", cond.ETag)
	}
	if cond.LastModified != "" {
		req.Header.Set("If-Modified-Since", cond.LastModified)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength > p.Limits.MaxBytes {
		return nil, classified(ClassMaxBytes, fmt.Errorf("content-length %d > %d", resp.ContentLength, p.Limits.MaxBytes))
	}

	data, err := readBounded(resp.Body, p.Limits.MaxBytes)
	if err != nil {
		return nil, err
	}

	return &response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       data,
		Latency:    time.Since(start),
	}, nil
}

// readBounded reads at most maxBytes; one extra byte detects overflow.
func readBounded(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, classified(ClassMaxBytes, fmt.Errorf("body exceeds %d bytes", maxBytes))
	}
	return data, nil
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
