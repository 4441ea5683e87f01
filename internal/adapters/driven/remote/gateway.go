package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.SearchGateway = (*Gateway)(nil)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultBaseURL
	DefaultTimeout = 10 * time.Second
)

// HeaderRequestID carries a per-request identifier for log correlation.
const HeaderRequestID = "X-Request-ID"

// Endpoint paths relative to the base URL.
const (
	PathQuery       = "/search/query"
	PathSuggestions = "/search/suggestions"
	PathIndex       = "/search/index"
)

// maxErrorBody bounds how much of a failed response is kept in ServiceError.
const maxErrorBody = 512

// Operation names used in errors and logs.
const (
	opQuery   = "query"
	opSuggest = "suggest"
	opIndex   = "index"
)

// Config holds configuration for the Gateway.
type Config struct {
	// BaseURL is the search service endpoint (default: http://localhost:8080).
	BaseURL string

	// Timeout bounds a single HTTP exchange (default: 10s).
	Timeout time.Duration

	// MaxRequestsPerSecond throttles outbound requests. 0 disables throttling.
	MaxRequestsPerSecond int

	// HTTPClient overrides the client used for requests. Timeout is ignored
	// when it is set.
	HTTPClient *http.Client
}

// Gateway talks to the remote search service over HTTP.
type Gateway struct {
	client   *http.Client
	baseURL  string
	throttle *Throttle
}

// NewGateway creates a new Gateway.
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: base URL %q", domain.ErrInvalidSetting, cfg.BaseURL)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Gateway{
		client:   client,
		baseURL:  strings.TrimRight(u.String(), "/"),
		throttle: NewThrottle(cfg.MaxRequestsPerSecond),
	}, nil
}

// BaseURL returns the normalised base URL.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// ExecuteQuery runs a full-text query. Text is sent as-is, even when empty.
func (g *Gateway) ExecuteQuery(ctx context.Context, text string) ([]string, error) {
	return g.getList(ctx, opQuery, PathQuery, url.Values{"query": {text}})
}

// FetchSuggestions returns suggestions for prefix in service order.
func (g *Gateway) FetchSuggestions(ctx context.Context, prefix string) ([]string, error) {
	return g.getList(ctx, opSuggest, PathSuggestions, url.Values{"prefix": {prefix}})
}

// SubmitDocument indexes a document. Parameters travel in the query string
// and the request body is empty.
func (g *Gateway) SubmitDocument(ctx context.Context, id, content string) error {
	params := url.Values{"docId": {id}, "content": {content}}
	resp, err := g.do(ctx, opIndex, http.MethodPost, PathIndex, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// No response body is required; drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// getList issues a GET and decodes a JSON array response.
func (g *Gateway) getList(ctx context.Context, op, path string, params url.Values) ([]string, error) {
	resp, err := g.do(ctx, op, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	items, err := decodeList(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	return items, nil
}

// do sends a request and maps failures onto the domain error taxonomy.
// On success the caller owns resp.Body.
func (g *Gateway) do(
	ctx context.Context, op, method, path string, params url.Values,
) (*http.Response, error) {
	if err := g.throttle.Wait(ctx); err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("throttle: %w", err)}
	}

	endpoint := g.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		logger.Debug("%s %s failed after %s (request %s): %v",
			method, path, time.Since(start).Round(time.Millisecond), requestID, err)
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	logger.Debug("%s %s -> %d in %s (request %s)",
		method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}

// decodeList decodes a JSON array. String elements are returned as-is;
// any other element is kept as its compact JSON text so that value equality
// still holds for deduplication. A null body yields an empty list.
func decodeList(r io.Reader) ([]string, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := make([]string, 0, len(raw))
	for _, elem := range raw {
		if len(elem) > 0 && elem[0] == '"' {
			var s string
			if err := json.Unmarshal(elem, &s); err != nil {
				return nil, fmt.Errorf("decode response element: %w", err)
			}
			items = append(items, s)
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, elem); err != nil {
			return nil, fmt.Errorf("decode response element: %w", err)
		}
		items = append(items, buf.String())
	}
	return items, nil
}
