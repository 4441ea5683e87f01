package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-remote/internal/core/domain"
)

// recordedRequest captures what the fake service saw.
type recordedRequest struct {
	Method    string
	Path      string
	Query     map[string][]string
	RawQuery  string
	RequestID string
	BodyLen   int64
}

// fakeService is a minimal stand-in for the remote search service.
type fakeService struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.Query(),
		RawQuery:  r.URL.RawQuery,
		RequestID: r.Header.Get(HeaderRequestID),
		BodyLen:   r.ContentLength,
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeService) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newTestGateway(t *testing.T, svc *fakeService) *Gateway {
	t.Helper()
	server := httptest.NewServer(svc)
	t.Cleanup(server.Close)

	g, err := NewGateway(Config{BaseURL: server.URL})
	require.NoError(t, err)
	return g
}

func TestNewGateway_Defaults(t *testing.T) {
	g, err := NewGateway(Config{})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", g.BaseURL())
	assert.Equal(t, DefaultTimeout, g.client.Timeout)
	assert.False(t, g.throttle.Enabled())
}

func TestNewGateway_TrimsTrailingSlash(t *testing.T) {
	g, err := NewGateway(Config{BaseURL: "http://search.local:9000/api/"})

	require.NoError(t, err)
	assert.Equal(t, "http://search.local:9000/api", g.BaseURL())
}

func TestNewGateway_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"localhost:8080", "ftp://host", "http://", "://bad"} {
		t.Run(base, func(t *testing.T) {
			_, err := NewGateway(Config{BaseURL: base})
			assert.ErrorIs(t, err, domain.ErrInvalidSetting)
		})
	}
}

func TestGateway_ExecuteQuery(t *testing.T) {
	svc := &fakeService{body: `["a","b","a","c","b"]`}
	g := newTestGateway(t, svc)

	results, err := g.ExecuteQuery(context.Background(), "red fox")

	require.NoError(t, err)
	// The gateway does not deduplicate
	assert.Equal(t, []string{"a", "b", "a", "c", "b"}, results)

	reqs := svc.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/search/query", reqs[0].Path)
	assert.Equal(t, []string{"red fox"}, reqs[0].Query["query"])
	_, err = uuid.Parse(reqs[0].RequestID)
	assert.NoError(t, err, "request ID should be a UUID")
}

func TestGateway_ExecuteQuery_EmptyTextPassedThrough(t *testing.T) {
	svc := &fakeService{body: `[]`}
	g := newTestGateway(t, svc)

	results, err := g.ExecuteQuery(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, results)
	reqs := svc.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "query=", reqs[0].RawQuery)
}

func TestGateway_ExecuteQuery_EncodesSpecialCharacters(t *testing.T) {
	svc := &fakeService{body: `[]`}
	g := newTestGateway(t, svc)

	_, err := g.ExecuteQuery(context.Background(), "a&b=c #d")

	require.NoError(t, err)
	assert.Equal(t, []string{"a&b=c #d"}, svc.Requests()[0].Query["query"])
}

func TestGateway_ExecuteQuery_NonStringItems(t *testing.T) {
	svc := &fakeService{body: `[{"id": 1}, 2, "x", {"id":1}, null]`}
	g := newTestGateway(t, svc)

	results, err := g.ExecuteQuery(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, []string{`{"id":1}`, "2", "x", `{"id":1}`, "null"}, results)
}

func TestGateway_ExecuteQuery_NullBody(t *testing.T) {
	svc := &fakeService{body: `null`}
	g := newTestGateway(t, svc)

	results, err := g.ExecuteQuery(context.Background(), "q")

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGateway_ExecuteQuery_MalformedBody(t *testing.T) {
	svc := &fakeService{body: `{"not":"an array"}`}
	g := newTestGateway(t, svc)

	_, err := g.ExecuteQuery(context.Background(), "q")

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
}

func TestGateway_ServiceError(t *testing.T) {
	svc := &fakeService{status: http.StatusInternalServerError, body: "  index unavailable \n"}
	g := newTestGateway(t, svc)

	_, err := g.ExecuteQuery(context.Background(), "q")

	require.Error(t, err)
	var serviceErr *domain.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "query", serviceErr.Op)
	assert.Equal(t, 500, serviceErr.StatusCode)
	assert.Equal(t, "index unavailable", serviceErr.Body)
}

func TestGateway_ServiceError_BodyTruncated(t *testing.T) {
	svc := &fakeService{status: http.StatusBadGateway, body: strings.Repeat("x", 4096)}
	g := newTestGateway(t, svc)

	_, err := g.FetchSuggestions(context.Background(), "ca")

	var serviceErr *domain.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Len(t, serviceErr.Body, maxErrorBody)
}

func TestGateway_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close() // nothing listens any more

	g, err := NewGateway(Config{BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)

	_, err = g.ExecuteQuery(context.Background(), "q")

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.False(t, domain.IsServiceError(err))
}

func TestGateway_CancelledContext(t *testing.T) {
	svc := &fakeService{body: `[]`}
	g := newTestGateway(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.FetchSuggestions(ctx, "ca")

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_FetchSuggestions(t *testing.T) {
	svc := &fakeService{body: `["cat","catalog","cab"]`}
	g := newTestGateway(t, svc)

	suggestions, err := g.FetchSuggestions(context.Background(), "ca")

	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "catalog", "cab"}, suggestions)
	reqs := svc.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/search/suggestions", reqs[0].Path)
	assert.Equal(t, []string{"ca"}, reqs[0].Query["prefix"])
}

func TestGateway_SubmitDocument(t *testing.T) {
	svc := &fakeService{}
	g := newTestGateway(t, svc)

	err := g.SubmitDocument(context.Background(), "doc1", "hello world")

	require.NoError(t, err)
	reqs := svc.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/search/index", reqs[0].Path)
	assert.Equal(t, []string{"doc1"}, reqs[0].Query["docId"])
	assert.Equal(t, []string{"hello world"}, reqs[0].Query["content"])
	assert.Equal(t, int64(0), reqs[0].BodyLen)
}

func TestGateway_SubmitDocument_AnyTwoHundred(t *testing.T) {
	svc := &fakeService{status: http.StatusCreated, body: "created"}
	g := newTestGateway(t, svc)

	assert.NoError(t, g.SubmitDocument(context.Background(), "doc1", "x"))
}

func TestGateway_SubmitDocument_Failure(t *testing.T) {
	svc := &fakeService{status: http.StatusInternalServerError}
	g := newTestGateway(t, svc)

	err := g.SubmitDocument(context.Background(), "doc1", "hello")

	require.Error(t, err)
	assert.True(t, domain.IsServiceError(err))
	assert.Equal(t, 500, domain.StatusCode(err))
}

func TestGateway_BasePathPrefix(t *testing.T) {
	svc := &fakeService{body: `[]`}
	server := httptest.NewServer(svc)
	t.Cleanup(server.Close)

	g, err := NewGateway(Config{BaseURL: server.URL + "/api/"})
	require.NoError(t, err)

	_, err = g.ExecuteQuery(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, "/api/search/query", svc.Requests()[0].Path)
}
