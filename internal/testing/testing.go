// package testing contains shared testing utilities
package testing

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/songbook/internal/server"
	"github.com/desertthunder/songbook/internal/shared"
)

// MockNotifier records notification keys for assertions.
type MockNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *MockNotifier) Success(key string) {
	n.mu.Lock()
	n.Successes = append(n.Successes, key)
	n.mu.Unlock()
}

func (n *MockNotifier) Error(key string) {
	n.mu.Lock()
	n.Errors = append(n.Errors, key)
	n.mu.Unlock()
}

// RequestRecord captures one request seen by the test catalog server.
type RequestRecord struct {
	Method string
	Path   string
}

// CatalogServer wraps an httptest server running the development catalog
// API, recording every request so tests can assert on call counts.
type CatalogServer struct {
	*httptest.Server
	Store *server.Store

	mu       sync.Mutex
	requests []RequestRecord
}

// NewCatalogServer starts a recording catalog server. A nil seed uses the
// embedded fixture. The server is shut down when the test ends.
func NewCatalogServer(t *testing.T, seed []byte) *CatalogServer {
	t.Helper()

	store, err := server.NewStore(seed)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cs := &CatalogServer{Store: store}

	router := server.NewBasicRouter()
	router.Use(cs.record)
	router.Handler(server.NewCatalogHandler(store, shared.NewLogger(nil)))

	cs.Server = httptest.NewServer(router)
	t.Cleanup(cs.Close)
	return cs
}

// record is [server.Middleware] appending each request to the log.
func (cs *CatalogServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		cs.requests = append(cs.requests, RequestRecord{Method: r.Method, Path: r.URL.Path})
		cs.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Reset clears the recorded requests.
func (cs *CatalogServer) Reset() {
	cs.mu.Lock()
	cs.requests = nil
	cs.mu.Unlock()
}

// Requests returns a copy of the recorded requests.
func (cs *CatalogServer) Requests() []RequestRecord {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]RequestRecord(nil), cs.requests...)
}

// Count returns how many recorded requests match the method and path prefix.
func (cs *CatalogServer) Count(method, pathPrefix string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	n := 0
	for _, r := range cs.requests {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			n++
		}
	}
	return n
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
