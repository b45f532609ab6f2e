package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/option"

	"ytcomments/retry"
)

// fakeAPI is an httptest-backed stand-in for the Data API. Handlers are
// keyed by the final path element ("channels", "search", "playlistItems",
// "videos", "commentThreads"); unhandled endpoints fail the test.
type fakeAPI struct {
	t        *testing.T
	mu       sync.Mutex
	counts   map[string]int
	handlers map[string]http.HandlerFunc
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{
		t:        t,
		counts:   make(map[string]int),
		handlers: make(map[string]http.HandlerFunc),
	}
}

func (f *fakeAPI) handle(endpoint string, h http.HandlerFunc) {
	f.handlers[endpoint] = h
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := path.Base(r.URL.Path)

	f.mu.Lock()
	f.counts[endpoint]++
	f.mu.Unlock()

	h, ok := f.handlers[endpoint]
	if !ok {
		f.t.Errorf("unexpected request to %s", r.URL.Path)
		apiError(w, 500, "unexpected endpoint")
		return
	}
	h(w, r)
}

func (f *fakeAPI) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[endpoint]
}

// client starts the server and builds a Client against it. Retry sleeps
// are skipped so backoff paths run instantly; tests that assert on waits
// pass their own config.
func (f *fakeAPI) client(cfg *retry.Config) *Client {
	f.t.Helper()

	srv := httptest.NewServer(f)
	f.t.Cleanup(srv.Close)

	if cfg == nil {
		c := retry.DefaultConfig()
		c.Sleep = func(context.Context, time.Duration) error { return nil }
		cfg = &c
	}

	client, err := NewClient(context.Background(), "test-api-key",
		&ClientOptions{Retry: cfg}, option.WithEndpoint(srv.URL))
	if err != nil {
		f.t.Fatalf("NewClient() failed: %v", err)
	}
	return client
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(err)
	}
}

func apiError(w http.ResponseWriter, code int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"code":%d,"message":%q}}`, code, reason)
}

// commentThreadsPage builds a commentThreads.list response with n comments.
func commentThreadsPage(n int, author, nextToken string) map[string]interface{} {
	items := make([]interface{}, n)
	for i := 0; i < n; i++ {
		items[i] = map[string]interface{}{
			"snippet": map[string]interface{}{
				"topLevelComment": map[string]interface{}{
					"snippet": map[string]interface{}{
						"textDisplay":       fmt.Sprintf("comment %d", i),
						"publishedAt":       "2024-03-01T10:00:00Z",
						"likeCount":         i,
						"authorDisplayName": author,
					},
				},
			},
		}
	}
	resp := map[string]interface{}{"items": items}
	if nextToken != "" {
		resp["nextPageToken"] = nextToken
	}
	return resp
}
