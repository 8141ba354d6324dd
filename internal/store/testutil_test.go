package store

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
	"zenvy-storefront/internal/session"
)

// fakeAPI is a stubbed commerce API that counts hits per method+path so
// tests can assert which endpoints were (not) contacted.
type fakeAPI struct {
	mux    *http.ServeMux
	server *httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

func newFakeAPI() *fakeAPI {
	f := &fakeAPI{mux: http.NewServeMux(), hits: make(map[string]int)}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.Method+" "+r.URL.Path]++
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	return f
}

func (f *fakeAPI) Close() { f.server.Close() }

func (f *fakeAPI) Hits(methodAndPath string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[methodAndPath]
}

func (f *fakeAPI) TotalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *fakeAPI) Handle(pattern string, handler http.HandlerFunc) {
	f.mux.HandleFunc(pattern, handler)
}

// newTestAuth wires a client, session and auth container against the fake
// API. The session starts logged out.
func newTestAuth(f *fakeAPI) (*Auth, *session.Session, *backend.Client) {
	sess, err := session.Open(session.NewMemoryStore(), "test-session")
	if err != nil {
		panic(err)
	}
	client := backend.NewClient(f.server.URL, sess)
	return NewAuth(client, sess), sess, client
}

func testUser() *models.User {
	return &models.User{
		ID:    "u1",
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  "normal",
	}
}
