package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/config"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "recipegwd" {
		t.Errorf("name = %q, want %q", name, "recipegwd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func newTestConfig(upstreamURL string) *config.Config {
	cfg := config.Default()
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.Timeout = config.Duration{Duration: 2 * time.Second}
	return cfg
}

func TestNewServer_ServesRecipes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filter.php":
			_, _ = w.Write([]byte(`{"meals":[{"idMeal":"1"}]}`))
		case "/lookup.php":
			_, _ = w.Write([]byte(`{"meals":null}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	s, err := NewServer(newTestConfig(upstream.URL))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	h := s.Handler()

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"directory", "/", http.StatusOK},
		{"search by path", "/search/chicken", http.StatusOK},
		{"search by query", "/find?ingredient=chicken", http.StatusOK},
		{"missing query", "/find", http.StatusBadRequest},
		{"lookup not found", "/details/99999", http.StatusNotFound},
		{"status", "/status", http.StatusOK},
		{"health", "/health", http.StatusOK},
		{"unknown route", "/recipes", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d (body: %s)", tt.target, w.Code, tt.wantStatus, w.Body.String())
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("GET %s Content-Type = %q, want application/json", tt.target, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestNewServer_Directory(t *testing.T) {
	s, err := NewServer(newTestConfig("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body struct {
		Message string            `json:"message"`
		Routes  map[string]string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode directory: %v", err)
	}
	if body.Message != "Recipe API Server" {
		t.Errorf("message = %q, want %q", body.Message, "Recipe API Server")
	}
	for _, route := range []string{"GET /search/:ingredient", "GET /find?ingredient=value", "GET /details/:mealId"} {
		if _, ok := body.Routes[route]; !ok {
			t.Errorf("directory missing %q", route)
		}
	}
}

func TestNewServer_InvalidUpstream(t *testing.T) {
	if _, err := NewServer(newTestConfig("ftp://example.com")); err == nil {
		t.Fatal("expected error for unsupported upstream scheme")
	}
}

// TestConcurrentRequests exercises the shared client and handlers from many goroutines.
func TestConcurrentRequests(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[{"strIngredient":"` + r.URL.Query().Get("i") + `"}]}`))
	}))
	defer upstream.Close()

	s, err := NewServer(newTestConfig(upstream.URL))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	h := s.Handler()

	ingredients := []string{"beef", "pork", "tofu", "salmon", "egg"}

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := 0; i < 50; i++ {
		ingredient := ingredients[i%len(ingredients)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/"+ingredient, nil))

			var body struct {
				SearchTerm string `json:"searchTerm"`
				Total      int    `json:"total"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				errs <- err.Error()
				return
			}
			if body.SearchTerm != ingredient || body.Total != 1 {
				errs <- "mismatched envelope for " + ingredient
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
