package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRouter(createOrder http.HandlerFunc) http.Handler {
	if createOrder == nil {
		createOrder = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}
	}
	return NewRouter(&Handlers{
		Health: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		CreateOrder: createOrder,
	}, Options{AllowedOrigins: []string{"*"}, Log: zerolog.Nop()})
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"create order", http.MethodPost, "/orders", http.StatusCreated},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"unknown path", http.MethodGet, "/orders/123", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/orders", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(nil)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestRouterRecoversPanic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"message":"Internal server error"}` {
		t.Fatalf("unexpected body: %q", body)
	}
}
