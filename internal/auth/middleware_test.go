package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/auth"
)

func gatedHandler(called *bool) http.Handler {
	mw := auth.NewMiddleware(auth.Credentials{Username: "admin", Password: "secret"})
	return mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddleware_ValidCredentials(t *testing.T) {
	var called bool
	h := gatedHandler(&called)

	req := httptest.NewRequest("GET", "/api/auth?username=admin&password=secret", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Error("handler was not invoked for valid credentials")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"wrong password", "?username=admin&password=wrong"},
		{"wrong username", "?username=root&password=secret"},
		{"swapped fields", "?username=secret&password=admin"},
		{"missing password", "?username=admin"},
		{"no credentials", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := gatedHandler(&called)

			req := httptest.NewRequest("GET", "/api/auth"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if called {
				t.Error("handler was invoked despite invalid credentials")
			}
			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
			}

			var body api.GenericResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Message != "Forbidden" {
				t.Errorf("message = %q, want %q", body.Message, "Forbidden")
			}
		})
	}
}
