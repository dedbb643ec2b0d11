package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/auth"
	"github.com/MikMuellerDev/yaus/internal/handler"
	"github.com/MikMuellerDev/yaus/internal/store"
)

// failingStore is a URLStore whose every operation fails with the same
// driver-level error, standing in for a broken database.
type failingStore struct {
	err error
}

func (s *failingStore) Create(ctx context.Context, u store.URL) error  { return s.err }
func (s *failingStore) Delete(ctx context.Context, short string) error { return s.err }
func (s *failingStore) GetByShort(ctx context.Context, short string) (*store.URL, error) {
	return nil, s.err
}
func (s *failingStore) List(ctx context.Context, limit uint32) ([]store.URL, error) {
	return nil, s.err
}

// driverDetail is the kind of internal error text that must never leak into
// a response body.
const driverDetail = "pq: connection reset by peer (host=db-internal:5432)"

func newFailingEnv(t *testing.T) http.Handler {
	t.Helper()
	gate := auth.NewMiddleware(auth.Credentials{Username: "admin", Password: "admin"})
	return handler.NewRouter(handler.Deps{
		URLs: &failingStore{err: errors.New(driverDetail)},
		Gate: gate,
	})
}

// checkOpaqueFailure asserts a 500 with the generic envelope and verifies
// the driver error text did not leak into the body.
func checkOpaqueFailure(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusInternalServerError, rec.Body.String())
	}

	body := rec.Body.String()
	if strings.Contains(body, "pq:") || strings.Contains(body, "db-internal") {
		t.Fatalf("driver detail leaked into response: %s", body)
	}

	var resp api.GenericResponse
	if err := json.NewDecoder(strings.NewReader(body)).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error != "Database failure" {
		t.Errorf("error = %q, want %q", resp.Error, "Database failure")
	}
}

func TestCreate_DatabaseFailure(t *testing.T) {
	router := newFailingEnv(t)

	req := httptest.NewRequest("POST", authed("/api/url"), bytes.NewBufferString(`{"short":"42","target_url":"http://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	checkOpaqueFailure(t, rec)
}

func TestDelete_DatabaseFailure(t *testing.T) {
	router := newFailingEnv(t)

	req := httptest.NewRequest("DELETE", authed("/api/url/42"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	checkOpaqueFailure(t, rec)
}

func TestGet_DatabaseFailure(t *testing.T) {
	router := newFailingEnv(t)

	req := httptest.NewRequest("GET", authed("/api/url/42"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A broken database is a 500, never conflated with the 422 of a
	// missing short id.
	checkOpaqueFailure(t, rec)
}

func TestList_DatabaseFailure(t *testing.T) {
	router := newFailingEnv(t)

	req := httptest.NewRequest("GET", authed("/api/urls/10"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	checkOpaqueFailure(t, rec)
}
