package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikMuellerDev/yaus/internal/store"
)

// NewRouter creates the chi sub-router for the management API. The caller
// mounts it behind the credential gate; nothing in here checks credentials
// itself.
func NewRouter(urls store.URLStore) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	h := &urlHandler{urls: urls}
	r.Get("/auth", h.AuthProbe)
	r.Post("/url", h.Create)
	r.Get("/url/{short}", h.Get)
	r.Delete("/url/{short}", h.Delete)
	r.Get("/urls/{limit}", h.List)

	return r
}

// jsonContentType sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
