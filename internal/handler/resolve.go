package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/metrics"
	"github.com/MikMuellerDev/yaus/internal/store"
)

// ResolveHandler serves the public redirect path. It runs outside the
// credential gate: anyone who knows a short id can follow it.
type ResolveHandler struct {
	urls store.URLStore
}

func NewResolveHandler(urls store.URLStore) *ResolveHandler {
	return &ResolveHandler{urls: urls}
}

// Resolve looks up a short id and issues a 307 redirect to its target. The
// mapping is also sent as the JSON body so programmatic callers get the
// attributes without a second request. A stored target that cannot be used
// as a Location header value is reported as unprocessable, not as missing.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	short := chi.URLParam(r, "short")

	u, err := h.urls.GetByShort(r.Context(), short)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RedirectsTotal.WithLabelValues("not_found").Inc()
			api.WriteError(w, http.StatusNotFound,
				fmt.Sprintf("Cannot redirect to resource `%s`", short),
				"this shortened url was not found")
			return
		}
		metrics.RedirectsTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("short", short).Msg("redirect lookup failed")
		api.WriteError(w, http.StatusInternalServerError,
			fmt.Sprintf("Cannot redirect to resource `%s`", short), "Database failure")
		return
	}

	if !store.IsValidRedirectTarget(u.TargetURL) {
		metrics.RedirectsTotal.WithLabelValues("invalid_target").Inc()
		api.WriteError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot redirect to resource `%s`", short),
			"invalid target URL: contains characters illegal in a header value")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", u.TargetURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
	_ = json.NewEncoder(w).Encode(u)

	metrics.RedirectsTotal.WithLabelValues("ok").Inc()
	metrics.RedirectDuration.Observe(time.Since(start).Seconds())
}
