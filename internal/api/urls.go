package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MikMuellerDev/yaus/internal/store"
)

// urlHandler provides the management handlers for redirect mappings.
type urlHandler struct {
	urls store.URLStore
}

// AuthProbe answers the credential probe the CLI performs at startup. The
// credential gate has already run by the time this executes, so reaching it
// at all means the credentials were valid.
func (h *urlHandler) AuthProbe(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Create registers a new mapping.
// POST /api/url
func (h *urlHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Could not create short URL", "invalid request body")
		return
	}

	u := store.URL{Short: req.Short, TargetURL: req.TargetURL}

	// Length bounds are enforced before the store is touched.
	if err := store.ValidateBounds(u); err != nil {
		WriteError(w, http.StatusRequestEntityTooLarge, "Could not create short URL", err.Error())
		return
	}

	if err := h.urls.Create(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrShortTaken) {
			WriteError(w, http.StatusUnprocessableEntity, "Could not create short URL", "This short id is already taken")
			return
		}
		log.Error().Err(err).Str("short", u.Short).Msg("create failed")
		WriteError(w, http.StatusInternalServerError, "Could not create short URL", "Database failure")
		return
	}

	log.Info().
		Str("short", u.Short).
		Str("target_url", u.TargetURL).
		Msg("created redirect")
	WriteJSON(w, http.StatusOK, SuccessResponse("Successfully created short URL"))
}

// Delete removes a mapping.
// DELETE /api/url/{short}
func (h *urlHandler) Delete(w http.ResponseWriter, r *http.Request) {
	short := chi.URLParam(r, "short")

	if err := h.urls.Delete(r.Context(), short); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusUnprocessableEntity, "Could not delete URL", "This short id does not exist")
			return
		}
		log.Error().Err(err).Str("short", short).Msg("delete failed")
		WriteError(w, http.StatusInternalServerError, "Could not delete URL", "Database failure")
		return
	}

	log.Info().Str("short", short).Msg("deleted redirect")
	WriteJSON(w, http.StatusOK, SuccessResponse("Successfully deleted URL"))
}

// Get returns a single mapping.
// GET /api/url/{short}
func (h *urlHandler) Get(w http.ResponseWriter, r *http.Request) {
	short := chi.URLParam(r, "short")

	u, err := h.urls.GetByShort(r.Context(), short)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusUnprocessableEntity,
				fmt.Sprintf("Cannot get target URL of `%s`", short),
				"this shortened url was not found")
			return
		}
		log.Error().Err(err).Str("short", short).Msg("get failed")
		WriteError(w, http.StatusInternalServerError,
			fmt.Sprintf("Cannot get target URL of `%s`", short), "Database failure")
		return
	}

	WriteJSON(w, http.StatusOK, u)
}

// List returns up to {limit} mappings as a JSON array.
// GET /api/urls/{limit}
func (h *urlHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.ParseUint(chi.URLParam(r, "limit"), 10, 32)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Could not list URLs", "limit must be a non-negative integer")
		return
	}

	urls, err := h.urls.List(r.Context(), uint32(limit))
	if err != nil {
		log.Error().Err(err).Msg("list failed")
		WriteError(w, http.StatusInternalServerError, "Could not list URLs", "Database failure")
		return
	}

	WriteJSON(w, http.StatusOK, urls)
}
