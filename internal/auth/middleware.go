package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/metrics"
)

// Credentials is the single configured identity guarding the management API.
// It is read-only after startup and shared across all request handlers.
type Credentials struct {
	Username string
	Password string
}

// Middleware gates the management scope behind the configured credential
// pair. The public redirect path never passes through it.
type Middleware struct {
	user Credentials
}

func NewMiddleware(user Credentials) *Middleware {
	return &Middleware{user: user}
}

// Require checks the username and password query parameters against the
// configured pair. On a match the request is forwarded unmodified; on any
// mismatch or missing parameter it is short-circuited with a 403 envelope
// and the wrapped handler is never invoked. The response does not say which
// field was wrong.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("username") != m.user.Username || q.Get("password") != m.user.Password {
			metrics.AuthChecksTotal.WithLabelValues("rejected").Inc()
			log.Warn().
				Str("path", r.URL.Path).
				Msg("rejecting invalid authentication")
			api.WriteError(w, http.StatusForbidden, "Forbidden", "You must be authenticated to use the API")
			return
		}

		metrics.AuthChecksTotal.WithLabelValues("allowed").Inc()
		log.Trace().
			Str("path", r.URL.Path).
			Msg("accepting valid authentication")
		next.ServeHTTP(w, r)
	})
}
