package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MikMuellerDev/yaus/internal/auth"
	"github.com/MikMuellerDev/yaus/internal/handler"
	"github.com/MikMuellerDev/yaus/internal/store"
	"github.com/MikMuellerDev/yaus/internal/testutil"
)

// testEnv wires the full router (credential gate included) to an in-memory
// database, configured with the credential pair (admin, admin).
type testEnv struct {
	Router http.Handler
	URLs   *store.SQLURLStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	urls := store.NewSQLURLStore(db)
	gate := auth.NewMiddleware(auth.Credentials{Username: "admin", Password: "admin"})

	router := handler.NewRouter(handler.Deps{URLs: urls, Gate: gate})
	return &testEnv{Router: router, URLs: urls}
}

// authed appends the valid test credentials to a request path.
func authed(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "username=admin&password=admin"
}
