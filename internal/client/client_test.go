package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikMuellerDev/yaus/internal/auth"
	"github.com/MikMuellerDev/yaus/internal/client"
	"github.com/MikMuellerDev/yaus/internal/handler"
	"github.com/MikMuellerDev/yaus/internal/store"
	"github.com/MikMuellerDev/yaus/internal/testutil"
)

// newTestServer runs the full router against an in-memory database with the
// credential pair (admin, admin).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.NewTestDB(t)
	urls := store.NewSQLURLStore(db)
	gate := auth.NewMiddleware(auth.Credentials{Username: "admin", Password: "admin"})

	srv := httptest.NewServer(handler.NewRouter(handler.Deps{URLs: urls, Gate: gate}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_ProbesCredentials(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := client.New(ctx, srv.URL, "admin", "admin")
	require.NoError(t, err)

	_, err = client.New(ctx, srv.URL, "admin", "wrong")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "Forbidden", apiErr.Message)
}

func TestClient_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c, err := client.New(ctx, srv.URL, "admin", "admin")
	require.NoError(t, err)

	require.NoError(t, c.CreateURL(ctx, store.URL{Short: "42", TargetURL: "http://example.com"}))

	got, err := c.GetURL(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, &store.URL{Short: "42", TargetURL: "http://example.com"}, got)

	urls, err := c.ListURLs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "42", urls[0].Short)

	require.NoError(t, c.DeleteURL(ctx, "42"))

	_, err = c.GetURL(ctx, "42")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
}

func TestClient_CreateDuplicate(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c, err := client.New(ctx, srv.URL, "admin", "admin")
	require.NoError(t, err)

	require.NoError(t, c.CreateURL(ctx, store.URL{Short: "dup", TargetURL: "http://a.example"}))

	err = c.CreateURL(ctx, store.URL{Short: "dup", TargetURL: "http://b.example"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "This short id is already taken", apiErr.Detail)
}

func TestClient_UnreachableServer(t *testing.T) {
	_, err := client.New(context.Background(), "http://127.0.0.1:1", "admin", "admin")
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "connection errors are not APIErrors")
}
