package inbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smssync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer mimics the envelope API closely enough for client tests:
// one hard-coded account, an in-memory item, and CSRF enforcement.
func stubServer(t *testing.T) *httptest.Server {
	t.Helper()

	const csrf = "test-csrf-token"
	loggedIn := false

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		write := func(status int, body map[string]interface{}) {
			w.WriteHeader(status)
			require.NoError(t, json.NewEncoder(w).Encode(body))
		}

		path, _ := req["path"].(string)
		switch path {
		case "/login":
			if req["email"] == "user@example.com" && req["password"] == "secret" {
				loggedIn = true
				http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc"})
				write(http.StatusOK, map[string]interface{}{"ok": true, "csrfToken": csrf})
				return
			}
			write(http.StatusUnauthorized, map[string]interface{}{"ok": false, "error": "Invalid credentials"})
		case "/session":
			if !loggedIn {
				write(http.StatusOK, map[string]interface{}{"ok": false})
				return
			}
			write(http.StatusOK, map[string]interface{}{
				"ok":        true,
				"user":      map[string]string{"email": "user@example.com"},
				"csrfToken": csrf,
			})
		case "/logout":
			loggedIn = false
			write(http.StatusOK, map[string]interface{}{"ok": true})
		case "/list":
			if req["csrfToken"] != csrf {
				write(http.StatusForbidden, map[string]interface{}{"ok": false, "error": "Invalid CSRF token"})
				return
			}
			write(http.StatusOK, map[string]interface{}{
				"ok":    true,
				"items": []map[string]interface{}{{"id": "msg_1", "sender": "Acme"}},
			})
		case "/update":
			write(http.StatusOK, map[string]interface{}{
				"ok":   true,
				"item": map[string]interface{}{"id": req["id"], "read": true},
			})
		case "/bulk":
			write(http.StatusOK, map[string]interface{}{
				"ok":      true,
				"updated": []map[string]interface{}{{"id": "msg_1", "starred": true}},
			})
		default:
			write(http.StatusNotFound, map[string]interface{}{"ok": false, "error": "Not found"})
		}
	}))
}

func TestClientLoginAndList(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "user@example.com", "secret"))

	items, err := c.List(ctx, "all", "", "desc")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "msg_1", items[0].ID)
}

func TestClientLoginFailure(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	err = c.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestClientSessionProbe(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	ctx := context.Background()

	// Unauthenticated probe is a nil result, not an error.
	info, err := c.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, info)

	require.NoError(t, c.Login(ctx, "user@example.com", "secret"))

	info, err = c.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "user@example.com", info.Email)
}

func TestClientListWithoutLogin(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	_, err = c.List(context.Background(), "all", "", "desc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestClientUpdateAndBulk(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "user@example.com", "secret"))

	item, err := c.Update(ctx, "msg_1", models.ActionMarkRead)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.Read)

	updated, err := c.Bulk(ctx, []string{"msg_1"}, models.ActionStar)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.True(t, updated[0].Starred)
}

func TestClientLogoutDropsCSRF(t *testing.T) {
	ts := stubServer(t)
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "user@example.com", "secret"))
	require.NoError(t, c.Logout(ctx))

	_, err = c.List(ctx, "all", "", "desc")
	assert.Error(t, err)
}
