package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":    status == http.StatusOK,
		"statusCode": status,
		"body":       body,
	})
}

func TestClient_SignUpAndLogin(t *testing.T) {
	var seen []map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		seen = append(seen, in)

		_, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		assert.NoError(t, err)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		reply(w, http.StatusOK, map[string]any{
			"text":  "ok",
			"token": "tok-" + r.URL.Path,
			"user":  map[string]any{"id": "u-1", "email": in["email"]},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)

	s, err := c.SignUp(context.Background(), "alice@example.com", []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "tok-/auth/signup", s.Token)
	assert.Equal(t, "u-1", s.Account.ID)

	s, err = c.Login(context.Background(), "alice@example.com", []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "tok-/auth/login", s.Token)

	require.Len(t, seen, 2)
	assert.Equal(t, map[string]string{"email": "alice@example.com", "password": "hunter2"}, seen[0])
}

func TestClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			reply(w, http.StatusUnauthorized, map[string]string{"text": "Unauthorized"})
			return
		}
		reply(w, http.StatusOK, map[string]any{"user": map[string]any{"id": "u-1", "email": "a@b.co"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	acc, err := c.Me(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", acc.Email)

	_, err = c.Me(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		text   string
		want   error
	}{
		{"conflict", http.StatusConflict, "User already exists", common.ErrConflict},
		{"bad credentials", http.StatusBadRequest, "Credentials are not correct", common.ErrInvalidCredentials},
		{"bad request", http.StatusBadRequest, "Invalid request", ErrBadRequest},
		{"unavailable", http.StatusServiceUnavailable, "Service unavailable", ErrUnavailable},
		{"internal", http.StatusInternalServerError, "Error on crypto password!", common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reply(w, tt.status, map[string]string{"text": tt.text})
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Login(context.Background(), "a@b.co", []byte("x"))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, tt.text)
		})
	}
}

func TestClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Login(context.Background(), "a@b.co", []byte("x"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).SignUp(context.Background(), "a@b.co", []byte("x"))
	assert.ErrorIs(t, err, ErrUnavailable)
}
