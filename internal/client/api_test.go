package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/memoapp/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)

		switch r.URL.Path {
		case "/auth/signup":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(model.SignupResponse{ID: 1, Email: req.Email})
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(model.TokenResponse{Token: "jwt-token", ExpiresIn: 3600})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	created, err := c.Signup(context.Background(), "a@x.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	token, err := c.Login(context.Background(), "a@x.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token.Token)
}

func TestBearerHeaderSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Note{ID: 1, AuthorID: 1, Title: "t", Content: "c"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	note, err := c.CreateNote(context.Background(), "jwt-token", "t", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.ID)
}

func TestErrorResponseMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: "email already registered"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Signup(context.Background(), "a@x.com", "password123")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestDeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteNote(context.Background(), "jwt-token", 1))
}
