package handler

import (
	"net/http"
	"testing"

	"github.com/memoapp/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreated(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: "a@x.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	res := decodeBody[model.SignupResponse](t, w)
	assert.Equal(t, "a@x.com", res.Email)
	assert.Positive(t, res.ID)
}

func TestSignupDuplicateConflict(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: "a@x.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: "a@x.com", Password: "password456"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupValidationRejected(t *testing.T) {
	r, _, _ := newTestRouter(t)

	tests := []struct {
		name string
		req  model.AuthRequest
	}{
		{"bad email", model.AuthRequest{Email: "a@example", Password: "password123"}},
		{"short password", model.AuthRequest{Email: "a@x.com", Password: "short1"}},
		{"digitless password", model.AuthRequest{Email: "a@x.com", Password: "alllettersnodigit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/signup", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupMalformedBody(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", "not-an-object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginReturnsToken(t *testing.T) {
	r, _, tokens := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: "a@x.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", model.AuthRequest{Email: "a@x.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeBody[model.TokenResponse](t, w)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, tokens.TTLSeconds(), res.ExpiresIn)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: "a@x.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPw := doJSON(t, r, http.MethodPost, "/auth/login", "", model.AuthRequest{Email: "a@x.com", Password: "password456"})
	unknown := doJSON(t, r, http.MethodPost, "/auth/login", "", model.AuthRequest{Email: "never@x.com", Password: "password123"})

	// 상태 코드와 본문이 같아야 계정 존재 여부가 드러나지 않는다
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestMe(t *testing.T) {
	r, _, _ := newTestRouter(t)
	token := signupAndLogin(t, r, "a@x.com", "password123")

	w := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decodeBody[model.AuthMeResponse](t, w)
	assert.Equal(t, int64(1), res.UserID)
	assert.Equal(t, res.IssuedAt+3600, res.ExpiresAt)
}
