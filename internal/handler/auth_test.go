package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Validation runs before any repository access, so these paths are
// exercised without a database.

func TestRegisterValidation(t *testing.T) {
	h := &AuthHandler{}

	cases := []string{
		`{"email":"a@b.com","password":"pw"}`,
		`{"name":"  ","email":"a@b.com","password":"pw"}`,
		`{"name":"A","password":"pw"}`,
		`{"name":"A","email":"a@b.com"}`,
	}
	for _, body := range cases {
		rec, err := doJSON(h.Register, http.MethodPost, "/v1/auth/register", body, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestLoginValidation(t *testing.T) {
	h := &AuthHandler{}

	rec, err := doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com"}`, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, err = doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"password":"pw"}`, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshValidation(t *testing.T) {
	h := &AuthHandler{}

	rec, err := doJSON(h.Refresh, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"  "}`, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
