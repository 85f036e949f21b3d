package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "USER", 5)
	require.NoError(t, err)

	rec, c := runProtected(t, "Bearer "+at.Token, JWTAuth(testSecret))
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 42, c.Get("user_id"))
	require.Equal(t, "USER", c.Get("role"))
}

func TestJWTAuthRejectsMissingAndMalformed(t *testing.T) {
	rec, _ := runProtected(t, "", JWTAuth(testSecret))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runProtected(t, "Basic abc", JWTAuth(testSecret))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runProtected(t, "Bearer not.a.jwt", JWTAuth(testSecret))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 42, "USER", 5)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+at.Token, JWTAuth(testSecret))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpired(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "USER", -5)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+at.Token, JWTAuth(testSecret))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	admin, err := utils.NewAccessToken(testSecret, 1, "ADMIN", 5)
	require.NoError(t, err)
	user, err := utils.NewAccessToken(testSecret, 2, "USER", 5)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+admin.Token, JWTAuth(testSecret), RequireRole("ADMIN"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = runProtected(t, "Bearer "+user.Token, JWTAuth(testSecret), RequireRole("ADMIN"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = runProtected(t, "Bearer "+user.Token, JWTAuth(testSecret), RequireRole("ADMIN", "USER"))
	require.Equal(t, http.StatusOK, rec.Code)
}
