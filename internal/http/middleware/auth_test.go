package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"comics-gateway/internal/service"
)

// stubVerifier пропускает только фиксированный токен.
type stubVerifier struct {
	accept   string
	identity *service.Identity
}

func (v *stubVerifier) VerifyToken(raw string) (*service.Identity, error) {
	if raw == v.accept {
		return v.identity, nil
	}
	return nil, service.ErrInvalidToken
}

func newGate(t *testing.T) (http.Handler, *bool, **service.Identity) {
	t.Helper()

	verifier := &stubVerifier{
		accept:   "good-token",
		identity: &service.Identity{AccountID: 42, Email: "user@example.com"},
	}

	reached := false
	var seen *service.Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return Authenticate(verifier)(inner), &reached, &seen
}

func TestAuthenticate_PublicRoute_NoToken(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/auth/login", "/auth/register", "/health", "/health/ping", "/swagger/index.html", "/openapi"} {
		gate, reached, _ := newGate(t)

		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
		require.True(t, *reached, path)
	}
}

func TestAuthenticate_PublicRoute_CaseInsensitive(t *testing.T) {
	t.Parallel()

	gate, reached, _ := newGate(t)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/Auth/Login", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *reached)
}

func TestAuthenticate_ProtectedRoute_MissingToken(t *testing.T) {
	t.Parallel()

	gate, reached, _ := newGate(t)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/marvel/characters", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *reached)

	var body struct {
		Success bool    `json:"success"`
		Error   *string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)
	require.Equal(t, "Unauthorized", *body.Error)
}

func TestAuthenticate_ProtectedRoute_InvalidToken(t *testing.T) {
	t.Parallel()

	gate, reached, _ := newGate(t)

	req := httptest.NewRequest(http.MethodGet, "/marvel/comics", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *reached)
}

func TestAuthenticate_ProtectedRoute_ValidToken_IdentityInContext(t *testing.T) {
	t.Parallel()

	gate, reached, seen := newGate(t)

	req := httptest.NewRequest(http.MethodGet, "/favorites/comics", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *reached)
	require.NotNil(t, *seen)
	require.Equal(t, int64(42), (*seen).AccountID)
}

func TestAuthenticate_ValidateTokenRouteIsProtected(t *testing.T) {
	t.Parallel()

	gate, reached, _ := newGate(t)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/validate-token", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *reached)
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"mixed case scheme", "BeArEr abc", "abc"},
		{"extra spaces trimmed", "Bearer   abc  ", "abc"},
		{"wrong scheme", "Basic abc", ""},
		{"scheme only", "Bearer", ""},
		{"token without scheme", "abc.def.ghi", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractBearer(tc.header))
		})
	}
}

func TestIdentityFrom_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	id, ok := IdentityFrom(req.Context())
	require.False(t, ok)
	require.Nil(t, id)
}
