package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"comics-gateway/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:             42,
		Name:           "Peter Parker",
		Identification: "12345",
		Email:          "user@example.com",
		Active:         true,
	}
}

func TestIssueToken_VerifyToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	token, expiresAt, err := svc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(svc.cfg.TokenTTL), expiresAt, 2*time.Second)

	identity, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), identity.AccountID)
	require.Equal(t, "Peter Parker", identity.Name)
	require.Equal(t, "user@example.com", identity.Email)
	require.Equal(t, "12345", identity.Identification)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.TokenTTL = -time.Minute
	expiredSvc := New(nil, cfg)

	token, _, err := expiredSvc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)

	// Leeway нулевой: просроченный токен отклоняется сразу.
	svc := New(nil, testCfg())
	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	other := testCfg()
	other.JWTSecret = "other-secret"
	otherSvc := New(nil, other)

	token, _, err := otherSvc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)

	svc := New(nil, testCfg())
	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	other := testCfg()
	other.Issuer = "someone-else"
	otherSvc := New(nil, other)

	token, _, err := otherSvc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)

	svc := New(nil, testCfg())
	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongAudience(t *testing.T) {
	t.Parallel()

	other := testCfg()
	other.Audience = []string{"different-audience"}
	otherSvc := New(nil, other)

	token, _, err := otherSvc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)

	svc := New(nil, testCfg())
	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_NoneAlgorithmRejected(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    svc.cfg.Issuer,
		Audience:  jwt.ClaimStrings(svc.cfg.Audience),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyToken(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	token, _, err := svc.issueToken(context.Background(), testAccount(), time.Now().UTC())
	require.NoError(t, err)

	require.True(t, svc.ValidateToken(token))
	require.False(t, svc.ValidateToken("garbage"))
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Parallel()

	first, err := generateRefreshToken()
	require.NoError(t, err)

	second, err := generateRefreshToken()
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	require.Len(t, raw, 32)
}
