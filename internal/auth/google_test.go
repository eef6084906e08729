package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "medic-action.apps.googleusercontent.com"

type googleTestEnv struct {
	verifier *GoogleVerifier
	key      *rsa.PrivateKey
}

func newGoogleTestEnv(t *testing.T) *googleTestEnv {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "accounts.google.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	pemCert := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"test-kid": pemCert})
	}))
	t.Cleanup(srv.Close)

	v := NewGoogleVerifier([]string{testClientID})
	v.certsURL = srv.URL
	return &googleTestEnv{verifier: v, key: key}
}

func (e *googleTestEnv) sign(t *testing.T, claims googleClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = "test-kid"
	signed, err := token.SignedString(e.key)
	require.NoError(t, err)
	return signed
}

func validClaims() googleClaims {
	return googleClaims{
		Email: "maria@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "google-sub-123",
			Audience:  jwt.ClaimStrings{testClientID},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestGoogleVerify_ValidToken(t *testing.T) {
	env := newGoogleTestEnv(t)

	profile, err := env.verifier.Verify(context.Background(), env.sign(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", profile.Subject)
	assert.Equal(t, "maria@example.com", profile.Email)
}

func TestGoogleVerify_RejectsWrongAudience(t *testing.T) {
	env := newGoogleTestEnv(t)

	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"someone-else.apps.googleusercontent.com"}

	_, err := env.verifier.Verify(context.Background(), env.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestGoogleVerify_RejectsWrongIssuer(t *testing.T) {
	env := newGoogleTestEnv(t)

	claims := validClaims()
	claims.Issuer = "https://evil.example.com"

	_, err := env.verifier.Verify(context.Background(), env.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestGoogleVerify_RejectsExpiredToken(t *testing.T) {
	env := newGoogleTestEnv(t)

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := env.verifier.Verify(context.Background(), env.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestGoogleVerify_Unconfigured(t *testing.T) {
	v := NewGoogleVerifier(nil)
	_, err := v.Verify(context.Background(), "anything")
	assert.Error(t, err)
}
