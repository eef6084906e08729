package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v1/certs"

var ErrInvalidIDToken = errors.New("invalid google id token")

// GoogleProfile is the identity extracted from a verified Google id token.
type GoogleProfile struct {
	Subject string
	Email   string
}

// GoogleVerifier validates Google-issued id tokens against Google's published
// signing certificates. Certificates are cached and refreshed on unknown key IDs.
type GoogleVerifier struct {
	audiences []string
	certsURL  string
	client    *http.Client

	mu        sync.Mutex
	certs     map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewGoogleVerifier returns a verifier accepting tokens whose "aud" claim is
// one of the given client IDs.
func NewGoogleVerifier(audiences []string) *GoogleVerifier {
	return &GoogleVerifier{
		audiences: audiences,
		certsURL:  googleCertsURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type googleClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify checks signature, issuer, audience and expiry, and returns the
// token's identity.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (GoogleProfile, error) {
	if len(v.audiences) == 0 {
		return GoogleProfile{}, fmt.Errorf("google sign-in is not configured")
	}

	var claims googleClaims
	token, err := jwt.ParseWithClaims(idToken, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("missing kid header")
		}
		return v.keyFor(ctx, kid)
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil || !token.Valid {
		return GoogleProfile{}, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	if claims.Issuer != "accounts.google.com" && claims.Issuer != "https://accounts.google.com" {
		return GoogleProfile{}, fmt.Errorf("%w: issuer %q", ErrInvalidIDToken, claims.Issuer)
	}
	if !v.audienceAllowed(claims.Audience) {
		return GoogleProfile{}, fmt.Errorf("%w: audience not allowed", ErrInvalidIDToken)
	}
	if claims.Subject == "" || claims.Email == "" {
		return GoogleProfile{}, fmt.Errorf("%w: missing subject or email", ErrInvalidIDToken)
	}
	return GoogleProfile{Subject: claims.Subject, Email: claims.Email}, nil
}

func (v *GoogleVerifier) audienceAllowed(aud jwt.ClaimStrings) bool {
	for _, a := range aud {
		for _, allowed := range v.audiences {
			if a == allowed {
				return true
			}
		}
	}
	return false
}

// keyFor returns the RSA public key for a kid, refreshing the cached cert set
// when the kid is unknown or the cache is older than an hour.
func (v *GoogleVerifier) keyFor(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.certs[kid]; ok && time.Since(v.fetchedAt) < time.Hour {
		return key, nil
	}
	if err := v.refreshLocked(ctx); err != nil {
		return nil, err
	}
	key, ok := v.certs[kid]
	if !ok {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

func (v *GoogleVerifier) refreshLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch google certs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch google certs: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("decode google certs: %w", err)
	}
	certs := make(map[string]*rsa.PublicKey, len(raw))
	for kid, pemCert := range raw {
		key, err := parseRSAPublicKeyFromCert(pemCert)
		if err != nil {
			continue
		}
		certs[kid] = key
	}
	if len(certs) == 0 {
		return fmt.Errorf("no usable google signing certs")
	}
	v.certs = certs
	v.fetchedAt = time.Now()
	return nil
}

func parseRSAPublicKeyFromCert(pemCert string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemCert))
	if block == nil {
		return nil, fmt.Errorf("no PEM block")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA key")
	}
	return key, nil
}
