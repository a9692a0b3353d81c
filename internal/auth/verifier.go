package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	googleJWKSURL      = "https://www.googleapis.com/oauth2/v3/certs"
	defaultJWKSTTL     = 5 * time.Minute
	defaultTokenLeeway = 30 * time.Second
)

var (
	ErrInvalidIdentity = errors.New("invalid identity token")

	errUnknownKey = errors.New("unknown token key")
)

// IdentityVerifier validates a third-party sign-in token and returns
// the asserted email address.
type IdentityVerifier interface {
	VerifyEmail(idToken string) (string, error)
}

// googleIssuers are the two issuer spellings Google uses in ID tokens.
var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// GoogleVerifier validates Google ID tokens (RS256 + JWKS) against the
// configured OAuth client id.
type GoogleVerifier struct {
	clientID   string
	jwksURL    string
	httpClient *http.Client

	mu         sync.RWMutex
	rsaKeys    map[string]any
	keysExpire time.Time
}

// NewGoogleVerifier creates a verifier for the given OAuth client id.
// The signing keys are fetched lazily on first use.
func NewGoogleVerifier(clientID string) (*GoogleVerifier, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errors.New("google verifier requires a client id")
	}
	return &GoogleVerifier{
		clientID:   clientID,
		jwksURL:    googleJWKSURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// VerifyEmail validates the ID token and returns the verified email.
func (v *GoogleVerifier) VerifyEmail(idToken string) (string, error) {
	claims, err := v.verify(idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" || !claims.EmailVerified {
		return "", fmt.Errorf("%w: email not verified", ErrInvalidIdentity)
	}
	return email, nil
}

func (v *GoogleVerifier) verify(idToken string) (googleClaims, error) {
	claims, err := v.parse(idToken)
	if err == nil {
		return claims, nil
	}
	if !errors.Is(err, errUnknownKey) && !v.keysExpired() {
		return claims, err
	}
	if refreshErr := v.refreshJWKS(); refreshErr != nil {
		return claims, refreshErr
	}
	return v.parse(idToken)
}

func (v *GoogleVerifier) parse(idToken string) (googleClaims, error) {
	claims := googleClaims{}
	keys := v.copyKeys()
	parsed, err := jwt.ParseWithClaims(idToken, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		kid = strings.TrimSpace(kid)
		if kid == "" {
			return nil, errUnknownKey
		}
		key, ok := keys[kid]
		if !ok {
			return nil, errUnknownKey
		}
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.clientID),
		jwt.WithLeeway(defaultTokenLeeway),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return claims, err
	}

	issuer, _ := claims.GetIssuer()
	for _, allowed := range googleIssuers {
		if issuer == allowed {
			return claims, nil
		}
	}
	return claims, fmt.Errorf("unexpected issuer %q", issuer)
}

func (v *GoogleVerifier) keysExpired() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return time.Now().UTC().After(v.keysExpire)
}

func (v *GoogleVerifier) copyKeys() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]any, len(v.rsaKeys))
	for kid, key := range v.rsaKeys {
		out[kid] = key
	}
	return out
}

func (v *GoogleVerifier) refreshJWKS() error {
	req, err := http.NewRequest(http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch jwks: status %d", resp.StatusCode)
	}

	var payload struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}

	keys := make(map[string]any, len(payload.Keys))
	for _, key := range payload.Keys {
		if key.Kty != "RSA" || key.Kid == "" {
			continue
		}
		pub, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		keys[key.Kid] = pub
	}
	if len(keys) == 0 {
		return errors.New("jwks contained no usable keys")
	}

	v.mu.Lock()
	v.rsaKeys = keys
	v.keysExpire = time.Now().UTC().Add(defaultJWKSTTL)
	v.mu.Unlock()
	return nil
}

func parseRSAPublicKey(n, e string) (any, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

// InsecureEmailVerifier accepts the raw token as the email. Local
// development only, selected when no Google client id is configured.
type InsecureEmailVerifier struct{}

// VerifyEmail treats the token itself as the asserted email.
func (InsecureEmailVerifier) VerifyEmail(idToken string) (string, error) {
	email := strings.TrimSpace(idToken)
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: not an email", ErrInvalidIdentity)
	}
	return email, nil
}
