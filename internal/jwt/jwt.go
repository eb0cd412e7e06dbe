package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is used when neither the service nor the caller sets a ttl.
const DefaultExpiration = 15 * time.Minute

// ErrInvalidToken is returned for any token that fails validation: bad signature,
// unexpected algorithm, malformed input, expiry, or a missing subject.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by an access token. The subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT issues and validates signed access tokens.
type JWT struct {
	secretKey []byte
	method    *jwt.SigningMethodHMAC
	exp       time.Duration
	now       func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the default token lifetime. Non-positive values are ignored.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		if exp > 0 {
			j.exp = exp
		}
	}
}

// WithAlgorithm selects an HMAC signing algorithm by name (HS256, HS384, HS512).
// Unknown names keep the current algorithm.
func WithAlgorithm(alg string) Option {
	return func(j *JWT) {
		if m, ok := jwt.GetSigningMethod(strings.ToUpper(alg)).(*jwt.SigningMethodHMAC); ok {
			j.method = m
		}
	}
}

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT with HS256 and a 15 minute lifetime unless overridden.
func New(opts ...Option) *JWT {
	j := &JWT{
		method: jwt.SigningMethodHS256,
		exp:    DefaultExpiration,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue creates a token for subject that expires after ttl.
// A non-positive ttl uses the configured default.
func (j *JWT) Issue(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = j.exp
	}

	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString(j.secretKey)
}

// Generate creates a token for subject with the default lifetime.
func (j *JWT) Generate(ctx context.Context, subject string) (string, error) {
	return j.Issue(ctx, subject, 0)
}

// Validate checks the token's algorithm, signature and expiry and returns its subject.
func (j *JWT) Validate(ctx context.Context, tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
