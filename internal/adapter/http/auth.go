package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund/internal/core/domain"
)

type callerKey struct{}

// Authenticator verifies HS256 bearer tokens whose subject is the caller's
// address.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for addr valid for ttl.
func (a *Authenticator) Issue(addr domain.Address, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   addr.String(),
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify returns the caller address carried by a token.
func (a *Authenticator) Verify(raw string) (domain.Address, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return "", err
	}
	addr, err := domain.ParseAddress(claims.Subject)
	if err != nil || addr.IsZero() {
		return "", domain.ErrUnauthenticated
	}
	return addr, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller address in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeErrorMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}
		caller, err := a.Verify(raw)
		if err != nil {
			writeErrorMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

// callerFrom returns the authenticated caller, or the zero address on
// routes without the middleware.
func callerFrom(ctx context.Context) domain.Address {
	caller, _ := ctx.Value(callerKey{}).(domain.Address)
	return caller
}
