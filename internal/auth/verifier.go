package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cardvault/catalogsync/internal/domain"
)

// Verifier validates bearer credentials and resolves the caller's identity.
// Tokens are HS256 JWTs issued by the authentication provider; the subject
// claim carries the user ID and an optional "role" claim carries the
// caller-attached role.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a bearer token, returning the resolved
// identity. Any missing, malformed, expired, or unverifiable token yields
// domain.ErrUnauthenticated.
func (v *Verifier) Verify(tokenStr string) (domain.Identity, error) {
	if tokenStr == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no subject", domain.ErrUnauthenticated)
	}

	identity := domain.Identity{UserID: sub}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
		identity.HasRoleClaim = true
	}
	return identity, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// Returns "" when the header is absent or not a bearer credential.
func ExtractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
