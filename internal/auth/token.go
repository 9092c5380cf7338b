// Package auth issues and verifies the bearer tokens that authenticate API
// requests. Tokens are HS256 JWTs carrying the identity id as the subject and
// the identity's namespace as a role claim.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"movie-booking/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Claims struct {
	IdentityID int
	Role       domain.Role
}

type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token for the given identity. The ttl bounds the
// token's lifetime; expired tokens fail verification.
func IssueToken(secret []byte, identityID int, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(identityID),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

// VerifyToken parses and validates a bearer token, returning the identity id
// and role it carries. A token without a role claim is treated as a plain
// user token.
func VerifyToken(secret []byte, tokenString string) (Claims, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	identityID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if role == "" {
		role = domain.RoleUser
	}

	return Claims{IdentityID: identityID, Role: role}, nil
}
