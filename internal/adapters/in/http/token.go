package http

import (
	"errors"
	"fmt"
	"time"

	"burgershop/internal/core/application/usecases/queries"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued bearer token stays valid.
const tokenTTL = 24 * time.Hour

// CustomClaims is the JWT payload issued on login. Capabilities are not
// embedded; they are recomputed from the role on every request so a role
// change takes effect without waiting for token expiry.
type CustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with an HMAC secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer creates a token issuer over the given signing secret.
func NewTokenIssuer(secret string) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the authenticated account.
func (t TokenIssuer) Issue(account queries.AuthenticatedUserResponse) (string, error) {
	now := t.now()
	claims := CustomClaims{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the token signature and expiry and returns its claims.
func (t TokenIssuer) Parse(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
