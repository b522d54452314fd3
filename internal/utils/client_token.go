package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientTokenIssuer is the issuer claim on tokens minted for API clients.
const ClientTokenIssuer = "currencybar"

// IssueClientToken signs an HS256 token whose subject is clientID.
// A non-positive ttl issues a token without an expiry.
func IssueClientToken(clientID, secret string, ttl time.Duration, now time.Time) (string, error) {
	if clientID == "" {
		return "", errors.New("client id is required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    ClientTokenIssuer,
		Subject:   clientID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseClientToken parses a token string, validates its signature and standard claims.
// Errors wrap the jwt sentinel errors, e.g. jwt.ErrTokenExpired.
func ParseClientToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
