package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeAnalyze grants access to the analysis endpoints.
const ScopeAnalyze = "analyze"

// Claims represents JWT claims for analysis access tokens
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates an HS256 token for client, valid for ttl
func GenerateAccessToken(secret, client string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}

	now := time.Now()
	claims := &Claims{
		Scope: ScopeAnalyze,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken validates a JWT access token and returns the claims
func ValidateAccessToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.Scope != ScopeAnalyze {
			return nil, errors.New("token lacks analyze scope")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
