package utils

import (
	"fmt"
	"time"

	"github.com/smithbhavsar/ChatpataAI/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried in the session token.
type Claims struct {
	CustomerID uint        `json:"customerId"`
	Role       entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for a customer.
func GenerateToken(customerID uint, role entity.Role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		CustomerID: customerID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps concurrent logins for the same account distinct
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
