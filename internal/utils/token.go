package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims identifies the account a password reset token was issued for
type ResetClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// ResetTokenUtil issues and validates short-lived password reset tokens.
// These are single-purpose credentials for the forgot-password flow, not
// session tokens.
type ResetTokenUtil struct {
	secretKey string
	ttl       time.Duration
}

// NewResetTokenUtil creates a new ResetTokenUtil
func NewResetTokenUtil(secretKey string, ttl time.Duration) *ResetTokenUtil {
	return &ResetTokenUtil{secretKey: secretKey, ttl: ttl}
}

// GenerateToken generates a signed reset token for the given user
func (u *ResetTokenUtil) GenerateToken(userID int64) (string, error) {
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(u.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a reset token and returns its claims
func (u *ResetTokenUtil) ValidateToken(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse reset token: %w", err)
	}

	if claims, ok := token.Claims.(*ResetClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid reset token")
}
