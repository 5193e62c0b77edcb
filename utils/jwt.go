package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultExpireMinutes = 120

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() []byte {
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		return []byte(v)
	}
	// Fallback for dev if env not set, BUT SHOULD BE SET
	return []byte("super-secret-default-key-change-me")
}

func signingMethod() *jwt.SigningMethodHMAC {
	switch os.Getenv("JWT_ALGORITHM") {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// TokenExpiry returns the configured access token lifetime.
func TokenExpiry() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return defaultExpireMinutes * time.Minute
}

// GenerateToken creates a new JWT for a user
func GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(TokenExpiry()).Unix(),
	}

	token := jwt.NewWithClaims(signingMethod(), claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses the token string and returns the subject user ID.
// Fails on a bad signature, wrong signing method, expiry or a malformed
// subject.
func ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})

	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
