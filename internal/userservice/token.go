package userservice

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token missing or invalid")

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// signToken issues an HMAC-signed token carrying the user's id and username.
// A ttl of zero issues a token with no expiry.
func signToken(secret []byte, userID int, username string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.Itoa(userID),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verifyToken checks the signature and signing method and requires an
// identity claim. All failures collapse to ErrInvalidToken.
func verifyToken(secret []byte, token string) (int, string, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id < 1 {
		return 0, "", ErrInvalidToken
	}

	return id, claims.Username, nil
}
