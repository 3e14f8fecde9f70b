package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAuthTokenTTL = 7 * 24 * time.Hour

var (
	ErrAuthTokenMissing              = errors.New("missing auth token")
	ErrAuthTokenInvalid              = errors.New("invalid auth token")
	ErrAuthTokenExpired              = errors.New("expired auth token")
	ErrAuthTokenInvalidUserID        = errors.New("invalid auth token user id")
	ErrAuthTokenInvalidPasswordState = errors.New("invalid auth token password state")
)

// AuthClaims binds a session to the password hash it was issued for, so a
// password change revokes older tokens.
type AuthClaims struct {
	UserID        uint   `json:"uid"`
	PasswordState string `json:"password_state"`
	jwt.RegisteredClaims
}

func BuildAuthToken(secretKey []byte, userID uint, passwordHash string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultAuthTokenTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	passwordState := PasswordStateFingerprint(passwordHash)
	if passwordState == "" {
		return "", ErrAuthTokenInvalidPasswordState
	}

	claims := AuthClaims{
		UserID:        userID,
		PasswordState: passwordState,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseAuthToken(secretKey []byte, rawToken string, now time.Time) (*AuthClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrAuthTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrAuthTokenExpired
		}
		return nil, ErrAuthTokenInvalid
	}
	if !token.Valid {
		return nil, ErrAuthTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrAuthTokenExpired
	}
	if claims.UserID == 0 {
		return nil, ErrAuthTokenInvalidUserID
	}
	if strings.TrimSpace(claims.PasswordState) == "" {
		return nil, ErrAuthTokenInvalidPasswordState
	}
	return claims, nil
}

func PasswordStateFingerprint(passwordHash string) string {
	normalizedHash := strings.TrimSpace(passwordHash)
	if normalizedHash == "" {
		return ""
	}

	sum := sha256.Sum256([]byte("florette.auth.password-state.v1:" + normalizedHash))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func IsPasswordStateFingerprintMatch(expected string, passwordHash string) bool {
	actual := PasswordStateFingerprint(passwordHash)
	if strings.TrimSpace(expected) == "" || strings.TrimSpace(actual) == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
