package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Parent gate errors
var (
	ErrWrongPIN     = errors.New("incorrect parent PIN")
	ErrInvalidToken = errors.New("invalid parent token")
)

// HashPIN hashes a parent PIN with bcrypt
func HashPIN(pin string) (string, error) {
	if len(pin) < 4 {
		return "", fmt.Errorf("parent PIN must be at least 4 digits")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash parent PIN: %w", err)
	}
	return string(hash), nil
}

// VerifyPIN checks a PIN attempt against the stored bcrypt hash
func VerifyPIN(hash, pin string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return ErrWrongPIN
	}
	return nil
}

// ParentGate issues and validates short-lived parent access tokens.
// A token is bound to one device, so unlocking the parent area on one
// device grants nothing on another.
type ParentGate struct {
	secret []byte
	ttl    time.Duration
}

// NewParentGate creates a gate signing tokens with the given secret
func NewParentGate(secret string, ttl time.Duration) *ParentGate {
	return &ParentGate{secret: []byte(secret), ttl: ttl}
}

// IssueToken creates a signed parent token for a device
func (g *ParentGate) IssueToken(deviceID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(g.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign parent token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies a parent token and checks it belongs to the device
func (g *ParentGate) ValidateToken(tokenString, deviceID string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return ErrInvalidToken
	}
	if claims.Subject != deviceID {
		return ErrInvalidToken
	}
	return nil
}
