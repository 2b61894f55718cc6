package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A token is only accepted for the purpose it was issued with,
// so an access token cannot be replayed as a review or verification link.
const (
	PurposeAccess = "access"
	PurposeVerify = "verify"
	PurposeReview = "review"
)

// Actor roles carried in token claims.
const (
	RoleSeller  = "seller"
	RolePartner = "partner"
)

var (
	// ErrTokenInvalid is returned when a token cannot be parsed or its signature fails.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenPurposeMismatch is returned when a token is presented for a purpose
	// other than the one it was issued with.
	ErrTokenPurposeMismatch = errors.New("token purpose mismatch")
)

// TokenClaims is the verified payload of a signed token.
type TokenClaims struct {
	// Subject is the entity id the token was issued for (seller, partner, or shipment).
	Subject string
	// Role is the actor role for access tokens; empty for purpose-scoped tokens
	// that reference a shipment.
	Role string
}

// TokenSigner issues signed tokens scoped to a purpose.
type TokenSigner interface {
	Sign(subject, role, purpose string, ttl time.Duration) (string, error)
}

// TokenVerifier validates signed tokens and extracts their claims.
type TokenVerifier interface {
	Verify(token, purpose string) (TokenClaims, error)
}

// JWTCodec implements TokenSigner and TokenVerifier using HMAC-signed JWTs.
type JWTCodec struct {
	secret []byte
}

// NewJWTCodec creates a JWTCodec signing with the given shared secret.
func NewJWTCodec(secret string) JWTCodec {
	return JWTCodec{secret: []byte(secret)}
}

// Sign issues a token for the subject, scoped to a purpose and expiring after ttl.
func (c JWTCodec) Sign(subject, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     subject,
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the token signature and expiry, and checks the token was
// issued for the expected purpose.
func (c JWTCodec) Verify(tokenString, purpose string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrTokenInvalid
	}

	if tokenPurpose, _ := claims["purpose"].(string); tokenPurpose != purpose {
		return TokenClaims{}, ErrTokenPurposeMismatch
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return TokenClaims{}, ErrTokenInvalid
	}

	role, _ := claims["role"].(string)
	return TokenClaims{Subject: subject, Role: role}, nil
}
