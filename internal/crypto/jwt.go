package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-presets"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// PresetClaims authorize writes to the preset store.
type PresetClaims struct {
	jwt.RegisteredClaims
}

// IssuePresetToken signs an HS256 token for subject, valid for ttl.
func IssuePresetToken(subject, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := PresetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParsePresetToken validates signature, issuer, audience and expiry.
func ParsePresetToken(tokenString, secret string) (*PresetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PresetClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PresetClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
