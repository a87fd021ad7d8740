package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kojiauth/kojiauth-go/internal/config"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the JWT claims for an issued session token. The
// subject is the user id; the email travels as a custom claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken creates a signed HS256 token for the given user.
func GenerateToken(user *model.User, cfg config.TokenConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken parses and validates a token string, returning the
// claims if valid. Signature, signing method, issuer, audience and
// expiry are all enforced; every failure collapses to ErrInvalidToken
// so callers cannot tell a forged token from an expired one.
func ValidateToken(tokenString string, cfg config.TokenConfig) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
