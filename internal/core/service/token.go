package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
)

// TokenIssuer mints and verifies stateless HS256 bearer tokens. There is no
// revocation list; logout is client-side discard.
type TokenIssuer struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), tokenTTL: tokenTTL}
}

type tokenClaims struct {
	Kind       domain.PrincipalKind `json:"kind"`
	Username   string               `json:"username"`
	Name       string               `json:"name,omitempty"`
	ExternalID *int64               `json:"external_id,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the principal's id, kind and display fields.
func (t *TokenIssuer) Issue(p *domain.Principal) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Kind:       p.Kind,
		Username:   p.Username,
		Name:       p.Name,
		ExternalID: p.ExternalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenTTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(t.secret)
}

// Verify parses and validates a token. Expired, tampered and malformed
// tokens all collapse to domain.ErrInvalidToken so the caller learns nothing
// about why verification failed.
func (t *TokenIssuer) Verify(token string) (*domain.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	var id int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.Kind != domain.KindPatient && claims.Kind != domain.KindPractitioner {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		PrincipalID: id,
		Kind:        claims.Kind,
		Username:    claims.Username,
		Name:        claims.Name,
		ExternalID:  claims.ExternalID,
	}, nil
}
