// Package auth validates identity tokens issued by the external identity
// provider. The service never issues tokens; it only parses the signed
// permission facts out of them.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/config"
	"github.com/termweave/glossary-backend/internal/domain"
)

// identityClaims are the custom claims the provider embeds in access
// tokens. Subject carries the user ID.
type identityClaims struct {
	jwt.RegisteredClaims
	IsStaff               bool     `json:"is_staff"`
	CuratedPerspectiveIDs []string `json:"curated_perspective_ids,omitempty"`
}

// Verifier parses and validates provider-issued HS256 tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier from auth configuration.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// VerifyToken validates the token signature, issuer and expiry, and
// returns the identity facts it carries.
func (v *Verifier) VerifyToken(_ context.Context, token string) (domain.Identity, error) {
	claims := &identityClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("token subject: %w", domain.ErrUnauthorized)
	}

	identity := domain.Identity{
		UserID:  userID,
		IsStaff: claims.IsStaff,
	}
	for _, raw := range claims.CuratedPerspectiveIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("curated perspective id %q: %w", raw, domain.ErrUnauthorized)
		}
		identity.CuratedPerspectiveIDs = append(identity.CuratedPerspectiveIDs, id)
	}
	return identity, nil
}
