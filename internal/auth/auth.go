// Package auth issues and verifies RS256 bearer tokens carrying the user id
// as subject and the marketplace role as a private claim.
package auth

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

// Claims are the JWT claims understood by the API.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Token is a signed access token.
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Issuer signs tokens with an RSA private key.
type Issuer struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer parses the PEM encoded private key.
func NewIssuer(privateKeyPEM, issuer string, ttl time.Duration) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Issuer{key: key, issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue returns a token for p valid for the configured TTL.
func (i *Issuer) Issue(p domain.Principal) (Token, error) {
	return i.IssueWithTTL(p, i.ttl)
}

// IssueWithTTL returns a token for p valid for ttl.
func (i *Issuer) IssueWithTTL(p domain.Principal, ttl time.Duration) (Token, error) {
	now := i.now()
	exp := now.Add(ttl)
	claims := Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   p.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return Token{}, fmt.Errorf("could not sign token: %w", err)
	}

	return Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: exp.UTC()}, nil
}

// Verifier validates tokens signed by the matching Issuer.
type Verifier struct {
	key    *rsa.PublicKey
	issuer string
}

// NewVerifier parses the PEM encoded public key. An empty issuer accepts any.
func NewVerifier(publicKeyPEM, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{key: key, issuer: issuer}, nil
}

// Verify checks signature, algorithm, expiry and claims and returns the
// principal. All failures are serrors.ErrUnauthorized.
func (v *Verifier) Verify(token string) (domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return v.key, nil }, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "token expired")
		}

		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseID[domain.UserID](claims.Subject)
	if err != nil {
		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	if !claims.Role.Valid() {
		return domain.Principal{}, serrors.With(serrors.ErrUnauthorized, "invalid token role")
	}

	return domain.Principal{UserID: userID, Role: claims.Role}, nil
}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or an anonymous one.
func PrincipalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(ctxKey{}).(domain.Principal)

	return p
}
