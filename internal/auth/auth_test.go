package auth_test

import (
	"catconnect/internal/auth"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return PEM-encoded private and public keys.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(privPEM), string(pubPEM)
}

func signClaims(tb testing.TB, priv *rsa.PrivateKey, claims jwt.Claims) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestIssueAndVerify(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)
	issuer, err := auth.NewIssuer(privPEM, "catconnect", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(pubPEM, "catconnect")
	require.NoError(t, err)

	p := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleBusinessOwner}
	tkn, err := issuer.Issue(p)
	require.NoError(t, err)
	require.Equal(t, "Bearer", tkn.TokenType)
	require.WithinDuration(t, time.Now().Add(time.Hour), tkn.ExpiresAt, 5*time.Second)

	got, err := verifier.Verify(tkn.AccessToken)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestVerify_failures(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	otherPriv, _, _ := genRSAKeys(t)
	verifier, err := auth.NewVerifier(pubPEM, "catconnect")
	require.NoError(t, err)

	now := time.Now()
	valid := func(sub string, role domain.Role) auth.Claims {
		return auth.Claims{
			Role: role,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "catconnect",
				Subject:   sub,
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	expired := valid(uuid.NewString(), domain.RoleJobSeeker)
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	noExpiry := valid(uuid.NewString(), domain.RoleJobSeeker)
	noExpiry.ExpiresAt = nil
	wrongIssuer := valid(uuid.NewString(), domain.RoleJobSeeker)
	wrongIssuer.Issuer = "someone-else"

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, valid(uuid.NewString(), domain.RoleAdmin)).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"invalid signature": signClaims(t, otherPriv, valid(uuid.NewString(), domain.RoleJobSeeker)),
		"expired":           signClaims(t, priv, expired),
		"missing expiry":    signClaims(t, priv, noExpiry),
		"wrong issuer":      signClaims(t, priv, wrongIssuer),
		"invalid subject":   signClaims(t, priv, valid("not-a-uuid", domain.RoleJobSeeker)),
		"unknown role":      signClaims(t, priv, valid(uuid.NewString(), "superuser")),
		"wrong algorithm":   hs256,
		"garbage":           "abc.def.ghi",
	}

	for name, tkn := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(tkn)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestNewIssuer_badKey(t *testing.T) {
	_, err := auth.NewIssuer("not a key", "", time.Hour)
	require.Error(t, err)

	_, err = auth.NewVerifier("not a key", "")
	require.Error(t, err)
}

func TestPrincipalContext(t *testing.T) {
	require.True(t, auth.PrincipalFrom(context.Background()).Anonymous())

	p := domain.Principal{UserID: domain.NewID[domain.UserID](), Role: domain.RoleAdmin}
	ctx := auth.WithPrincipal(context.Background(), p)
	require.Equal(t, p, auth.PrincipalFrom(ctx))
}
