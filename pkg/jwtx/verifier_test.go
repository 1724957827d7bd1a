package jwtx_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/commonhall/commonhall/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "identity-provider"

// signEdDSA mints a token the way the identity provider would: EdDSA
// signature with the key id carried in the header.
func signEdDSA(t *testing.T, priv ed25519.PrivateKey, kid string, claims jwtx.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(priv)
	require.NoError(t, err)
	return signed
}

func newEdDSAKeySet(t *testing.T) (*jwtx.KeySet, ed25519.PrivateKey, string) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	kid := "test-ed25519"
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewEd25519JWK(kid, "sig", "EdDSA", pub)))

	return keys, priv, kid
}

func TestVerifyEdDSAToken(t *testing.T) {
	keys, priv, kid := newEdDSAKeySet(t)
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, []string{"community"})

	claims := jwtx.NewAccessClaims(
		"user-1",
		[]string{"community:read", "community:write"},
		time.Hour,
		testIssuer,
		[]string{"community"},
		"user1@example.com",
		"user1",
		time.Now().UTC(),
	)

	got, err := verifier.Verify(signEdDSA(t, priv, kid, claims))
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "user1@example.com", got.Email)
	require.Equal(t, "user1", got.Nickname)
	require.Equal(t, []string{"community:read", "community:write"}, got.Scopes)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	keys, priv, kid := newEdDSAKeySet(t)
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, nil)

	claims := jwtx.NewAccessClaims(
		"user-1", nil, time.Hour,
		"someone-else", nil, "", "",
		time.Now().UTC(),
	)

	_, err := verifier.Verify(signEdDSA(t, priv, kid, claims))
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsUnknownKid(t *testing.T) {
	keys, _, _ := newEdDSAKeySet(t)
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, nil)

	// A token signed by a key that never made it into the set.
	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(
		"user-1", nil, time.Hour,
		testIssuer, nil, "", "",
		time.Now().UTC(),
	)

	_, verr := verifier.Verify(signEdDSA(t, otherPriv, "rogue-kid", claims))
	require.Error(t, verr)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	keys, priv, kid := newEdDSAKeySet(t)
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, nil)

	claims := jwtx.NewAccessClaims(
		"user-1", nil, -time.Hour,
		testIssuer, nil, "", "",
		time.Now().UTC().Add(-2*time.Hour),
	)

	_, err := verifier.Verify(signEdDSA(t, priv, kid, claims))
	require.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	keys, priv, kid := newEdDSAKeySet(t)
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, nil)

	claims := jwtx.NewAccessClaims(
		"user-1", nil, time.Hour,
		testIssuer, nil, "", "",
		time.Now().UTC(),
	)

	token := signEdDSA(t, priv, kid, claims)
	tampered := token[:len(token)-4] + "AAAA"

	_, err := verifier.Verify(tampered)
	require.Error(t, err)
}

func TestLoadKeySetInlineJSON(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwks := jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("inline-key", "sig", "EdDSA", pub)}}
	raw, err := json.Marshal(jwks)
	require.NoError(t, err)

	keys, err := jwtx.LoadKeySet(context.Background(), string(raw))
	require.NoError(t, err)
	require.True(t, keys.IsReady())

	verifier := jwtx.NewCommonEdDSA(keys, testIssuer, nil)

	claims := jwtx.NewAccessClaims(
		"user-1", nil, time.Hour,
		testIssuer, nil, "", "",
		time.Now().UTC(),
	)

	got, verr := verifier.Verify(signEdDSA(t, priv, "inline-key", claims))
	require.NoError(t, verr)
	require.Equal(t, "user-1", got.Subject)
}

func TestLoadKeySetFromFile(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwks := jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("file-key", "sig", "EdDSA", pub)}}
	raw, err := json.Marshal(jwks)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	keys, err := jwtx.LoadKeySet(context.Background(), path)
	require.NoError(t, err)
	require.True(t, keys.IsReady())

	_, err = keys.Get("file-key")
	require.NoError(t, err)
}

func TestLoadKeySetEmptySource(t *testing.T) {
	_, err := jwtx.LoadKeySet(context.Background(), "  ")
	require.ErrorIs(t, err, jwtx.ErrNoKeySource)
}
