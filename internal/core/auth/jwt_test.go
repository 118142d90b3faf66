package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "api", TTL: time.Hour}

	tok, err := j.Issue("id-1", "a@x.com", "Editor")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "id-1", c.ID)
	require.Equal(t, "a@x.com", c.Email)
	require.Equal(t, "Editor", c.Role)
	require.Equal(t, "api", c.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a := &JWTer{Secret: []byte("alpha"), Issuer: "api", TTL: time.Hour}
	b := &JWTer{Secret: []byte("bravo"), Issuer: "api", TTL: time.Hour}

	tok, err := a.Issue("id-1", "a@x.com", "Editor")
	require.NoError(t, err)

	_, err = b.Parse(tok)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	a := &JWTer{Secret: []byte("s3cret"), Issuer: "other", TTL: time.Hour}
	b := &JWTer{Secret: []byte("s3cret"), Issuer: "api", TTL: time.Hour}

	tok, err := a.Issue("id-1", "a@x.com", "Editor")
	require.NoError(t, err)

	_, err = b.Parse(tok)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// Negative TTL puts expiry before issuance, past the 60s leeway.
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "api", TTL: -2 * time.Minute}

	tok, err := j.Issue("id-1", "a@x.com", "Editor")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "api", TTL: time.Hour}
	_, err := j.Parse("not.a.token")
	require.Error(t, err)
}
