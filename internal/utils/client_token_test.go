package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseClientToken(t *testing.T) {
	token, err := IssueClientToken("menubar", "s3cret", time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseClientToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "menubar", claims.Subject)
	assert.Equal(t, ClientTokenIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestIssueClientToken_NoExpiry(t *testing.T) {
	token, err := IssueClientToken("menubar", "s3cret", 0, time.Now())
	require.NoError(t, err)

	claims, err := ParseClientToken(token, "s3cret")
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestIssueClientToken_RequiresInputs(t *testing.T) {
	_, err := IssueClientToken("", "s3cret", time.Hour, time.Now())
	assert.Error(t, err)
	_, err = IssueClientToken("menubar", "", time.Hour, time.Now())
	assert.Error(t, err)
}

func TestParseClientToken_Rejects(t *testing.T) {
	expired, err := IssueClientToken("menubar", "s3cret", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseClientToken(expired, "s3cret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	valid, err := IssueClientToken("menubar", "s3cret", time.Hour, time.Now())
	require.NoError(t, err)
	_, err = ParseClientToken(valid, "other")
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))

	_, err = ParseClientToken("not-a-token", "s3cret")
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}
