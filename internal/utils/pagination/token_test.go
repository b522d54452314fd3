package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	lastUpdate := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "0b6c2c1e-8d7a-4f41-9a3a-3b9f5d0f7e11"

	token := EncodeToken(lastUpdate, id)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")

	decodedTime, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, lastUpdate.Equal(decodedTime))
	assert.Equal(t, id, decodedID)

	// Non-UTC input is normalized
	local := lastUpdate.In(time.FixedZone("CET", 3600))
	decodedTime, _, err = DecodeToken(EncodeToken(local, id))
	require.NoError(t, err)
	assert.True(t, lastUpdate.Equal(decodedTime))
}

func TestDecodeTokenError(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		message string
	}{
		{name: "not base64", token: "this is not base64!", message: "base64 decode"},
		{name: "missing separator", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")), message: "split"},
		{name: "missing id", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|")), message: "split"},
		{name: "bad time", token: base64.RawURLEncoding.EncodeToString([]byte("notadate|abc")), message: "last update parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
