package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates an opaque continuation token from the sort key of the last listed asset.
func EncodeToken(lastUpdate time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", lastUpdate.UTC().Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken. Errors wrap apperrors.ErrValidation.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}

	lastUpdate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid pagination token (last update parse): %v", apperrors.ErrValidation, err)
	}
	return lastUpdate, parts[1], nil
}
