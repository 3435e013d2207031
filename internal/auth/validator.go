package auth

import (
	"context"
	"strings"
)

// Validator validates a bearer token and returns the guest it identifies
type Validator interface {
	Validate(ctx context.Context, token string) (guestID string, err error)
}

// ExtractTokenFromAuthHeader extracts the token from an Authorization header
func ExtractTokenFromAuthHeader(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	// If no Bearer prefix, assume the entire header is the token
	return authHeader
}
