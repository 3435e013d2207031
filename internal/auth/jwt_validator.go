package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staylane/pricingservice/internal/domain"
)

// JWTValidator validates RS256 tokens signed by the identity provider, or
// HS256 tokens signed with a shared secret in development setups.
type JWTValidator struct {
	publicKey *rsa.PublicKey
	secret    []byte
	issuer    string
	leeway    time.Duration
}

// Options configures a JWTValidator. At least one key must be set.
type Options struct {
	PublicKeyPEM string
	HMACSecret   string
	Issuer       string
}

// NewJWTValidator creates a validator from the configured keys
func NewJWTValidator(opts Options) (*JWTValidator, error) {
	v := &JWTValidator{issuer: opts.Issuer, leeway: 30 * time.Second}

	if opts.PublicKeyPEM != "" {
		key, err := parseRSAPublicKey(opts.PublicKeyPEM)
		if err != nil {
			return nil, err
		}
		v.publicKey = key
	}
	if opts.HMACSecret != "" {
		v.secret = []byte(opts.HMACSecret)
	}
	if v.publicKey == nil && v.secret == nil {
		return nil, fmt.Errorf("a public key or HMAC secret is required")
	}
	return v, nil
}

func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not an RSA key")
	}
	return rsaPublicKey, nil
}

func (v *JWTValidator) methods() []string {
	var methods []string
	if v.publicKey != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	if v.secret != nil {
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	return methods
}

func (v *JWTValidator) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodRSA:
		if v.publicKey != nil {
			return v.publicKey, nil
		}
	case *jwt.SigningMethodHMAC:
		if v.secret != nil {
			return v.secret, nil
		}
	}
	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
}

// Validate validates a JWT and returns the guest ID from its subject
func (v *JWTValidator) Validate(ctx context.Context, token string) (string, error) {
	token = ExtractTokenFromAuthHeader(token)
	if token == "" {
		return "", domain.NewUnauthorizedError("missing bearer token")
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods()),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keyFunc, parserOpts...)
	if err != nil || !parsed.Valid {
		return "", domain.NewUnauthorizedError(fmt.Sprintf("invalid token: %v", err))
	}

	guestID, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(guestID) == "" {
		if alt, ok := claims["guest_id"].(string); ok && strings.TrimSpace(alt) != "" {
			return alt, nil
		}
		return "", domain.NewUnauthorizedError("guest id not found in token claims")
	}
	return guestID, nil
}
