package supabase

import (
	"ayurdeploy/pkg/serrors"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	serviceRole     = "service_role"
	secretKeyPrefix = "sb_secret_"
)

// KeyClaims are the claims carried by a legacy Supabase API key.
type KeyClaims struct {
	Role string `json:"role"`
	Ref  string `json:"ref"`
	jwt.RegisteredClaims
}

// ValidateServiceRoleKey checks that key is a service role key. Legacy keys
// are JWTs whose signature can only be verified by the project, so only the
// claims are inspected: the role must be service_role and the key must not be
// expired at now. Opaque secret keys (sb_secret_...) are accepted as is.
func ValidateServiceRoleKey(key string, now time.Time) (*KeyClaims, error) {
	if strings.HasPrefix(key, secretKeyPrefix) {
		return &KeyClaims{Role: serviceRole}, nil
	}

	claims := &KeyClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "service role key is not a valid JWT")
	}
	if claims.Role != serviceRole {
		return nil, serrors.With(serrors.ErrUnauthorized,
			"key has role %q, a %q key is required", claims.Role, serviceRole)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return nil, serrors.With(serrors.ErrUnauthorized,
			"service role key expired at %s", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return claims, nil
}

// MatchesProject reports whether the key was issued for the project at
// projectURL. Keys without a ref claim and custom domains always match.
func (k *KeyClaims) MatchesProject(projectURL string) bool {
	if k.Ref == "" {
		return true
	}

	u, err := url.Parse(projectURL)
	if err != nil {
		return false
	}

	host := u.Hostname()
	if !strings.HasSuffix(host, ".supabase.co") {
		return true
	}

	return strings.TrimSuffix(host, ".supabase.co") == k.Ref
}
