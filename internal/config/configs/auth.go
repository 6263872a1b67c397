package configs

import "errors"

// MinSecretLen is the shortest JWT secret accepted outside dev.
const MinSecretLen = 32

// devSecret signs tokens in dev when AUTH_JWT_SECRET is unset.
const devSecret = "crowdfund-dev-only-secret"

var ErrWeakSecret = errors.New("AUTH_JWT_SECRET must be set to at least 32 bytes outside dev")

// Auth configures verification of caller tokens. Tokens are HS256 JWTs
// whose subject is the caller's address.
type Auth struct {
	Secret string `env:"JWT_SECRET"`
	Issuer string `env:"JWT_ISSUER" envDefault:"crowdfund"`
}

// Validate rejects a missing or short secret unless dev is set.
func (a Auth) Validate(dev bool) error {
	if dev || len(a.Secret) >= MinSecretLen {
		return nil
	}
	return ErrWeakSecret
}

// SigningSecret is the configured secret, or a fixed one in dev when none
// is configured.
func (a Auth) SigningSecret(dev bool) string {
	if a.Secret == "" && dev {
		return devSecret
	}
	return a.Secret
}
