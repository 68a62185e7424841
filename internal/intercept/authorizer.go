package intercept

import (
	"crypto/subtle"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authorizer decides whether an Authorization header value may pass the gate.
type Authorizer interface {
	Authorize(header string) bool
}

// AuthorizerFunc adapts a plain predicate to Authorizer.
type AuthorizerFunc func(header string) bool

// Authorize calls f(header).
func (f AuthorizerFunc) Authorize(header string) bool {
	return f(header)
}

// StaticToken accepts exactly one header value.
func StaticToken(token string) Authorizer {
	expected := []byte(token)
	return AuthorizerFunc(func(header string) bool {
		if len(expected) == 0 || header == "" {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(header), expected) == 1
	})
}

// BcryptHash accepts header values matching a bcrypt hash.
func BcryptHash(hash string) Authorizer {
	hashed := []byte(hash)
	return AuthorizerFunc(func(header string) bool {
		if len(hashed) == 0 || header == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword(hashed, []byte(header)) == nil
	})
}

// JWT accepts "Bearer <token>" headers carrying an HS256 token signed with secret.
func JWT(secret []byte) Authorizer {
	return AuthorizerFunc(func(header string) bool {
		if len(secret) == 0 {
			return false
		}
		raw, ok := bearerToken(header)
		if !ok {
			return false
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		return err == nil && token.Valid
	})
}

// AllowAll accepts every request, including ones without a header.
func AllowAll() Authorizer {
	return AuthorizerFunc(func(string) bool { return true })
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
