package app

import (
	"fmt"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/intercept"
)

// NewAuthorizer builds the authorization predicate selected by AUTH_MODE.
func NewAuthorizer(cfg *Config) (intercept.Authorizer, error) {
	switch cfg.AuthMode {
	case AuthStatic:
		return intercept.StaticToken(cfg.AuthToken), nil
	case AuthBcrypt:
		return intercept.BcryptHash(cfg.AuthTokenHash), nil
	case AuthJWT:
		return intercept.JWT([]byte(cfg.AuthJWTSecret)), nil
	case AuthNone:
		return intercept.AllowAll(), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}
