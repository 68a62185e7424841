package app

import (
	"log/slog"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/employee"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/intercept"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/observability"
)

// Components is the assembled employee stack.
type Components struct {
	Repository employee.Repository
	Service    employee.Operations
	Handler    *employee.Handler
}

// Assemble decorates repo with logging advice at every layer and guards the mutating
// routes with the authorizer selected by cfg. metrics may be nil.
func Assemble(cfg *Config, logger *slog.Logger, metrics *observability.Metrics, repo employee.Repository) (*Components, error) {
	authorizer, err := NewAuthorizer(cfg)
	if err != nil {
		return nil, err
	}

	var observer intercept.Observer
	if metrics != nil {
		observer = metrics
	}

	loggedRepo := employee.NewLoggedRepository(repo, intercept.NewAdvisor(employee.RepositoryType, logger, observer))
	service := employee.NewLoggedService(
		employee.NewService(loggedRepo),
		intercept.NewAdvisor(employee.ServiceType, logger, observer),
	)
	handlerAdvisor := intercept.NewAdvisor(employee.HandlerType, logger, observer)
	gate := intercept.NewGate(authorizer, handlerAdvisor)

	return &Components{
		Repository: loggedRepo,
		Service:    service,
		Handler:    employee.NewHandler(service, handlerAdvisor, gate),
	}, nil
}
