package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// SeedNames are the first names inserted at startup.
var SeedNames = []string{"jhon", "frederic", "kevin", "michel", "franc", "raymond"}

// Seed inserts one employee per SeedNames entry and returns how many were stored.
// Failures are logged, never returned: a failed seed must not stop the server.
func Seed(ctx context.Context, repo Repository, logger *slog.Logger) int {
	logger.InfoContext(ctx, "initializing data", slog.Int("employees", len(SeedNames)))

	var result *multierror.Error
	inserted := 0
	for _, name := range SeedNames {
		if _, err := repo.Create(ctx, Employee{FirstName: name}); err != nil {
			result = multierror.Append(result, fmt.Errorf("seed %s: %w", name, err))
			continue
		}
		inserted++
	}
	if err := result.ErrorOrNil(); err != nil {
		logger.ErrorContext(ctx, "exception while inserting mock data",
			slog.Int("inserted", inserted),
			slog.Any("error", err),
		)
	}
	return inserted
}
