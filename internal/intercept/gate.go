package intercept

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

// ErrDenied is returned to clients rejected by the gate.
var ErrDenied = fmt.Errorf("auth error: %w", httpx.ErrUnauthorized)

// Session is created for every request the gate lets through.
type Session struct {
	ID            string
	Authorization string
}

type sessionKey struct{}

// ContextWithSession stores the session in ctx.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session placed by the gate, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(Session)
	return sess, ok
}

// Gate guards handlers that require authorization.
type Gate struct {
	authorizer Authorizer
	advisor    *Advisor
}

// NewGate builds a gate reporting through advisor.
func NewGate(authorizer Authorizer, advisor *Advisor) *Gate {
	return &Gate{authorizer: authorizer, advisor: advisor}
}

// Require returns middleware that runs before the handler named method. Requests whose
// Authorization header is rejected never reach next.
func (g *Gate) Require(method string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := g.advisor.Logger()
			if g.authorizer == nil {
				logger.ErrorContext(ctx, "authorization gate has no authorizer",
					slog.String("type", g.advisor.Type()),
					slog.String("method", method),
				)
				httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
				return
			}

			if !g.authorizer.Authorize(r.Header.Get("Authorization")) {
				logger.WarnContext(ctx, "authorization denied",
					slog.String("type", g.advisor.Type()),
					slog.String("method", method),
					slog.String("path", r.URL.Path),
				)
				g.observe(method, OutcomeDenied)
				httpx.RespondError(w, ErrDenied)
				return
			}

			sess := Session{ID: uuid.NewString(), Authorization: r.Header.Get("Authorization")}
			logger.InfoContext(ctx, "user session established",
				slog.String("type", g.advisor.Type()),
				slog.String("method", method),
				slog.String("session_id", sess.ID),
			)
			g.observe(method, OutcomeAllowed)
			next.ServeHTTP(w, r.WithContext(ContextWithSession(ctx, sess)))
		})
	}
}

func (g *Gate) observe(method, outcome string) {
	if g.advisor != nil {
		g.advisor.observe(method, outcome)
	}
}
