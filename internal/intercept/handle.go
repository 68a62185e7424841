package intercept

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

// Endpoint is an HTTP handler that returns its payload instead of writing it.
type Endpoint[T any] func(r *http.Request) (T, error)

// Handle adapts endpoint to http.HandlerFunc with logging advice. A nil error writes the
// payload as JSON with status; an error is rendered by httpx.RespondError.
func Handle[T any](a *Advisor, method string, status int, endpoint Endpoint[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := Around(r.Context(), a, method, requestArgs(r), func(context.Context) (T, error) {
			return endpoint(r)
		})
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, status, result)
	}
}

func requestArgs(r *http.Request) []any {
	args := []any{r.Method + " " + r.URL.Path}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			args = append(args, key+"="+rctx.URLParams.Values[i])
		}
	}
	if sess, ok := SessionFromContext(r.Context()); ok {
		args = append(args, "session="+sess.ID)
	}
	return args
}
