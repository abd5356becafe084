package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type actorKey struct{}

// requireActor runs after httpx.AuthnMiddleware and turns the verified
// subject into a domain.Actor, rejecting tokens for accounts that no longer
// exist.
func requireActor(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := httpx.UserIDFromContext(r.Context())
			if !ok {
				writeError(w, r, domain.Unauthorized("Access denied. No token provided."))
				return
			}

			actor, err := auth.ActorFor(r.Context(), userID)
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFrom returns the actor stored by requireActor. Handlers behind that
// middleware always get one.
func actorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey{}).(domain.Actor)
	return actor
}
