package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kakeibo/kakeibo/internal/config"
	"github.com/kakeibo/kakeibo/pkg/user"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve X-User-Id into a user in the request context. Unknown uids are
	// provisioned on first sight, mirroring the upstream identity provider's
	// lazy user creation.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userIdHeader := req.Header.Get("X-User-Id")
			ctx := req.Context()

			if userIdHeader != "" {
				u, err := deps.UserService.Provision(ctx, userIdHeader)
				if err != nil {
					log.Errorf("failed to resolve user: %v", err)
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				log.Debugf("user resolved: %s", u.Uid)
				ctx = user.WithUser(ctx, u)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
