package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/middleware"
	"github.com/webgroup16/contacts_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container. Rate limiters share the given store
// (Redis-backed in production) so limits hold across instances.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	pool *pgxpool.Pool,
	limiterStore limiter.Store,
) error {
	loginLimiter, err := newLimiter(limiterStore, cfg.LoginRate)
	if err != nil {
		return err
	}
	contactCreateLimiter, err := newLimiter(limiterStore, cfg.ContactCreateRate)
	if err != nil {
		return err
	}
	avatarLimiter, err := newLimiter(limiterStore, cfg.AvatarUpdateRate)
	if err != nil {
		return err
	}

	api := r.Group("/api")

	api.GET("/healthchecker", HealthChecker(pool))

	// Public authentication routes
	registerAuthRoutes(api, cfg, services, loginLimiter)

	// Authenticated routes resolve the current user via the token service
	// (look-aside cache, store on miss).
	authed := api.Group("", middleware.AuthMiddleware(services.Token))
	registerContactRoutes(authed, services.Contact, contactCreateLimiter)
	registerUserRoutes(authed, services, avatarLimiter)

	return nil
}

func newLimiter(store limiter.Store, formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}
	return limiter.New(store, rate), nil
}
