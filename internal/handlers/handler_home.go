package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webgroup16/contacts_app/internal/middleware"
)

// HealthChecker probes database connectivity with a trivial query. Any
// failure is logged and reported as a generic 500.
func HealthChecker(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var one int
		if err := pool.QueryRow(c.Request.Context(), "SELECT 1").Scan(&one); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error connecting to the database"})
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to the Contacts API!"})
	}
}
