package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
	"github.com/webgroup16/contacts_app/internal/middleware"
)

// maxAvatarSize caps uploaded avatar files at 10MB.
const maxAvatarSize = 10 << 20

// UserHandler handles requests about the current account.
type UserHandler struct {
	userService   portssvc.UserSvcFacade
	avatarStorage portssvc.AvatarStorage
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade, avatars portssvc.AvatarStorage) *UserHandler {
	return &UserHandler{userService: us, avatarStorage: avatars}
}

// registerUserRoutes sets up the authenticated user routes.
func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, avatarLimiter *limiter.Limiter) {
	h := NewUserHandler(services.User, services.Avatar)

	users := rg.Group("/users")
	{
		users.GET("/me", h.Me)
		users.PATCH("/avatar", middleware.RateLimit(avatarLimiter), h.UpdateAvatar)
	}
}

// Me returns the current account snapshot. The snapshot may come from the
// look-aside cache and lag recent profile changes until the TTL expires.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateAvatar uploads a new avatar image and stores its URL. The cached
// session keeps serving the old URL until the cache entry expires.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "No file provided"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "File too large"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	url, err := h.avatarStorage.UploadAvatar(c.Request.Context(), fileHeader, user.UserID)
	if err != nil {
		logger.Error("Failed to upload avatar", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload avatar"})
		return
	}

	updated, err := h.userService.UpdateAvatar(c.Request.Context(), user.Email, url)
	if err != nil {
		logger.Error("Failed to update avatar URL", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}
