package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
	"github.com/webgroup16/contacts_app/internal/middleware"
	"github.com/webgroup16/contacts_app/internal/platform/config"
	"github.com/webgroup16/contacts_app/internal/utils"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic informational response.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	mailer       portssvc.EmailSender
	baseURL      string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		userService:  services.User,
		tokenService: services.Token,
		mailer:       services.Email,
		baseURL:      cfg.AppBaseURL,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(cfg, services)

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.GET("/refresh_token", h.RefreshToken)
		auth.GET("/confirmed_email/:token", h.ConfirmEmail)
		auth.POST("/request-reset-password", h.RequestPasswordReset)
		auth.POST("/reset-password", h.ResetPassword)
		auth.GET("/reset-password-page", h.ResetPasswordPage)
	}
}

// Signup registers a new unconfirmed account and mails a confirmation link
// in the background.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	newUser, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Account already exists"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	token, err := h.tokenService.GenerateEmailConfirmationToken(newUser.Email)
	if err != nil {
		logger.Error("Failed to generate confirmation token", slog.String("error", err.Error()))
	} else {
		// Fire-and-forget; a lost confirmation mail is re-requestable and
		// must not fail the signup.
		go func(to, username, token string) {
			if err := h.mailer.SendConfirmationEmail(to, username, h.baseURL, token); err != nil {
				logger.Error("Failed to send confirmation email", slog.String("error", err.Error()))
			}
		}(newUser.Email, newUser.Username, token)
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Login authenticates form-encoded credentials (username carries the email)
// and returns a fresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	pair, err := h.tokenService.GenerateTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate token pair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	if err := h.userService.UpdateRefreshToken(c.Request.Context(), user.Email, pair.RefreshToken); err != nil {
		logger.Error("Failed to persist refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.tokenService.CacheUser(c.Request.Context(), user)

	c.JSON(http.StatusOK, pair)
}

// RefreshToken rotates the token pair. The bearer token must match the one
// stored on the user row; a mismatch clears the stored token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	email, err := h.tokenService.DecodeRefreshToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}

	if user.RefreshToken != token {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), email); err != nil {
			logger.Error("Failed to clear refresh token", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	pair, err := h.tokenService.GenerateTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate token pair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	if err := h.userService.UpdateRefreshToken(c.Request.Context(), email, pair.RefreshToken); err != nil {
		logger.Error("Failed to persist refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

// ConfirmEmail redeems an email-confirmation token. Confirming twice is
// reported as already confirmed, not as an error.
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Param("token")

	email, err := h.tokenService.DecodeEmailConfirmationToken(token)
	if err != nil {
		htmlResponse(c, http.StatusBadRequest, "<h3>Invalid or expired token.</h3>")
		return
	}

	alreadyConfirmed, err := h.userService.ConfirmEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			htmlResponse(c, http.StatusBadRequest, "<h3>User not found.</h3>")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to confirm email", slog.String("error", err.Error()))
		htmlResponse(c, http.StatusInternalServerError, "<h3>Something went wrong.</h3>")
		return
	}

	if alreadyConfirmed {
		htmlResponse(c, http.StatusOK, "<h3>Email already confirmed.</h3>")
		return
	}
	htmlResponse(c, http.StatusOK, "<h2>Email confirmed successfully!</h2>")
}

// RequestPasswordReset mails a password-reset link in the background.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}

	token, err := h.tokenService.GeneratePasswordResetToken(user.Email)
	if err != nil {
		logger.Error("Failed to generate reset token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send reset email"})
		return
	}

	go func(to, username, token string) {
		if err := h.mailer.SendPasswordResetEmail(to, username, h.baseURL, token); err != nil {
			logger.Error("Failed to send reset email", slog.String("error", err.Error()))
		}
	}(user.Email, user.Username, token)

	c.JSON(http.StatusOK, MessageResponse{Message: "Password reset email sent"})
}

// ResetPassword redeems a reset token posted by the reset page and stores
// the new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	email, err := h.tokenService.DecodePasswordResetToken(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
		return
	}

	if _, err := h.userService.GetUserByEmail(c.Request.Context(), email); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), email, req.NewPassword); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reset password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// ResetPasswordPage renders the HTML form that posts the reset token along
// with the new password.
func (h *AuthHandler) ResetPasswordPage(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "token query parameter required"})
		return
	}
	renderResetPasswordPage(c, token)
}

// bearerToken extracts the credentials part of a Bearer Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

func htmlResponse(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}
