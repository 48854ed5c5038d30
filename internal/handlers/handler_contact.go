package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
	"github.com/webgroup16/contacts_app/internal/middleware"
)

// ContactHandler handles contact CRUD requests. Every route requires an
// authenticated user; the middleware puts the resolved account in context.
type ContactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs portssvc.ContactSvcFacade) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// registerContactRoutes sets up the authenticated contact routes.
func registerContactRoutes(rg *gin.RouterGroup, cs portssvc.ContactSvcFacade, createLimiter *limiter.Limiter) {
	h := NewContactHandler(cs)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("/", middleware.RateLimit(createLimiter), h.CreateContact)
		contacts.GET("/", h.ListContacts)
		contacts.GET("/search", h.SearchContacts)
		contacts.GET("/upcoming_birthdays/", h.ListUpcomingBirthdays)
		contacts.GET("/:contactID", h.GetContact)
		contacts.PUT("/:contactID", h.UpdateContact)
		contacts.DELETE("/:contactID", h.DeleteContact)
	}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to create contact. Integrity error."})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create contact", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create contact"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), user.UserID, params.Skip, params.Limit)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list contacts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactListResponse(contacts))
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	contact, err := h.contactService.GetContactByID(c.Request.Context(), user.UserID, c.Param("contactID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get contact"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// UpdateContact replaces every field of the contact.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), user.UserID, c.Param("contactID"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update contact", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update contact"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// DeleteContact removes an owned contact; deleting a contact owned by
// someone else reports not found.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	err := h.contactService.DeleteContact(c.Request.Context(), user.UserID, c.Param("contactID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete contact"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) SearchContacts(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.SearchContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "query parameter required"})
		return
	}

	contacts, err := h.contactService.SearchContacts(c.Request.Context(), user.UserID, params.Query)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to search contacts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactListResponse(contacts))
}

func (h *ContactHandler) ListUpcomingBirthdays(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	contacts, err := h.contactService.ListUpcomingBirthdays(c.Request.Context(), user.UserID, time.Now())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list upcoming birthdays", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list upcoming birthdays"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactListResponse(contacts))
}
