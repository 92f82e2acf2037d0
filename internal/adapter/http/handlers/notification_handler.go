package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "construtora_obraprima/internal/adapter/http/dto/response"
	"construtora_obraprima/internal/usecase"
	"construtora_obraprima/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the read side of the notification feed.
// Writes happen inside the lifecycle flow, never through HTTP.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListByUser(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		userID = actor.ID
	}
	if userID != actor.ID && !actor.IsStaff() {
		forbidden := pkg.NewDomainErrorSimple("FORBIDDEN", "Cannot read another user's notifications", http.StatusForbidden)
		c.JSON(forbidden.HTTPStatus, forbidden.ToHTTPError())
		return
	}

	notifications, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		mapped := mapNotificationError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	notification, err := h.usecase.MarkRead(c.Request.Context(), strings.TrimSpace(c.Param("id")), actor)
	if err != nil {
		mapped := mapNotificationError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(notification))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Cannot modify another user's notifications", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
