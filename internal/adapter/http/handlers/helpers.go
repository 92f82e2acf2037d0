package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "construtora_obraprima/internal/adapter/http/dto/request"
	response "construtora_obraprima/internal/adapter/http/dto/response"
	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/domain/lifecycle"
	"construtora_obraprima/internal/usecase"
	"construtora_obraprima/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

var errMissingActor = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid caller identity", http.StatusUnauthorized)

// actorFromRequest builds the Actor the auth layer injected through headers.
// The core never reads ambient session state; these two headers are the whole
// identity contract with the (external) gateway.
func actorFromRequest(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := strings.TrimSpace(c.GetHeader(headerUserID))
	role := entities.UserRole(strings.ToLower(strings.TrimSpace(c.GetHeader(headerUserRole))))

	if id == "" {
		return entities.Actor{}, errMissingActor
	}
	if role != entities.RoleAdmin && role != entities.RoleCliente {
		return entities.Actor{}, errMissingActor
	}
	return entities.Actor{ID: id, Role: role}, nil
}

// patchStatus runs the shared PATCH .../{id}/status flow for one entity
// kind. Every status route funnels through here so authorization, binding
// and error mapping stay identical across the four lifecycles.
func patchStatus(c *gin.Context, uc usecase.ILifecycleUseCase, kind entities.Kind) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.StatusPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindErr := pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
		c.JSON(bindErr.HTTPStatus, bindErr.ToHTTPError())
		return
	}

	result, err := uc.RequestTransition(c.Request.Context(), usecase.TransitionCommand{
		Actor:     actor,
		Kind:      kind,
		RecordID:  strings.TrimSpace(c.Param("id")),
		ToStatus:  entities.Status(payload.ResolveStatus()),
		Notes:     payload.Notes,
		MPPayload: payload.MPPayload,
	})
	if err != nil {
		mapped := mapTransitionError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(result))
}

// mapTransitionError translates lifecycle sentinel errors into transport
// errors. Handlers add their own entity-specific cases before falling back
// here.
func mapTransitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID), errors.Is(err, usecase.ErrUnknownKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "No permission for this status change", http.StatusForbidden)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status change", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrExpired):
		return pkg.NewDomainErrorSimple("BUDGET_EXPIRED", "Budget expired, cannot approve or reject", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOverdue):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_OVERDUE", "Invoice is not past its due date", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Invalid schedule", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Record status changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by gateway", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
