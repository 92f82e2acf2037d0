package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "construtora_obraprima/internal/adapter/http/dto/request"
	response "construtora_obraprima/internal/adapter/http/dto/response"
	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase"
	"construtora_obraprima/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentHandler handles HTTP requests for site visit appointments.
type AppointmentHandler struct {
	usecase   usecase.IAppointmentUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase, lc usecase.ILifecycleUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc, lifecycle: lc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Create(c.Request.Context(), payload.ClientID, payload.ProjectID, payload.Title, payload.StartTime, payload.EndTime)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	appointments, err := h.usecase.ListByClient(c.Request.Context(), strings.TrimSpace(c.Query("client_id")))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, response.FromAppointment(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) PatchStatus(c *gin.Context) {
	patchStatus(c, h.lifecycle, entities.KindAppointment)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Invalid schedule", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidAppointmentTitle):
		return pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
