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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices. Marking an invoice as
// PAGO goes through PatchStatus with an optional mp_payload that is forwarded
// to the payment gateway before the status commits.
type InvoiceHandler struct {
	usecase   usecase.IInvoiceUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, lc usecase.ILifecycleUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, lifecycle: lc}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), payload.ClientID, payload.ProjectID, payload.Amount, payload.DueDate)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListByClient(c *gin.Context) {
	invoices, err := h.usecase.ListByClient(c.Request.Context(), strings.TrimSpace(c.Query("client_id")))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, response.FromInvoice(i))
	}
	c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) PatchStatus(c *gin.Context) {
	patchStatus(c, h.lifecycle, entities.KindInvoice)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidInvoiceAmount),
		errors.Is(err, usecase.ErrInvalidInvoiceDue):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
