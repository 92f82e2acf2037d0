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
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for work budgets.
type BudgetHandler struct {
	usecase   usecase.IBudgetUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, lc usecase.ILifecycleUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc, lifecycle: lc}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ClientID, payload.ProjectID, payload.Title, payload.ResolveItems(), payload.ValidUntil)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) GetByID(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) ListByClient(c *gin.Context) {
	budgets, err := h.usecase.ListByClient(c.Request.Context(), strings.TrimSpace(c.Query("client_id")))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, response.FromBudget(b))
	}
	c.JSON(http.StatusOK, out)
}

// Send dispatches a draft budget to the client. It is sugar over the status
// route: the transition itself is rascunho -> enviado and carries the same
// guarantees (sent_at and valid_until stamping happen in the persist step).
func (h *BudgetHandler) Send(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.lifecycle.RequestTransition(c.Request.Context(), usecase.TransitionCommand{
		Actor:    actor,
		Kind:     entities.KindBudget,
		RecordID: strings.TrimSpace(c.Param("id")),
		ToStatus: entities.BudgetStatusEnviado,
	})
	if err != nil {
		mapped := mapTransitionError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(result))
}

func (h *BudgetHandler) PatchStatus(c *gin.Context) {
	patchStatus(c, h.lifecycle, entities.KindBudget)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidBudgetTitle),
		errors.Is(err, usecase.ErrInvalidBudgetValue):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
