package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "construtora_obraprima/internal/adapter/http/dto/request"
	response "construtora_obraprima/internal/adapter/http/dto/response"
	"construtora_obraprima/internal/usecase"
	"construtora_obraprima/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDiaryPayload = pkg.NewDomainErrorSimple("INVALID_DIARY_INPUT", "Invalid work diary payload", http.StatusBadRequest)
)

// DiaryHandler handles HTTP requests for work diary entries. AI annotation
// runs asynchronously after creation, so a freshly created entry comes back
// without summary or insights.
type DiaryHandler struct {
	usecase usecase.IDiaryUseCase
}

func NewDiaryHandler(uc usecase.IDiaryUseCase) *DiaryHandler {
	return &DiaryHandler{usecase: uc}
}

func (h *DiaryHandler) Create(c *gin.Context) {
	var payload request.CreateDiaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiaryPayload.HTTPStatus, errInvalidDiaryPayload.ToHTTPError())
		return
	}

	diary, err := h.usecase.Create(c.Request.Context(), payload.ProjectID, payload.Date, payload.Activities, payload.Materials, payload.Equipment)
	if err != nil {
		appErr := mapDiaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkDiary(diary))
}

func (h *DiaryHandler) GetByID(c *gin.Context) {
	diary, err := h.usecase.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		appErr := mapDiaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkDiary(diary))
}

func (h *DiaryHandler) ListByProject(c *gin.Context) {
	diaries, err := h.usecase.ListByProject(c.Request.Context(), strings.TrimSpace(c.Query("project_id")))
	if err != nil {
		appErr := mapDiaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.WorkDiaryResponse, 0, len(diaries))
	for _, d := range diaries {
		out = append(out, response.FromWorkDiary(d))
	}
	c.JSON(http.StatusOK, out)
}

func mapDiaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDiaryNotFound):
		return pkg.NewDomainErrorSimple("DIARY_NOT_FOUND", "Work diary entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDiaryID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidDiaryEntry):
		return pkg.NewDomainErrorSimple("INVALID_DIARY_INPUT", "Invalid work diary payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
