package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_obraprima/internal/adapter/http/handlers/mocks"
	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/domain/lifecycle"
	"construtora_obraprima/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(uc *mocks.MockIBudgetUseCase, lc *mocks.MockILifecycleUseCase) *gin.Engine {
	h := NewBudgetHandler(uc, lc)
	r := gin.New()
	r.POST("/v1/budgets", h.Create)
	r.GET("/v1/budgets/:id", h.GetByID)
	r.POST("/v1/budgets/:id/send", h.Send)
	r.PATCH("/v1/budgets/:id/status", h.PatchStatus)
	return r
}

func asStaff(req *http.Request) {
	req.Header.Set("X-User-ID", "admin-1")
	req.Header.Set("X-User-Role", "admin")
}

func asClient(req *http.Request, id string) {
	req.Header.Set("X-User-ID", id)
	req.Header.Set("X-User-Role", "cliente")
}

func TestBudgetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc, mocks.NewMockILifecycleUseCase(ctrl))

		uc.EXPECT().Create(gomock.Any(), "client-1", "p-1", "Reforma", gomock.Any(), gomock.Any()).
			Return(entities.Budget{ID: "b-1", ClientID: "client-1", Title: "Reforma", TotalValue: 2100, Status: entities.BudgetStatusRascunho}, nil)

		body := `{"client_id":"client-1","project_id":"p-1","title":"Reforma","items":[{"description":"Alvenaria","quantity":10,"unit_price":150},{"description":"Pintura","quantity":3,"unit_price":200}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["status"] != "rascunho" {
			t.Fatalf("expected rascunho, got %v", got["status"])
		}
	})

	t.Run("derived value error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc, mocks.NewMockILifecycleUseCase(ctrl))

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Budget{}, usecase.ErrInvalidBudgetValue)

		body := `{"client_id":"client-1","title":"Reforma","items":[{"description":"x","quantity":1,"unit_price":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u-1")
		req.Header.Set("X-User-Role", "visitante")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("client approves budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.TransitionCommand) (usecase.TransitionResult, error) {
				if cmd.Actor.ID != "client-1" || cmd.Actor.Role != entities.RoleCliente {
					t.Fatalf("unexpected actor %+v", cmd.Actor)
				}
				if cmd.Kind != entities.KindBudget || cmd.RecordID != "b-1" {
					t.Fatalf("unexpected command %+v", cmd)
				}
				if cmd.ToStatus != entities.BudgetStatusAprovado {
					t.Fatalf("expected aprovado, got %s", cmd.ToStatus)
				}
				return usecase.TransitionResult{
					Record: entities.Budget{ID: "b-1", ClientID: "client-1", Status: entities.BudgetStatusAprovado},
					From:   entities.BudgetStatusEnviado,
					To:     entities.BudgetStatusAprovado,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":" APROVADO "}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["previous_status"] != "enviado" || got["status"] != "aprovado" {
			t.Fatalf("unexpected transition body %v", got)
		}
	})

	t.Run("illegal transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).
			Return(usecase.TransitionResult{}, lifecycle.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		asStaff(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("expired budget maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).
			Return(usecase.TransitionResult{}, usecase.ErrExpired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["code"] != "BUDGET_EXPIRED" {
			t.Fatalf("expected BUDGET_EXPIRED, got %v", got["code"])
		}
	})

	t.Run("foreign client maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).
			Return(usecase.TransitionResult{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("notification failure surfaces in the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).
			Return(usecase.TransitionResult{
				Record:          entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado},
				From:            entities.BudgetStatusEnviado,
				To:              entities.BudgetStatusAprovado,
				NotificationErr: usecase.ErrNotificationDeliveryFailed,
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("transition must still report success, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["notification_error"] == nil || got["notification_error"] == "" {
			t.Fatalf("expected notification_error in body, got %v", got)
		}
	})
}

func TestBudgetHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send requests enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), lc)

		lc.EXPECT().RequestTransition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.TransitionCommand) (usecase.TransitionResult, error) {
				if cmd.ToStatus != entities.BudgetStatusEnviado {
					t.Fatalf("expected enviado, got %s", cmd.ToStatus)
				}
				return usecase.TransitionResult{
					Record: entities.Budget{ID: "b-1", Status: entities.BudgetStatusEnviado},
					From:   entities.BudgetStatusRascunho,
					To:     entities.BudgetStatusEnviado,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/send", nil)
		asStaff(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("send without identity is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
