package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construtora_obraprima/internal/domain/entities"
	mock_interfaces "construtora_obraprima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_Create(t *testing.T) {
	items := []entities.BudgetItem{
		{Description: "Alvenaria", Quantity: 10, UnitPrice: 150},
		{Description: "Pintura", Quantity: 3, UnitPrice: 200},
	}

	t.Run("invalid client id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "", "Reforma", items, time.Time{})
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Create(context.Background(), "client-1", "", "  ", items, time.Time{})
		if !errors.Is(err, ErrInvalidBudgetTitle) {
			t.Fatalf("expected ErrInvalidBudgetTitle, got %v", err)
		}
	})

	t.Run("empty items yield no value", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Create(context.Background(), "client-1", "", "Reforma", nil, time.Time{})
		if !errors.Is(err, ErrInvalidBudgetValue) {
			t.Fatalf("expected ErrInvalidBudgetValue, got %v", err)
		}
	})

	t.Run("total is derived from the items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != entities.BudgetStatusRascunho {
					t.Fatalf("expected rascunho, got %s", b.Status)
				}
				if b.TotalValue != 2100 {
					t.Fatalf("expected total 2100, got %v", b.TotalValue)
				}
				if b.SentAt != nil {
					t.Fatal("draft must not carry sent_at")
				}
				return b, nil
			})

		b, err := uc.Create(context.Background(), "client-1", "p-1", "Reforma", items, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TotalValue != 2100 {
			t.Fatalf("expected total 2100, got %v", b.TotalValue)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Budget{}, nil)

		_, err := uc.GetByID(context.Background(), "b-404")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetSumItems(t *testing.T) {
	b := entities.Budget{Items: []entities.BudgetItem{
		{Description: "ok", Quantity: 2, UnitPrice: 50},
		{Description: "zero quantity ignored", Quantity: 0, UnitPrice: 100},
		{Description: "negative price ignored", Quantity: 1, UnitPrice: -10},
	}}
	if got := b.SumItems(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}
