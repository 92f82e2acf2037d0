package usecase

import (
	"errors"
	"testing"

	"construtora_obraprima/internal/domain/entities"
)

func TestPermissionGate_Authorize(t *testing.T) {
	gate := PermissionGate{}
	staff := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	client := entities.Actor{ID: "client-1", Role: entities.RoleCliente}

	t.Run("staff may request any transition", func(t *testing.T) {
		if err := gate.Authorize(staff, entities.KindProject, entities.ProjectStatusOrcamento, entities.ProjectStatusEmAndamento, "client-1"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if err := gate.Authorize(staff, entities.KindInvoice, entities.InvoiceStatusPendente, entities.InvoiceStatusPago, "someone-else"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("client may approve own sent budget", func(t *testing.T) {
		if err := gate.Authorize(client, entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, "client-1"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("client may reject own sent budget", func(t *testing.T) {
		if err := gate.Authorize(client, entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusRejeitado, "client-1"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("client cannot touch another client's budget", func(t *testing.T) {
		err := gate.Authorize(client, entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, "client-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("client cannot send a budget", func(t *testing.T) {
		err := gate.Authorize(client, entities.KindBudget, entities.BudgetStatusRascunho, entities.BudgetStatusEnviado, "client-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("client cannot drive project lifecycle", func(t *testing.T) {
		err := gate.Authorize(client, entities.KindProject, entities.ProjectStatusEmAndamento, entities.ProjectStatusConcluido, "client-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("client cannot mark own invoice paid", func(t *testing.T) {
		err := gate.Authorize(client, entities.KindInvoice, entities.InvoiceStatusPendente, entities.InvoiceStatusPago, "client-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown role is forbidden", func(t *testing.T) {
		visitor := entities.Actor{ID: "x", Role: entities.UserRole("visitante")}
		err := gate.Authorize(visitor, entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, "x")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("empty actor id never owns a record", func(t *testing.T) {
		anon := entities.Actor{Role: entities.RoleCliente}
		err := gate.Authorize(anon, entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
