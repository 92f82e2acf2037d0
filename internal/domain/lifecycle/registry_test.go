package lifecycle

import (
	"errors"
	"testing"

	"construtora_obraprima/internal/domain/entities"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		kind entities.Kind
		from entities.Status
		to   entities.Status
		want bool
	}{
		{"project start", entities.KindProject, entities.ProjectStatusOrcamento, entities.ProjectStatusEmAndamento, true},
		{"project pause", entities.KindProject, entities.ProjectStatusEmAndamento, entities.ProjectStatusPausado, true},
		{"project resume", entities.KindProject, entities.ProjectStatusPausado, entities.ProjectStatusEmAndamento, true},
		{"project cannot skip to concluded", entities.KindProject, entities.ProjectStatusOrcamento, entities.ProjectStatusConcluido, false},
		{"project concluded is final", entities.KindProject, entities.ProjectStatusConcluido, entities.ProjectStatusEmAndamento, false},
		{"project cancelled is final", entities.KindProject, entities.ProjectStatusCancelado, entities.ProjectStatusOrcamento, false},
		{"budget send", entities.KindBudget, entities.BudgetStatusRascunho, entities.BudgetStatusEnviado, true},
		{"budget approve", entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, true},
		{"budget reject", entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusRejeitado, true},
		{"budget expire", entities.KindBudget, entities.BudgetStatusEnviado, entities.BudgetStatusExpirado, true},
		{"budget draft cannot be approved", entities.KindBudget, entities.BudgetStatusRascunho, entities.BudgetStatusAprovado, false},
		{"budget rejected cannot be resent", entities.KindBudget, entities.BudgetStatusRejeitado, entities.BudgetStatusEnviado, false},
		{"appointment confirm", entities.KindAppointment, entities.AppointmentStatusAgendado, entities.AppointmentStatusConfirmado, true},
		{"appointment complete needs confirmation", entities.KindAppointment, entities.AppointmentStatusAgendado, entities.AppointmentStatusConcluido, false},
		{"appointment cancel confirmed", entities.KindAppointment, entities.AppointmentStatusConfirmado, entities.AppointmentStatusCancelado, true},
		{"invoice pay", entities.KindInvoice, entities.InvoiceStatusPendente, entities.InvoiceStatusPago, true},
		{"invoice pay after overdue", entities.KindInvoice, entities.InvoiceStatusAtrasado, entities.InvoiceStatusPago, true},
		{"invoice paid is final", entities.KindInvoice, entities.InvoiceStatusPago, entities.InvoiceStatusPendente, false},
		{"invoice overdue cannot revert", entities.KindInvoice, entities.InvoiceStatusAtrasado, entities.InvoiceStatusPendente, false},
		{"unknown kind", entities.Kind("contract"), entities.Status("a"), entities.Status("b"), false},
		{"unknown status", entities.KindProject, entities.Status("arquivado"), entities.ProjectStatusCancelado, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.kind, tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s, %s) = %v, want %v", tc.kind, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestSelfTransitionNeverAllowed(t *testing.T) {
	kinds := map[entities.Kind][]entities.Status{
		entities.KindProject:     {entities.ProjectStatusOrcamento, entities.ProjectStatusEmAndamento, entities.ProjectStatusPausado, entities.ProjectStatusConcluido, entities.ProjectStatusCancelado},
		entities.KindBudget:      {entities.BudgetStatusRascunho, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado, entities.BudgetStatusRejeitado, entities.BudgetStatusExpirado},
		entities.KindAppointment: {entities.AppointmentStatusAgendado, entities.AppointmentStatusConfirmado, entities.AppointmentStatusConcluido, entities.AppointmentStatusCancelado},
		entities.KindInvoice:     {entities.InvoiceStatusPendente, entities.InvoiceStatusPago, entities.InvoiceStatusAtrasado, entities.InvoiceStatusCancelado},
	}
	for kind, statuses := range kinds {
		for _, s := range statuses {
			if CanTransition(kind, s, s) {
				t.Fatalf("self transition allowed for %s %s", kind, s)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []struct {
		kind   entities.Kind
		status entities.Status
	}{
		{entities.KindProject, entities.ProjectStatusConcluido},
		{entities.KindProject, entities.ProjectStatusCancelado},
		{entities.KindBudget, entities.BudgetStatusAprovado},
		{entities.KindBudget, entities.BudgetStatusRejeitado},
		{entities.KindBudget, entities.BudgetStatusExpirado},
		{entities.KindAppointment, entities.AppointmentStatusConcluido},
		{entities.KindAppointment, entities.AppointmentStatusCancelado},
		{entities.KindInvoice, entities.InvoiceStatusPago},
		{entities.KindInvoice, entities.InvoiceStatusCancelado},
	}
	for _, tc := range terminal {
		if !IsTerminal(tc.kind, tc.status) {
			t.Errorf("expected %s %s to be terminal", tc.kind, tc.status)
		}
	}

	if IsTerminal(entities.KindBudget, entities.BudgetStatusEnviado) {
		t.Error("enviado must not be terminal")
	}
	if IsTerminal(entities.KindInvoice, entities.InvoiceStatusAtrasado) {
		t.Error("atrasado must not be terminal")
	}
	if IsTerminal(entities.KindProject, entities.Status("arquivado")) {
		t.Error("unknown status must not read as terminal")
	}
}

func TestLegalTransitionsSorted(t *testing.T) {
	got := LegalTransitions(entities.KindInvoice, entities.InvoiceStatusPendente)
	want := []entities.Status{entities.InvoiceStatusAtrasado, entities.InvoiceStatusCancelado, entities.InvoiceStatusPago}
	if len(got) != len(want) {
		t.Fatalf("expected %d transitions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if got := LegalTransitions(entities.KindBudget, entities.BudgetStatusAprovado); len(got) != 0 {
		t.Fatalf("terminal status must yield no transitions, got %v", got)
	}
	if got := LegalTransitions(entities.Kind("contract"), entities.Status("a")); got != nil {
		t.Fatalf("unknown kind must yield nil, got %v", got)
	}
}

func TestKnownStatus(t *testing.T) {
	if !KnownStatus(entities.KindAppointment, entities.AppointmentStatusAgendado) {
		t.Error("agendado must be known for appointment")
	}
	if KnownStatus(entities.KindAppointment, entities.BudgetStatusRascunho) {
		t.Error("rascunho must not be known for appointment")
	}
	if KnownStatus(entities.Kind("contract"), entities.Status("a")) {
		t.Error("unknown kind must not report known statuses")
	}
}

func TestValidateTransition(t *testing.T) {
	if err := ValidateTransition(entities.KindBudget, entities.BudgetStatusRascunho, entities.BudgetStatusEnviado); err != nil {
		t.Fatalf("expected legal transition, got %v", err)
	}

	err := ValidateTransition(entities.KindBudget, entities.BudgetStatusRascunho, entities.BudgetStatusAprovado)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
