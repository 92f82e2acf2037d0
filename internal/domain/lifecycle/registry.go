// Package lifecycle declares, per entity kind, the finite status sets and the
// legal transition graph between them. The tables are static data; everything
// else (roles, time windows, persistence) lives in the usecase layer.
package lifecycle

import (
	"errors"
	"fmt"
	"sort"

	"construtora_obraprima/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type transitions map[entities.Status]map[entities.Status]struct{}

var graph = map[entities.Kind]transitions{
	entities.KindProject: {
		entities.ProjectStatusOrcamento: {
			entities.ProjectStatusEmAndamento: {},
			entities.ProjectStatusCancelado:   {},
		},
		entities.ProjectStatusEmAndamento: {
			entities.ProjectStatusPausado:   {},
			entities.ProjectStatusConcluido: {},
			entities.ProjectStatusCancelado: {},
		},
		entities.ProjectStatusPausado: {
			entities.ProjectStatusEmAndamento: {},
			entities.ProjectStatusCancelado:   {},
		},
		entities.ProjectStatusConcluido: {},
		entities.ProjectStatusCancelado: {},
	},
	entities.KindBudget: {
		entities.BudgetStatusRascunho: {
			entities.BudgetStatusEnviado: {},
		},
		entities.BudgetStatusEnviado: {
			entities.BudgetStatusAprovado:  {},
			entities.BudgetStatusRejeitado: {},
			entities.BudgetStatusExpirado:  {},
		},
		entities.BudgetStatusAprovado:  {},
		entities.BudgetStatusRejeitado: {},
		entities.BudgetStatusExpirado:  {},
	},
	entities.KindAppointment: {
		entities.AppointmentStatusAgendado: {
			entities.AppointmentStatusConfirmado: {},
			entities.AppointmentStatusCancelado:  {},
		},
		entities.AppointmentStatusConfirmado: {
			entities.AppointmentStatusConcluido: {},
			entities.AppointmentStatusCancelado: {},
		},
		entities.AppointmentStatusConcluido: {},
		entities.AppointmentStatusCancelado: {},
	},
	entities.KindInvoice: {
		entities.InvoiceStatusPendente: {
			entities.InvoiceStatusPago:      {},
			entities.InvoiceStatusAtrasado:  {},
			entities.InvoiceStatusCancelado: {},
		},
		entities.InvoiceStatusAtrasado: {
			entities.InvoiceStatusPago:      {},
			entities.InvoiceStatusCancelado: {},
		},
		entities.InvoiceStatusPago:      {},
		entities.InvoiceStatusCancelado: {},
	},
}

// KnownStatus reports whether the status belongs to the kind's closed set.
func KnownStatus(kind entities.Kind, status entities.Status) bool {
	t, ok := graph[kind]
	if !ok {
		return false
	}
	_, ok = t[status]
	return ok
}

// LegalTransitions returns the statuses reachable from the given one, sorted
// for stable output. An unknown kind or status yields an empty set.
func LegalTransitions(kind entities.Kind, from entities.Status) []entities.Status {
	t, ok := graph[kind]
	if !ok {
		return nil
	}
	next, ok := t[from]
	if !ok {
		return nil
	}
	out := make([]entities.Status, 0, len(next))
	for s := range next {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CanTransition reports whether the graph allows moving from one status to
// the other for the given kind.
func CanTransition(kind entities.Kind, from, to entities.Status) bool {
	t, ok := graph[kind]
	if !ok {
		return false
	}
	next, ok := t[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// IsTerminal reports whether no transition leaves the status.
func IsTerminal(kind entities.Kind, status entities.Status) bool {
	t, ok := graph[kind]
	if !ok {
		return false
	}
	next, ok := t[status]
	return ok && len(next) == 0
}

// ValidateTransition returns ErrInvalidTransition (wrapped with the offending
// pair) when the graph does not allow the requested change.
func ValidateTransition(kind entities.Kind, from, to entities.Status) error {
	if !CanTransition(kind, from, to) {
		return fmt.Errorf("%w: %s %q -> %q", ErrInvalidTransition, kind, from, to)
	}
	return nil
}
