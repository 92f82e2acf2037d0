package usecase

import (
	"errors"
	"log"
	"time"

	"construtora_obraprima/internal/domain/entities"
)

var (
	ErrExpired         = errors.New("budget expired, cannot approve or reject")
	ErrInvalidDuration = errors.New("invalid appointment schedule")
	ErrNotOverdue      = errors.New("invoice is not past its due date")
)

// TransitionValidator checks domain invariants beyond role and graph
// legality: validity windows, schedule durations.
type TransitionValidator struct{}

// Validate runs the per-kind rules for a requested transition.
//
// Budget approve/reject past valid_until fails with ErrExpired even while the
// stored status still reads ENVIADO; the caller normalizes the record to
// EXPIRADO afterwards. An invoice may only be marked ATRASADO once past its
// due date. A project concluded below 100% progress is allowed but logged,
// matching the historical behavior of the system.
func (TransitionValidator) Validate(rec entities.StatusRecord, to entities.Status, now time.Time) error {
	switch r := rec.(type) {
	case entities.Budget:
		if (to == entities.BudgetStatusAprovado || to == entities.BudgetStatusRejeitado) && r.Expired(now) {
			return ErrExpired
		}
	case entities.Invoice:
		if to == entities.InvoiceStatusAtrasado && !r.Overdue(now) {
			return ErrNotOverdue
		}
	case entities.Project:
		if to == entities.ProjectStatusConcluido && r.Progress != 100 {
			log.Printf("[lifecycle][validator] project concluded below full progress project_id=%s progress=%d", r.ID, r.Progress)
		}
	}
	return nil
}

// ValidateAppointmentWindow guards appointment creation: the window must be
// forward and at least the minimum visit duration.
func (TransitionValidator) ValidateAppointmentWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDuration
	}
	if end.Sub(start) < entities.MinAppointmentDuration {
		return ErrInvalidDuration
	}
	return nil
}
