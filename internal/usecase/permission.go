package usecase

import (
	"errors"

	"construtora_obraprima/internal/domain/entities"
)

var ErrForbidden = errors.New("no permission for this status change")

// clientTransitions is the whitelist of transitions a client may request,
// always restricted to records they own. Everything else is staff-only.
var clientTransitions = map[entities.Kind]map[entities.Status]map[entities.Status]struct{}{
	entities.KindBudget: {
		entities.BudgetStatusEnviado: {
			entities.BudgetStatusAprovado:  {},
			entities.BudgetStatusRejeitado: {},
		},
	},
}

// PermissionGate decides whether an actor may request a transition. It knows
// nothing about time windows or graph legality; those checks run afterwards.
type PermissionGate struct{}

func (PermissionGate) Authorize(actor entities.Actor, kind entities.Kind, from, to entities.Status, ownerID string) error {
	if actor.IsStaff() {
		return nil
	}
	if actor.Role != entities.RoleCliente {
		return ErrForbidden
	}

	// Ownership short-circuits everything else: a client acting on someone
	// else's record is forbidden regardless of the transition requested.
	if actor.ID == "" || actor.ID != ownerID {
		return ErrForbidden
	}

	fromSet, ok := clientTransitions[kind]
	if !ok {
		return ErrForbidden
	}
	toSet, ok := fromSet[from]
	if !ok {
		return ErrForbidden
	}
	if _, ok := toSet[to]; !ok {
		return ErrForbidden
	}
	return nil
}
