package interfaces

import (
	"context"
	"time"

	"construtora_obraprima/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Status writes are compare-and-swap on the expected prior status; a failed
// condition returns a zero-value entity with a nil error. MarkSent is the
// RASCUNHO -> ENVIADO write, which also stamps sent_at and valid_until in the
// same update.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.Status) (entities.Budget, error)
	MarkSent(ctx context.Context, id string, sentAt, validUntil time.Time) (entities.Budget, error)
}
