package interfaces

import (
	"context"
	"time"

	"construtora_obraprima/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// MarkPaid is the transition write to PAGO: it sets paid_at inside the same
// conditional update that swaps the status, so the two can never diverge.
type IInvoiceRepository interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.Status) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string, expected entities.Status, paidAt time.Time) (entities.Invoice, error)
}
