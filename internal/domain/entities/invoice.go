package entities

import "time"

// InvoiceStatus values. PaidAt is set only when the invoice moves to PAGO,
// within the same persistence write as the status change.
const (
	InvoiceStatusPendente  Status = "pendente"
	InvoiceStatusPago      Status = "pago"
	InvoiceStatusAtrasado  Status = "atrasado"
	InvoiceStatusCancelado Status = "cancelado"
)

// Invoice is a client invoice (fatura) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Invoice struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	ProjectID string     `json:"project_id,omitempty"`
	Amount    float64    `json:"amount"`
	Status    Status     `json:"status"`
	DueDate   time.Time  `json:"due_date"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (i Invoice) RecordKind() Kind      { return KindInvoice }
func (i Invoice) RecordID() string      { return i.ID }
func (i Invoice) OwnerID() string       { return i.ClientID }
func (i Invoice) CurrentStatus() Status { return i.Status }

// Overdue reports whether the invoice is still unpaid past its due date.
func (i Invoice) Overdue(now time.Time) bool {
	return i.Status == InvoiceStatusPendente && now.After(i.DueDate)
}
