package entities

import "time"

// BudgetStatus values. A budget is drafted by staff, sent to the client and
// then approved/rejected by the client while it is still valid. An ENVIADO
// budget past its validity reads as EXPIRADO; expiry is computed lazily at
// transition time, there is no background sweep.
const (
	BudgetStatusRascunho  Status = "rascunho"
	BudgetStatusEnviado   Status = "enviado"
	BudgetStatusAprovado  Status = "aprovado"
	BudgetStatusRejeitado Status = "rejeitado"
	BudgetStatusExpirado  Status = "expirado"
)

// BudgetItem is one priced line of a budget. TotalValue on the budget is
// always the sum of its items.
type BudgetItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Budget is a construction budget (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Budget struct {
	ID         string       `json:"id"`
	ClientID   string       `json:"client_id"`
	ProjectID  string       `json:"project_id,omitempty"`
	Title      string       `json:"title"`
	Items      []BudgetItem `json:"items,omitempty"`
	TotalValue float64      `json:"total_value"`
	Status     Status       `json:"status"`
	ValidUntil time.Time    `json:"valid_until"`
	SentAt     *time.Time   `json:"sent_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (b Budget) RecordKind() Kind      { return KindBudget }
func (b Budget) RecordID() string      { return b.ID }
func (b Budget) OwnerID() string       { return b.ClientID }
func (b Budget) CurrentStatus() Status { return b.Status }

// Expired reports whether the budget validity window has closed. A zero
// ValidUntil means the budget was never sent and carries no deadline yet.
func (b Budget) Expired(now time.Time) bool {
	return !b.ValidUntil.IsZero() && now.After(b.ValidUntil)
}

// SumItems recomputes the budget total from its line items.
func (b Budget) SumItems() float64 {
	total := 0.0
	for _, it := range b.Items {
		if it.UnitPrice > 0 && it.Quantity > 0 {
			total += it.UnitPrice * float64(it.Quantity)
		}
	}
	return total
}
