package request

import (
	"time"

	"construtora_obraprima/internal/domain/entities"
)

type CreateProjectRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type UpdateProjectProgressRequest struct {
	Progress     int    `json:"progress"`
	CurrentPhase string `json:"current_phase"`
}

type BudgetItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type CreateBudgetRequest struct {
	ClientID   string              `json:"client_id" binding:"required"`
	ProjectID  string              `json:"project_id"`
	Title      string              `json:"title" binding:"required"`
	Items      []BudgetItemRequest `json:"items" binding:"required"`
	ValidUntil time.Time           `json:"valid_until"`
}

func (r CreateBudgetRequest) ResolveItems() []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

type CreateAppointmentRequest struct {
	ClientID  string    `json:"client_id" binding:"required"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type CreateInvoiceRequest struct {
	ClientID  string    `json:"client_id" binding:"required"`
	ProjectID string    `json:"project_id"`
	Amount    float64   `json:"amount" binding:"required"`
	DueDate   time.Time `json:"due_date" binding:"required"`
}

type CreateDiaryRequest struct {
	ProjectID  string    `json:"project_id" binding:"required"`
	Date       time.Time `json:"date"`
	Activities string    `json:"activities" binding:"required"`
	Materials  string    `json:"materials"`
	Equipment  string    `json:"equipment"`
}
