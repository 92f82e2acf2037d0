package response

import (
	"time"

	"construtora_obraprima/internal/domain/entities"
)

type ProjectResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	CurrentPhase string    `json:"current_phase,omitempty"`
	Progress     int       `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		ClientID:     p.ClientID,
		Name:         p.Name,
		Status:       string(p.Status),
		CurrentPhase: p.CurrentPhase,
		Progress:     p.Progress,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type BudgetItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type BudgetResponse struct {
	ID         string               `json:"id"`
	ClientID   string               `json:"client_id"`
	ProjectID  string               `json:"project_id,omitempty"`
	Title      string               `json:"title"`
	Items      []BudgetItemResponse `json:"items,omitempty"`
	TotalValue float64              `json:"total_value"`
	Status     string               `json:"status"`
	ValidUntil *time.Time           `json:"valid_until,omitempty"`
	SentAt     *time.Time           `json:"sent_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	res := BudgetResponse{
		ID:         b.ID,
		ClientID:   b.ClientID,
		ProjectID:  b.ProjectID,
		Title:      b.Title,
		Items:      items,
		TotalValue: b.TotalValue,
		Status:     string(b.Status),
		SentAt:     b.SentAt,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if !b.ValidUntil.IsZero() {
		v := b.ValidUntil
		res.ValidUntil = &v
	}
	return res
}

type AppointmentResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	ProjectID string    `json:"project_id,omitempty"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		ProjectID: a.ProjectID,
		Title:     a.Title,
		Status:    string(a.Status),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type InvoiceResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	ProjectID string     `json:"project_id,omitempty"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	DueDate   time.Time  `json:"due_date"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        i.ID,
		ClientID:  i.ClientID,
		ProjectID: i.ProjectID,
		Amount:    i.Amount,
		Status:    string(i.Status),
		DueDate:   i.DueDate,
		PaidAt:    i.PaidAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type WorkDiaryResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Date       time.Time `json:"date"`
	Activities string    `json:"activities"`
	Materials  string    `json:"materials,omitempty"`
	Equipment  string    `json:"equipment,omitempty"`
	AISummary  string    `json:"ai_summary,omitempty"`
	AIInsights string    `json:"ai_insights,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromWorkDiary(d entities.WorkDiary) WorkDiaryResponse {
	return WorkDiaryResponse{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Date:       d.Date,
		Activities: d.Activities,
		Materials:  d.Materials,
		Equipment:  d.Equipment,
		AISummary:  d.AISummary,
		AIInsights: d.AIInsights,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
