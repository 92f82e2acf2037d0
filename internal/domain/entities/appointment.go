package entities

import "time"

// AppointmentStatus values.
const (
	AppointmentStatusAgendado   Status = "agendado"
	AppointmentStatusConfirmado Status = "confirmado"
	AppointmentStatusConcluido  Status = "concluido"
	AppointmentStatusCancelado  Status = "cancelado"
)

// MinAppointmentDuration is the shortest visit the firm schedules.
const MinAppointmentDuration = 15 * time.Minute

// Appointment is a scheduled visit (vistoria, medição, reunião) persisted
// in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Appointment struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	ProjectID string    `json:"project_id,omitempty"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Appointment) RecordKind() Kind      { return KindAppointment }
func (a Appointment) RecordID() string      { return a.ID }
func (a Appointment) OwnerID() string       { return a.ClientID }
func (a Appointment) CurrentStatus() Status { return a.Status }
