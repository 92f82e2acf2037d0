package entities

import "time"

// ProjectStatus values follow the obra lifecycle: a project starts as an
// orçamento under negotiation and moves through execution until delivery.
const (
	ProjectStatusOrcamento   Status = "orcamento"
	ProjectStatusEmAndamento Status = "em_andamento"
	ProjectStatusPausado     Status = "pausado"
	ProjectStatusConcluido   Status = "concluido"
	ProjectStatusCancelado   Status = "cancelado"
)

// Project is a construction project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// CurrentPhase is an independent free-form sub-state (fundação, alvenaria,
// acabamento...) and does not participate in the status graph.
type Project struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	Status       Status    `json:"status"`
	CurrentPhase string    `json:"current_phase,omitempty"`
	Progress     int       `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p Project) RecordKind() Kind      { return KindProject }
func (p Project) RecordID() string      { return p.ID }
func (p Project) OwnerID() string       { return p.ClientID }
func (p Project) CurrentStatus() Status { return p.Status }
