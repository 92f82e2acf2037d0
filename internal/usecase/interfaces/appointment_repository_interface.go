package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.Status) (entities.Appointment, error)
}
