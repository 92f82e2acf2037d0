package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAppointmentID    = errors.New("invalid appointment id")
	ErrInvalidAppointmentTitle = errors.New("invalid appointment title")
)

// IAppointmentUseCase exposes appointment operations outside the lifecycle
// path. Confirm/complete/cancel go through ILifecycleUseCase.
type IAppointmentUseCase interface {
	Create(ctx context.Context, clientID, projectID, title string, start, end time.Time) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo      interfaces.IAppointmentRepository
	validator TransitionValidator
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create persists an AGENDADO appointment. The schedule window runs through
// the same validator the lifecycle path uses: end after start, minimum 15
// minutes.
func (u *AppointmentUseCase) Create(ctx context.Context, clientID, projectID, title string, start, end time.Time) (entities.Appointment, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Appointment{}, ErrInvalidClientID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Appointment{}, ErrInvalidAppointmentTitle
	}
	if err := u.validator.ValidateAppointmentWindow(start, end); err != nil {
		return entities.Appointment{}, err
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		ProjectID: strings.TrimSpace(projectID),
		Title:     title,
		Status:    entities.AppointmentStatusAgendado,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, a)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Appointment, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}
