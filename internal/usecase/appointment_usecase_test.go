package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construtora_obraprima/internal/domain/entities"
	mock_interfaces "construtora_obraprima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAppointmentUseCase_Create(t *testing.T) {
	start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	t.Run("invalid client id", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "", "Visita técnica", start, start.Add(time.Hour))
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), "client-1", "", "  ", start, start.Add(time.Hour))
		if !errors.Is(err, ErrInvalidAppointmentTitle) {
			t.Fatalf("expected ErrInvalidAppointmentTitle, got %v", err)
		}
	})

	t.Run("ten minute visit is rejected", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), "client-1", "", "Visita técnica", start, start.Add(10*time.Minute))
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.Create(context.Background(), "client-1", "", "Visita técnica", start, start.Add(-time.Hour))
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("create success starts as agendado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID == "" {
					t.Fatal("expected generated id")
				}
				if a.Status != entities.AppointmentStatusAgendado {
					t.Fatalf("expected agendado, got %s", a.Status)
				}
				if !a.StartTime.Equal(start) {
					t.Fatalf("unexpected start %v", a.StartTime)
				}
				return a, nil
			})

		a, err := uc.Create(context.Background(), "client-1", "p-1", "Visita técnica", start, start.Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ClientID != "client-1" || a.ProjectID != "p-1" {
			t.Fatalf("unexpected appointment %+v", a)
		}
	})
}

func TestAppointmentUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "a-404").Return(entities.Appointment{}, nil)

		_, err := uc.GetByID(context.Background(), "a-404")
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewAppointmentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Appointment{ID: "a-1"}, nil)

		a, err := uc.GetByID(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "a-1" {
			t.Fatalf("unexpected appointment %+v", a)
		}
	})
}
