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

func TestNotificationUseCase_Enqueue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("blank recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.Enqueue(context.Background(), EnqueueCommand{UserID: "   "})
		if !errors.Is(err, ErrInvalidRecipient) {
			t.Fatalf("expected ErrInvalidRecipient, got %v", err)
		}
	})

	t.Run("create success with deterministic id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)
		uc.now = func() time.Time { return now }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (bool, error) {
				if n.ID != "budget-b-1-aprovado-1" {
					t.Fatalf("expected caller id to be kept, got %s", n.ID)
				}
				if n.Read {
					t.Fatal("new notification must start unread")
				}
				if !n.CreatedAt.Equal(now) {
					t.Fatalf("expected created_at %v, got %v", now, n.CreatedAt)
				}
				return true, nil
			})

		n, err := uc.Enqueue(context.Background(), EnqueueCommand{
			ID: "budget-b-1-aprovado-1", UserID: "staff-inbox", Title: "Orçamento aprovado", Type: entities.NotificationSuccess,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.UserID != "staff-inbox" {
			t.Fatalf("unexpected recipient %s", n.UserID)
		}
	})

	t.Run("blank id gets a generated one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (bool, error) {
				if n.ID == "" {
					t.Fatal("expected generated id")
				}
				if n.Type != entities.NotificationInfo {
					t.Fatalf("expected default type info, got %s", n.Type)
				}
				return true, nil
			})

		if _, err := uc.Enqueue(context.Background(), EnqueueCommand{UserID: "client-1", Title: "Oi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate id is suppressed, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		channel := mock_interfaces.NewMockINotificationChannel(ctrl)
		uc := NewNotificationUseCase(repo, channel)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
		// No Deliver expectation: a suppressed duplicate must not be re-sent.

		n, err := uc.Enqueue(context.Background(), EnqueueCommand{ID: "dup-1", UserID: "client-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.ID != "dup-1" {
			t.Fatalf("expected the command id back, got %s", n.ID)
		}
	})

	t.Run("repo error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		_, err := uc.Enqueue(context.Background(), EnqueueCommand{UserID: "client-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("external delivery failure never fails the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		channel := mock_interfaces.NewMockINotificationChannel(ctrl)
		uc := NewNotificationUseCase(repo, channel)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
		channel.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(externalDeliveryMaxRetries + 1)

		if _, err := uc.Enqueue(context.Background(), EnqueueCommand{ID: "n-1", UserID: "client-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_ListByUser(t *testing.T) {
	t.Run("blank user id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.ListByUser(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "client-1").Return([]entities.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)

		ns, err := uc.ListByUser(context.Background(), "client-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ns) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(ns))
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	owner := entities.Actor{ID: "client-1", Role: entities.RoleCliente}

	t.Run("blank id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.MarkRead(context.Background(), "  ", owner)
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "n-404").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "n-404", owner)
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("owner marks read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "client-1"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "client-1", Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), "n-1", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatal("expected notification marked read")
		}
	})

	t.Run("foreign client is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "client-2"}, nil)

		_, err := uc.MarkRead(context.Background(), "n-1", owner)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("staff may mark any notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "client-2"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "client-2", Read: true}, nil)

		if _, err := uc.MarkRead(context.Background(), "n-1", entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
