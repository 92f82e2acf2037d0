package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// Create is a conditional put on the notification id: a duplicate id is not
// an error, the existing record wins and created=false is returned. Lifecycle
// code derives deterministic ids per transition batch, which is what makes
// enqueueing idempotent across retried requests.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}
