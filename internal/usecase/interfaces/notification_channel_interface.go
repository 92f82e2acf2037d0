package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// INotificationChannel abstracts an external delivery channel (email,
// WhatsApp). Delivery is best effort: failures are logged and retried but
// never raised past the dispatcher; the durable Notification record the UI
// polls is the owned responsibility.
type INotificationChannel interface {
	Deliver(ctx context.Context, n entities.Notification) error
}
