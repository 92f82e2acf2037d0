package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidRecipient      = errors.New("invalid notification recipient")
	ErrInvalidUserID         = errors.New("invalid user id")
)

const externalDeliveryMaxRetries = 3

// EnqueueCommand describes one notification to create. A blank ID gets a
// random uuid; lifecycle code passes deterministic ids so that retried
// transition requests collapse into a single record.
type EnqueueCommand struct {
	ID      string
	UserID  string
	Title   string
	Message string
	Type    entities.NotificationType
	Link    string
}

// INotificationUseCase exposes the notification dispatcher.
//
// Enqueue's only owned responsibility is the durable creation of the
// Notification record the client-facing UI polls. Pushing through an external
// channel (email/WhatsApp) is best effort and never fails the call.
type INotificationUseCase interface {
	Enqueue(ctx context.Context, cmd EnqueueCommand) (entities.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string, requester entities.Actor) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo    interfaces.INotificationRepository
	channel interfaces.INotificationChannel
	now     func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase builds the dispatcher. channel may be nil when no
// external delivery is configured.
func NewNotificationUseCase(repo interfaces.INotificationRepository, channel interfaces.INotificationChannel) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, channel: channel, now: time.Now}
}

func (u *NotificationUseCase) Enqueue(ctx context.Context, cmd EnqueueCommand) (entities.Notification, error) {
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.UserID == "" {
		return entities.Notification{}, ErrInvalidRecipient
	}

	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		id = uuid.NewString()
	}
	typ := cmd.Type
	if typ == "" {
		typ = entities.NotificationInfo
	}

	n := entities.Notification{
		ID:        id,
		UserID:    cmd.UserID,
		Title:     cmd.Title,
		Message:   cmd.Message,
		Type:      typ,
		Link:      cmd.Link,
		Read:      false,
		CreatedAt: u.now().UTC(),
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		return entities.Notification{}, err
	}
	if !created {
		// Same idempotency key already enqueued; the first record wins.
		log.Printf("[notification][usecase] duplicate suppressed id=%s user_id=%s", n.ID, n.UserID)
		return n, nil
	}
	log.Printf("[notification][usecase] enqueued id=%s user_id=%s type=%s", n.ID, n.UserID, n.Type)

	u.deliverExternal(ctx, n)
	return n, nil
}

// deliverExternal pushes the notification through the optional external
// channel, retrying transient failures. Failures are logged only; the durable
// record already exists and the UI will surface it regardless.
func (u *NotificationUseCase) deliverExternal(ctx context.Context, n entities.Notification) {
	if u.channel == nil {
		return
	}
	op := func() error {
		return u.channel.Deliver(ctx, n)
	}
	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), externalDeliveryMaxRetries)
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		log.Printf("[notification][usecase] external delivery failed id=%s user_id=%s err=%v", n.ID, n.UserID, err)
	}
}

func (u *NotificationUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// MarkRead flips the read flag. Clients may only touch their own feed;
// staff can mark any notification, which keeps support flows simple.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id string, requester entities.Actor) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if existing.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if existing.UserID != requester.ID && !requester.IsStaff() {
		return entities.Notification{}, ErrForbidden
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
