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
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvalidInvoiceDue    = errors.New("invalid invoice due date")
)

// IInvoiceUseCase exposes invoice operations outside the lifecycle path.
// Paying, overdue marking and cancellation go through ILifecycleUseCase.
type IInvoiceUseCase interface {
	Create(ctx context.Context, clientID, projectID string, amount float64, dueDate time.Time) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (u *InvoiceUseCase) Create(ctx context.Context, clientID, projectID string, amount float64, dueDate time.Time) (entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Invoice{}, ErrInvalidClientID
	}
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	if dueDate.IsZero() {
		return entities.Invoice{}, ErrInvalidInvoiceDue
	}

	now := time.Now().UTC()
	i := entities.Invoice{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		ProjectID: strings.TrimSpace(projectID),
		Amount:    amount,
		Status:    entities.InvoiceStatusPendente,
		DueDate:   dueDate.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, i)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if i.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return i, nil
}

func (u *InvoiceUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}
