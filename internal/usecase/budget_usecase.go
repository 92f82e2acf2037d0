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
	ErrInvalidBudgetID    = errors.New("invalid budget id")
	ErrInvalidBudgetTitle = errors.New("invalid budget title")
	ErrInvalidBudgetValue = errors.New("invalid budget value")
)

// IBudgetUseCase exposes budget operations outside the lifecycle path.
// Sending and approve/reject go through ILifecycleUseCase.
type IBudgetUseCase interface {
	Create(ctx context.Context, clientID, projectID, title string, items []entities.BudgetItem, validUntil time.Time) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

// Create persists a RASCUNHO budget. TotalValue is always derived from the
// line items, never taken from the caller.
func (u *BudgetUseCase) Create(ctx context.Context, clientID, projectID, title string, items []entities.BudgetItem, validUntil time.Time) (entities.Budget, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Budget{}, ErrInvalidClientID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Budget{}, ErrInvalidBudgetTitle
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		ProjectID:  strings.TrimSpace(projectID),
		Title:      title,
		Items:      items,
		Status:     entities.BudgetStatusRascunho,
		ValidUntil: validUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.TotalValue = b.SumItems()
	if b.TotalValue <= 0 {
		return entities.Budget{}, ErrInvalidBudgetValue
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Budget, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}
