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
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrInvalidProgress    = errors.New("invalid progress value")
)

// IProjectUseCase exposes project operations outside the lifecycle path.
// Status changes go through ILifecycleUseCase, never through here.
type IProjectUseCase interface {
	Create(ctx context.Context, clientID, name string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Project, error)
	UpdateProgress(ctx context.Context, id string, progress int, currentPhase string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, clientID, name string) (entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Project{}, ErrInvalidClientID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Name:      name,
		Status:    entities.ProjectStatusOrcamento,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// UpdateProgress writes the non-lifecycle fields updatable alongside status.
// Progress only moves while the project is not cancelled; the repository
// write conditions on that.
func (u *ProjectUseCase) UpdateProgress(ctx context.Context, id string, progress int, currentPhase string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if progress < 0 || progress > 100 {
		return entities.Project{}, ErrInvalidProgress
	}

	p, err := u.repo.UpdateProgress(ctx, id, progress, strings.TrimSpace(currentPhase))
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}
