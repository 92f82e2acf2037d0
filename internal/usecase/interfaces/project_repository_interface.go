package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// UpdateStatus performs a compare-and-swap: the write only lands when the
// stored status still equals expected. A failed condition returns a
// zero-value entity with a nil error; the caller decides how to surface it.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.Status) (entities.Project, error)
	UpdateProgress(ctx context.Context, id string, progress int, currentPhase string) (entities.Project, error)
}
