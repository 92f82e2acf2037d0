package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// IWorkDiaryRepository abstracts DynamoDB persistence for WorkDiary.
//
// UpdateAnnotations writes the asynchronously generated summary/insights; the
// diary record is complete without them.
type IWorkDiaryRepository interface {
	Create(ctx context.Context, d entities.WorkDiary) (entities.WorkDiary, error)
	GetByID(ctx context.Context, id string) (entities.WorkDiary, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkDiary, error)
	UpdateAnnotations(ctx context.Context, id, summary, insights string) (entities.WorkDiary, error)
}
