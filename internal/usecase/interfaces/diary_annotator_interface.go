package interfaces

import (
	"context"

	"construtora_obraprima/internal/domain/entities"
)

// IDiaryAnnotator abstracts the AI provider that turns a raw work diary entry
// into a short summary plus actionable insights.
type IDiaryAnnotator interface {
	Annotate(ctx context.Context, d entities.WorkDiary) (summary, insights string, err error)
}
