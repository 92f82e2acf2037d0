package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDiaryNotFound     = errors.New("work diary not found")
	ErrInvalidDiaryID    = errors.New("invalid work diary id")
	ErrInvalidDiaryEntry = errors.New("invalid work diary entry")
	ErrAnnotationFailed  = errors.New("diary annotation failed")
)

const annotationTimeout = 60 * time.Second

// IDiaryUseCase exposes work diary operations. Create returns as soon as the
// record is durable; the AI annotation runs off the write path and the diary
// is valid without it.
type IDiaryUseCase interface {
	Create(ctx context.Context, projectID string, date time.Time, activities, materials, equipment string) (entities.WorkDiary, error)
	GetByID(ctx context.Context, id string) (entities.WorkDiary, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.WorkDiary, error)
}

type DiaryUseCase struct {
	repo      interfaces.IWorkDiaryRepository
	annotator interfaces.IDiaryAnnotator
}

var _ IDiaryUseCase = (*DiaryUseCase)(nil)

// NewDiaryUseCase builds the diary usecase. annotator may be nil; diaries are
// then created without summaries.
func NewDiaryUseCase(repo interfaces.IWorkDiaryRepository, annotator interfaces.IDiaryAnnotator) *DiaryUseCase {
	return &DiaryUseCase{repo: repo, annotator: annotator}
}

func (u *DiaryUseCase) Create(ctx context.Context, projectID string, date time.Time, activities, materials, equipment string) (entities.WorkDiary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.WorkDiary{}, ErrInvalidProjectID
	}
	activities = strings.TrimSpace(activities)
	if activities == "" {
		return entities.WorkDiary{}, ErrInvalidDiaryEntry
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	now := time.Now().UTC()
	d := entities.WorkDiary{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		Date:       date.UTC(),
		Activities: activities,
		Materials:  strings.TrimSpace(materials),
		Equipment:  strings.TrimSpace(equipment),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.WorkDiary{}, err
	}

	if u.annotator != nil {
		// Fire and forget; a failed annotation leaves the diary valid with
		// the summary fields unset.
		go u.annotate(created)
	}
	return created, nil
}

func (u *DiaryUseCase) annotate(d entities.WorkDiary) {
	ctx, cancel := context.WithTimeout(context.Background(), annotationTimeout)
	defer cancel()

	summary, insights, err := u.annotator.Annotate(ctx, d)
	if err != nil {
		log.Printf("[diary][usecase] annotation failed diary_id=%s err=%v", d.ID, errors.Join(ErrAnnotationFailed, err))
		return
	}

	if _, err := u.repo.UpdateAnnotations(ctx, d.ID, summary, insights); err != nil {
		log.Printf("[diary][usecase] annotation persist failed diary_id=%s err=%v", d.ID, err)
		return
	}
	log.Printf("[diary][usecase] annotation stored diary_id=%s", d.ID)
}

func (u *DiaryUseCase) GetByID(ctx context.Context, id string) (entities.WorkDiary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkDiary{}, ErrInvalidDiaryID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkDiary{}, err
	}
	if d.ID == "" {
		return entities.WorkDiary{}, ErrDiaryNotFound
	}
	return d, nil
}

func (u *DiaryUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.WorkDiary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}
