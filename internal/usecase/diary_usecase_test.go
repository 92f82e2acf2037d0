package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"construtora_obraprima/internal/domain/entities"
	mock_interfaces "construtora_obraprima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiaryUseCase_Create(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewDiaryUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", time.Time{}, "Concretagem da laje", "", "")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("blank activities", func(t *testing.T) {
		uc := NewDiaryUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "p-1", time.Time{}, "   ", "", "")
		if !errors.Is(err, ErrInvalidDiaryEntry) {
			t.Fatalf("expected ErrInvalidDiaryEntry, got %v", err)
		}
	})

	t.Run("create without annotator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkDiaryRepository(ctrl)
		uc := NewDiaryUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.WorkDiary) (entities.WorkDiary, error) {
				if d.AISummary != "" || d.AIInsights != "" {
					t.Fatal("fresh diary must not carry annotations")
				}
				return d, nil
			})

		d, err := uc.Create(context.Background(), "p-1", time.Time{}, "Concretagem da laje", "Cimento, areia", "Betoneira")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Date.IsZero() {
			t.Fatal("expected defaulted diary date")
		}
	})

	t.Run("annotation is stored asynchronously", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkDiaryRepository(ctrl)
		annotator := mock_interfaces.NewMockIDiaryAnnotator(ctrl)
		uc := NewDiaryUseCase(repo, annotator)

		var wg sync.WaitGroup
		wg.Add(1)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.WorkDiary) (entities.WorkDiary, error) { return d, nil })
		annotator.EXPECT().Annotate(gomock.Any(), gomock.Any()).Return("Laje concluída.", "Verificar cura do concreto.", nil)
		repo.EXPECT().UpdateAnnotations(gomock.Any(), gomock.Any(), "Laje concluída.", "Verificar cura do concreto.").DoAndReturn(
			func(_ context.Context, id, summary, insights string) (entities.WorkDiary, error) {
				defer wg.Done()
				return entities.WorkDiary{ID: id, AISummary: summary, AIInsights: insights}, nil
			})

		d, err := uc.Create(context.Background(), "p-1", time.Time{}, "Concretagem da laje", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.AISummary != "" {
			t.Fatal("create must return before annotation lands")
		}
		wg.Wait()
	})

	t.Run("annotation failure leaves the diary valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkDiaryRepository(ctrl)
		annotator := mock_interfaces.NewMockIDiaryAnnotator(ctrl)
		uc := NewDiaryUseCase(repo, annotator)

		var wg sync.WaitGroup
		wg.Add(1)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.WorkDiary) (entities.WorkDiary, error) { return d, nil })
		annotator.EXPECT().Annotate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.WorkDiary) (string, string, error) {
				defer wg.Done()
				return "", "", errors.New("api unavailable")
			})

		if _, err := uc.Create(context.Background(), "p-1", time.Time{}, "Concretagem da laje", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wg.Wait()
	})
}

func TestDiaryUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkDiaryRepository(ctrl)
		uc := NewDiaryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-404").Return(entities.WorkDiary{}, nil)

		_, err := uc.GetByID(context.Background(), "d-404")
		if !errors.Is(err, ErrDiaryNotFound) {
			t.Fatalf("expected ErrDiaryNotFound, got %v", err)
		}
	})
}
