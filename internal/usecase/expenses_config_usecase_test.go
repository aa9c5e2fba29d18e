package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	mock_interfaces "github.com/Michaeldoss/apptecnico1-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpensesConfigUseCase_Get(t *testing.T) {
	t.Run("invalid technician", func(t *testing.T) {
		uc := NewExpensesConfigUseCase(nil, nil)
		_, err := uc.Get(context.Background(), "")
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("missing config returns zero rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIExpensesConfigRepository(ctrl)
		uc := NewExpensesConfigUseCase(repo, nil)
		repo.EXPECT().GetByTechnicianID(gomock.Any(), "tech-1").Return(entities.ExpensesConfig{}, nil)

		cfg, err := uc.Get(context.Background(), " tech-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TechnicianID != "tech-1" || cfg.RatePerKm != 0 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("stored config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIExpensesConfigRepository(ctrl)
		uc := NewExpensesConfigUseCase(repo, nil)
		repo.EXPECT().GetByTechnicianID(gomock.Any(), "tech-1").Return(entities.ExpensesConfig{TechnicianID: "tech-1", RatePerKm: 1.5}, nil)

		cfg, err := uc.Get(context.Background(), "tech-1")
		if err != nil || cfg.RatePerKm != 1.5 {
			t.Fatalf("unexpected result: %+v err=%v", cfg, err)
		}
	})
}

func TestExpensesConfigUseCase_Save(t *testing.T) {
	t.Run("negative rate", func(t *testing.T) {
		uc := NewExpensesConfigUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "tech-1", ExpensesConfigInput{RatePerKm: -1})
		if !errors.Is(err, ErrInvalidExpensesConfigInput) {
			t.Fatalf("expected ErrInvalidExpensesConfigInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIExpensesConfigRepository(ctrl)
		uc := NewExpensesConfigUseCase(repo, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.ExpensesConfig) (entities.ExpensesConfig, error) {
				if cfg.TechnicianID != "tech-1" || cfg.RatePerMeal != 30 || cfg.UpdatedAt.IsZero() {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				return cfg, nil
			},
		)

		if _, err := uc.Save(context.Background(), "tech-1", ExpensesConfigInput{RatePerMeal: 30}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIExpensesConfigRepository(ctrl)
		uc := NewExpensesConfigUseCase(repo, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ExpensesConfig{}, errors.New("db"))

		_, err := uc.Save(context.Background(), "tech-1", ExpensesConfigInput{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
