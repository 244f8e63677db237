package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// AsmaulHusnaUsecase serves the 99 names with a cached network source and a
// packaged fallback subset.
type AsmaulHusnaUsecase interface {
	Names(ctx context.Context) ([]entity.AsmaulHusnaName, error)
	NameOfDay(ctx context.Context) (*entity.AsmaulHusnaName, error)
}
