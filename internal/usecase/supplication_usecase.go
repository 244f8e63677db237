package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// SupplicationUsecase serves doa, tahlil, and prophet-story content with the
// same cache-first policy as the other content modules.
type SupplicationUsecase interface {
	DoaList(ctx context.Context) ([]entity.Doa, error)
	DoaByID(ctx context.Context, id string) (*entity.Doa, error)
	Tahlil(ctx context.Context) ([]entity.TahlilItem, error)
	KisahNabiList(ctx context.Context) ([]entity.KisahNabi, error)
}
