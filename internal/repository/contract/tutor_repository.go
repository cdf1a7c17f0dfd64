package contract

import (
	"context"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TutorRepository interface {
	Create(ctx context.Context, tutor *entity.Tutor) error
	Update(ctx context.Context, tutor *entity.Tutor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tutor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tutor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindByKeyword scans name/bio/skills for a case-insensitive substring hit.
	// Availability filtering (day/time/mode) happens in the matching layer,
	// since availability is a JSONB document, not queryable columns.
	FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error)
}
