package unitofwork

import (
	"context"

	"tutor-match-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TutorRepository() contract.TutorRepository
	TutorEmbeddingRepository() contract.TutorEmbeddingRepository
}
