package implementation

import (
	"context"
	"errors"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/mapper"
	"tutor-match-be/internal/model"
	"tutor-match-be/internal/repository/contract"
	"tutor-match-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TutorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewTutorRepository(db *gorm.DB) contract.TutorRepository {
	return &TutorRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *TutorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TutorRepositoryImpl) Create(ctx context.Context, tutor *entity.Tutor) error {
	m := r.mapper.ToModel(tutor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tutor = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorRepositoryImpl) Update(ctx context.Context, tutor *entity.Tutor) error {
	m := r.mapper.ToModel(tutor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tutor = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tutor{}, id).Error
}

func (r *TutorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tutor, error) {
	var m model.Tutor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TutorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tutor, error) {
	var models []*model.Tutor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Tutor, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TutorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Tutor{}).Count(&count).Error
	return count, err
}

func (r *TutorRepositoryImpl) FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error) {
	return r.FindAll(ctx,
		specification.SkillKeyword{Keyword: keyword},
		specification.OrderBy{Field: "name", Desc: false},
	)
}
