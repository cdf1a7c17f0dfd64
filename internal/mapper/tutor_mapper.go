package mapper

import (
	"encoding/json"
	"time"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/model"

	"gorm.io/datatypes"
)

type TutorMapper struct{}

func NewTutorMapper() *TutorMapper {
	return &TutorMapper{}
}

func (m *TutorMapper) ToEntity(t *model.Tutor) *entity.Tutor {
	if t == nil {
		return nil
	}

	var skills []string
	if len(t.Skills) > 0 {
		_ = json.Unmarshal(t.Skills, &skills)
	}

	var availability []entity.Slot
	if len(t.Availability) > 0 {
		_ = json.Unmarshal(t.Availability, &availability)
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		d := t.DeletedAt.Time
		deletedAt = &d
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Tutor{
		Id:           t.Id,
		Name:         t.Name,
		Bio:          t.Bio,
		Skills:       skills,
		Mode:         t.Mode,
		Availability: availability,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    t.DeletedAt.Valid,
	}
}

func (m *TutorMapper) ToModel(t *entity.Tutor) *model.Tutor {
	if t == nil {
		return nil
	}

	skills, _ := json.Marshal(t.Skills)
	availability, _ := json.Marshal(t.Availability)

	mdl := &model.Tutor{
		Id:           t.Id,
		Name:         t.Name,
		Bio:          t.Bio,
		Skills:       datatypes.JSON(skills),
		Mode:         t.Mode,
		Availability: datatypes.JSON(availability),
		CreatedAt:    t.CreatedAt,
	}
	if t.UpdatedAt != nil {
		mdl.UpdatedAt = *t.UpdatedAt
	}
	return mdl
}
