package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillKeyword matches tutors whose name, bio or skills contain the token,
// case-insensitively. Skills are stored as a JSONB array so we cast to text.
type SkillKeyword struct {
	Keyword string
}

func (s SkillKeyword) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Keyword + "%"
	return db.Where("name ILIKE ? OR bio ILIKE ? OR skills::text ILIKE ?", pattern, pattern, pattern)
}

// ByMode filters tutors by their primary tutoring mode.
type ByMode struct {
	Mode string
}

func (s ByMode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(mode) = LOWER(?)", s.Mode)
}

// ByTutorID filters embedding rows by owning tutor.
type ByTutorID struct {
	TutorID uuid.UUID
}

func (s ByTutorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tutor_id = ?", s.TutorID)
}
