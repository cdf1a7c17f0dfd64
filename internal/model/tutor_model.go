package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tutor struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:text;not null"`
	Bio          string         `gorm:"type:text"`
	Skills       datatypes.JSON `gorm:"type:jsonb"` // []string
	Mode         string         `gorm:"type:text;not null;default:'online'"`
	Availability datatypes.JSON `gorm:"type:jsonb"` // []entity.Slot
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Tutor) TableName() string {
	return "tutors"
}
