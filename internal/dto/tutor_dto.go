package dto

import (
	"time"

	"github.com/google/uuid"

	"tutor-match-be/internal/entity"
)

type CreateTutorRequest struct {
	Name         string        `json:"name" validate:"required"`
	Bio          string        `json:"bio"`
	Skills       []string      `json:"skills" validate:"required,min=1"`
	Mode         string        `json:"mode" validate:"required,oneof=online 'on campus' hybrid"`
	Availability []entity.Slot `json:"availability" validate:"required,min=1,dive"`
}

type CreateTutorResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishEmbedTutorMessage is the payload queued for the embedding consumer
// whenever a tutor profile is created or updated.
type PublishEmbedTutorMessage struct {
	TutorId uuid.UUID `json:"tutor_id"`
}

type ShowTutorResponse struct {
	Id           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Bio          string        `json:"bio"`
	Skills       []string      `json:"skills"`
	Mode         string        `json:"mode"`
	Availability []entity.Slot `json:"availability"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
}
