package service

import (
	"context"
	"encoding/json"
	"fmt"

	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/repository/specification"
	"tutor-match-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITutorService interface {
	GetAll(ctx context.Context) ([]*dto.ShowTutorResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTutorResponse, error)
	Create(ctx context.Context, req *dto.CreateTutorRequest) (*dto.CreateTutorResponse, error)
}

type tutorService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ITutorService {
	return &tutorService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *tutorService) GetAll(ctx context.Context) ([]*dto.ShowTutorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tutors, err := uow.TutorRepository().FindAll(ctx,
		specification.NotDeleted{},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowTutorResponse, 0, len(tutors))
	for _, tutor := range tutors {
		result = append(result, toTutorResponse(tutor))
	}
	return result, nil
}

func (s *tutorService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTutorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tutor, err := uow.TutorRepository().FindOne(ctx, specification.ByID{ID: id}, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, serverutils.NewNotFoundError("tutor not found")
	}
	return toTutorResponse(tutor), nil
}

func (s *tutorService) Create(ctx context.Context, req *dto.CreateTutorRequest) (*dto.CreateTutorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tutor := &entity.Tutor{
		Id:           uuid.New(),
		Name:         req.Name,
		Bio:          req.Bio,
		Skills:       req.Skills,
		Mode:         req.Mode,
		Availability: req.Availability,
	}

	if err := uow.TutorRepository().Create(ctx, tutor); err != nil {
		return nil, err
	}

	// Queue the profile for embedding; the consumer picks it up async.
	msgPayload := dto.PublishEmbedTutorMessage{TutorId: tutor.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal embed message: %w", err)
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateTutorResponse{Id: tutor.Id}, nil
}

func toTutorResponse(tutor *entity.Tutor) *dto.ShowTutorResponse {
	return &dto.ShowTutorResponse{
		Id:           tutor.Id,
		Name:         tutor.Name,
		Bio:          tutor.Bio,
		Skills:       tutor.Skills,
		Mode:         tutor.Mode,
		Availability: tutor.Availability,
		CreatedAt:    tutor.CreatedAt,
		UpdatedAt:    tutor.UpdatedAt,
	}
}
