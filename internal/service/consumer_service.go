package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/specification"
	"tutor-match-be/internal/repository/unitofwork"
	"tutor-match-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedTutorMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing profile embedding for TutorId: %s", payload.TutorId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	tutor, err := uow.TutorRepository().FindOne(ctx, specification.ByID{ID: payload.TutorId})
	if err != nil {
		log.Printf("[ERROR] Failed to get tutor %s: %v", payload.TutorId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if tutor == nil {
		log.Printf("[ERROR] Tutor not found: %s", payload.TutorId)
		msg.Ack() // Tutor deleted? Ack.
		return
	}

	document := BuildTutorDocument(tutor)

	res, err := cs.embeddingProvider.Generate(document, embedding.TaskRetrievalDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for tutor %s: %v", payload.TutorId, err)
		msg.Nack()
		return
	}

	newEmbedding := &entity.TutorEmbedding{
		Id:             uuid.New(),
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
		TutorId:        tutor.Id,
	}

	// Replace old vectors atomically so searches never see a half-updated profile
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction for tutor %s: %v", payload.TutorId, err)
		msg.Nack()
		return
	}

	if err := uow.TutorEmbeddingRepository().DeleteByTutorId(ctx, tutor.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings for tutor %s: %v", payload.TutorId, err)
		uow.Rollback()
		msg.Nack()
		return
	}

	if err := uow.TutorEmbeddingRepository().Create(ctx, newEmbedding); err != nil {
		log.Printf("[ERROR] Failed to store embedding for tutor %s: %v", payload.TutorId, err)
		uow.Rollback()
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit embedding for tutor %s: %v", payload.TutorId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Stored profile embedding for tutor %s", tutor.Id)
	msg.Ack()
}

// BuildTutorDocument flattens a tutor profile into the text that gets
// embedded. Keeping skills and availability in the document lets semantic
// search pick up on schedule-flavored queries too.
func BuildTutorDocument(tutor *entity.Tutor) string {
	slots := make([]string, 0, len(tutor.Availability))
	for _, slot := range tutor.Availability {
		slots = append(slots, fmt.Sprintf("%s %s (%s)", slot.Day, slot.Time, slot.Mode))
	}

	return fmt.Sprintf(`Tutor: %s
Skills: %s
Mode: %s
Availability: %s

%s`,
		tutor.Name,
		strings.Join(tutor.Skills, ", "),
		tutor.Mode,
		strings.Join(slots, "; "),
		tutor.Bio,
	)
}
