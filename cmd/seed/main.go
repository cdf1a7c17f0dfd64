package main

import (
	"context"
	"log"
	"os"

	"tutor-match-be/internal/config"
	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/unitofwork"
	"tutor-match-be/internal/service"
	"tutor-match-be/pkg/database"
	"tutor-match-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	cfg := config.Load()
	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	color.Cyan("Seeding tutor roster...")

	for _, tutor := range roster() {
		existing, err := uow.TutorRepository().FindByKeyword(ctx, tutor.Name)
		if err != nil {
			color.Red("Failed to check tutor '%s': %v", tutor.Name, err)
			continue
		}
		if len(existing) > 0 {
			color.Yellow("Tutor '%s' already exists, skipping...", tutor.Name)
			continue
		}

		if err := uow.TutorRepository().Create(ctx, tutor); err != nil {
			color.Red("Failed to create tutor '%s': %v", tutor.Name, err)
			continue
		}

		// Embed synchronously so the roster is searchable right away
		document := service.BuildTutorDocument(tutor)
		res, err := provider.Generate(document, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("Failed to embed tutor '%s': %v", tutor.Name, err)
			continue
		}

		emb := &entity.TutorEmbedding{
			Id:             uuid.New(),
			Document:       document,
			EmbeddingValue: res.Embedding.Values,
			TutorId:        tutor.Id,
		}
		if err := uow.TutorEmbeddingRepository().Create(ctx, emb); err != nil {
			color.Red("Failed to store embedding for '%s': %v", tutor.Name, err)
			continue
		}

		color.Green("Created tutor: %s", tutor.Name)
	}

	color.Cyan("Seeding completed!")
}

func roster() []*entity.Tutor {
	return []*entity.Tutor{
		{
			Id:     uuid.New(),
			Name:   "Maya Chen",
			Bio:    "Math department TA focused on calculus and linear algebra. Patient with first-year students.",
			Skills: []string{"calculus", "linear algebra", "precalculus"},
			Mode:   entity.ModeOnline,
			Availability: []entity.Slot{
				{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline},
				{Day: "Wednesday", Time: "14:00-16:00", Mode: entity.ModeOnline},
			},
		},
		{
			Id:     uuid.New(),
			Name:   "Diego Ramos",
			Bio:    "CS major helping with intro programming, Python, and data structures.",
			Skills: []string{"python", "java", "data structures"},
			Mode:   entity.ModeOnCampus,
			Availability: []entity.Slot{
				{Day: "Tuesday", Time: "09:00-11:00", Mode: entity.ModeOnCampus},
				{Day: "Thursday", Time: "13:00-15:00", Mode: entity.ModeOnCampus},
			},
		},
		{
			Id:     uuid.New(),
			Name:   "Amara Okafor",
			Bio:    "Chemistry tutor covering general and organic chemistry, lab report help included.",
			Skills: []string{"chemistry", "organic chemistry"},
			Mode:   "hybrid",
			Availability: []entity.Slot{
				{Day: "Monday", Time: "13:00-15:00", Mode: entity.ModeOnCampus},
				{Day: "Friday", Time: "10:00-12:00", Mode: entity.ModeOnline},
			},
		},
		{
			Id:     uuid.New(),
			Name:   "Liam O'Donnell",
			Bio:    "English and writing tutor, essay structure and citations.",
			Skills: []string{"english", "essay writing", "citations"},
			Mode:   entity.ModeOnline,
			Availability: []entity.Slot{
				{Day: "Wednesday", Time: "16:00-18:00", Mode: entity.ModeOnline},
				{Day: "Saturday", Time: "10:00-12:00", Mode: entity.ModeOnline},
			},
		},
	}
}
