package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"campus-quiz/internal/config"
	"campus-quiz/internal/database"
	"campus-quiz/internal/domain"
	"campus-quiz/internal/logger"
	"campus-quiz/internal/repository"

	"go.uber.org/zap"
)

// seedQuestion mirrors one entry of the seed file.
type seedQuestion struct {
	Track    string   `json:"track"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
	Order    int      `json:"order"`
}

func main() {
	seedFilePath := flag.String("file", "configs/seed_data/questions.json", "path to the question seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question seeding", zap.String("path", *seedFilePath))
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seeds []seedQuestion
	if err := json.Unmarshal(byteValue, &seeds); err != nil {
		log.Fatal("Failed to parse seed file", zap.Error(err))
	}

	repo := repository.NewSQLXQuestionRepository(db)

	seeded := 0
	for i, s := range seeds {
		question := domain.NewQuizQuestion(s.Track, s.Question, s.Options, s.Answer, s.Order)
		if err := question.Validate(); err != nil {
			log.Warn("Skipping invalid seed question",
				zap.Int("index", i),
				zap.String("track", s.Track),
				zap.Error(err))
			continue
		}
		if err := repo.CreateQuestion(ctx, question); err != nil {
			log.Fatal("Failed to insert question",
				zap.Int("index", i),
				zap.String("track", question.Track),
				zap.Error(err))
		}
		seeded++
	}

	log.Info("Question seeding finished", zap.Int("seeded", seeded), zap.Int("skipped", len(seeds)-seeded))
}
