// Package main boots the MindScore check-in service and wires application
// dependencies.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mantra-ai/mindscore/internal/analyzer"
	"github.com/mantra-ai/mindscore/internal/config"
	"github.com/mantra-ai/mindscore/internal/models"
	"github.com/mantra-ai/mindscore/internal/repository"
	"github.com/mantra-ai/mindscore/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	userID := flag.String("user", "default", "user id to record the check-in under")
	flag.Parse()

	cfg := config.Load()
	slog.Info("configuration loaded", "classifier_model", cfg.ClassifierModel, "persistence", cfg.DatabaseURL != "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
		text = string(data)
	}

	llm, err := models.NewOpenAIModel(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ClassifierModel)
	if err != nil {
		log.Fatalf("failed to create classifier model: %v", err)
	}

	var checkins service.CheckInRepo
	if cfg.DatabaseURL != "" {
		store, err := repository.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		checkins = store.CheckIns
	}

	svc := service.NewService(analyzer.New(llm), checkins, cfg.HistoryLimit, cfg.TopK, cfg.SimilarityThreshold)

	report, err := svc.CheckIn(ctx, *userID, text, nil)
	if err != nil {
		log.Fatalf("check-in failed: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}
	fmt.Println(string(out))
}
