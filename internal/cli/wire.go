package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmoren/wellspring/internal/advisor"
	"github.com/jmoren/wellspring/internal/coach"
	"github.com/jmoren/wellspring/internal/config"
	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/llm"
	"github.com/jmoren/wellspring/internal/metrics"
	"github.com/jmoren/wellspring/internal/repository"
	"github.com/jmoren/wellspring/internal/service"
	"github.com/jmoren/wellspring/internal/summary"
)

// app bundles everything a command needs after wiring.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	database *sql.DB
	svc      *service.WellnessService
}

func (a *app) close() {
	if a.database != nil {
		a.database.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// buildApp loads config, opens the database, and wires the service
// graph.
func buildApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := buildLogger(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	observer := llm.MultiObserver{metrics.PromObserver{}}
	if cfg.LLM.LogCalls {
		observer = append(observer, llm.NewLogObserver(log))
	}
	client := llm.NewDisabledClient()
	if cfg.LLM.Enabled {
		client = llm.NewOllamaClient(cfg.LLM, observer)
	}

	svc := service.NewWellnessService(service.Deps{
		Users:      repository.NewSQLiteUserRepo(database),
		Tasks:      repository.NewSQLiteTaskRepo(database),
		Convs:      repository.NewSQLiteConversationRepo(database),
		Rewards:    repository.NewSQLiteRewardRepo(database),
		UoW:        db.NewSQLiteUnitOfWork(database),
		Advisor:    advisor.NewAdvisor(client, log),
		Planner:    coach.NewPlanner(client, log),
		Summarizer: summary.NewSummarizer(client, log),
		Client:     client,
		Log:        log,
	})

	return &app{cfg: cfg, log: log, database: database, svc: svc}, nil
}

// buildLogger picks a console encoder on interactive terminals and JSON
// otherwise.
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
