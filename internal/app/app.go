package app

import (
	"context"
	"log/slog"

	"github.com/abdulachik/modguard/internal/config"
	"github.com/abdulachik/modguard/internal/db"
	"github.com/abdulachik/modguard/internal/detector"
	"github.com/abdulachik/modguard/internal/health"
	"github.com/abdulachik/modguard/internal/roster"
	"github.com/abdulachik/modguard/internal/storage"
)

// App is the main application container holding all dependencies.
type App struct {
	Config *config.Config
	Store  *db.Store
	Engine *detector.Engine
	Roster *roster.Roster
	Health *health.Tracker
}

// New creates an application instance with all dependencies wired up.
// The classifier and sentiment scorer degrade to disabled rather than
// failing startup; only the database is required.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	h := health.NewTracker()

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	h.SetHealthy("db", "migrated")

	// Keyword persistence: sqlite by default, JSON file when configured.
	var backend storage.ListStore = store.KeywordLists()
	if cfg.KeywordsPath != "" {
		backend = storage.NewFileStore(cfg.KeywordsPath)
	}
	keywords := detector.NewKeywordStore(backend)
	if keywords.Len() == 0 {
		for _, kw := range detector.DefaultKeywords {
			keywords.Add(kw)
		}
	}

	// Classifier: load the artifact or retrain from the seed corpus. A
	// training failure disables the ML term for the process lifetime.
	var classifier detector.Classifier
	model, err := detector.NewModelStore(cfg.ModelPath).LoadOrTrain(detector.SeedCorpus())
	if err != nil {
		slog.Error("classifier disabled", "error", err)
		h.SetUnhealthy("classifier", err)
	} else {
		classifier = model
		h.SetHealthy("classifier", "ready")
	}

	engine := detector.NewEngine(detector.EngineConfig{
		Keywords:   keywords,
		Patterns:   detector.NewPatternDetector(),
		Sentiment:  detector.NewSentimentScorer(),
		Classifier: classifier,
	})

	return &App{
		Config: cfg,
		Store:  store,
		Engine: engine,
		Roster: roster.New(store),
		Health: h,
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
