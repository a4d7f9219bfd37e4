// @title         ai-comparator API
// @version       1.0
// @description   Sends one prompt to several LLM providers and keeps a per-user history of the answers.
// @BasePath      /api
// @schemes       http
// @host          localhost:3001
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/aicomparator/docs"

	// internal imports
	httpapi "github.com/artem13815/aicomparator/api/http"
	"github.com/artem13815/aicomparator/api/http/handlers"
	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/comparison"
	"github.com/artem13815/aicomparator/pkg/config"
	"github.com/artem13815/aicomparator/pkg/health"
	"github.com/artem13815/aicomparator/pkg/health/checkers"
	"github.com/artem13815/aicomparator/pkg/history"
	"github.com/artem13815/aicomparator/pkg/llm/gemini"
	"github.com/artem13815/aicomparator/pkg/llm/groq"
	"github.com/artem13815/aicomparator/pkg/logger"
	"github.com/artem13815/aicomparator/pkg/profile"
	"github.com/artem13815/aicomparator/pkg/repository/gormdb"
	pgrepo "github.com/artem13815/aicomparator/pkg/repository/postgres"
	"github.com/artem13815/aicomparator/pkg/security/jwt"
	"github.com/artem13815/aicomparator/pkg/storage/postgres"
	"github.com/artem13815/aicomparator/pkg/storage/sqlite"
)

// stores bundles the repositories of the selected backend.
type stores struct {
	users   auth.UserRepository
	history history.Repository
	checker health.Checker
	close   func()
}

func main() {
	// Load configuration from defaults, optional YAML file and env/.env
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer st.close()

	// Token manager
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL(), cfg.RefreshTTL())

	// Provider adapters, invoked in fixed order by the comparison service
	groqAdapter := groq.NewAdapter(groq.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
		Timeout: cfg.LLMTimeout(),
	}, log)
	geminiAdapter := gemini.NewAdapter(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.LLMTimeout(),
	}, log)
	if cfg.GroqAPIKey == "" {
		log.Warn("GROQ_API_KEY is not set; groq calls will report a missing credential")
	}
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; gemini calls will report a missing credential")
	}

	// Wire dependencies (Clean Architecture)
	authUC := auth.NewAuthService(st.users, tokens)
	comparisonUC := comparison.NewService(st.history, log, groqAdapter, geminiAdapter)
	historyUC := history.NewService(st.history)
	profileUC := profile.NewService(st.users)
	readiness := health.NewService(st.checker)

	app := httpapi.NewApp(log, cfg.CORSAllowOrigins)
	httpapi.Register(app, httpapi.Handlers{
		Auth:    handlers.NewAuthHandler(authUC, log),
		Health:  handlers.NewHealthHandler(readiness),
		Prompt:  handlers.NewPromptHandler(comparisonUC, log),
		History: handlers.NewHistoryHandler(historyUC, log),
		Profile: handlers.NewProfileHandler(profileUC),
	}, jwt.NewAuthMiddleware(tokens), jwt.NewOptionalAuthMiddleware(tokens))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// openStores connects to the database named by DATABASE_URL and applies
// its migrations.
func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	driver, dsn, err := cfg.Database()
	if err != nil {
		return stores{}, err
	}

	switch driver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, dsn)
		if err != nil {
			return stores{}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return stores{}, err
		}
		log.Info("storage ready", "driver", driver)
		return stores{
			users:   pgrepo.NewUserRepository(pool),
			history: pgrepo.NewHistoryRepository(pool),
			checker: checkers.NewPingChecker("postgres", pool),
			close:   pool.Close,
		}, nil
	default:
		db, err := sqlite.Open(dsn)
		if err != nil {
			return stores{}, err
		}
		if err := gormdb.Migrate(db); err != nil {
			return stores{}, err
		}
		log.Info("storage ready", "driver", driver, "path", dsn)
		return stores{
			users:   gormdb.NewUserRepository(db),
			history: gormdb.NewHistoryRepository(db),
			checker: checkers.NewGormChecker(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	}
}
