package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/config"
	"github.com/gdugdh24/skillswap-backend/internal/delivery/http"
	"github.com/gdugdh24/skillswap-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/skillswap-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/skillswap-backend/internal/infrastructure/database"
	"github.com/gdugdh24/skillswap-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/skillswap-backend/internal/infrastructure/notify"
	"github.com/gdugdh24/skillswap-backend/internal/infrastructure/server"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/gdugdh24/skillswap-backend/internal/repository/memory"
	"github.com/gdugdh24/skillswap-backend/internal/repository/postgres"
	"github.com/gdugdh24/skillswap-backend/internal/repository/redisstore"
	"github.com/gdugdh24/skillswap-backend/internal/seed"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/auth"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/bookmark"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/browse"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/profile"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/request"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/settings"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "skillswap:"

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// Repositories groups the storage the use cases run on.
type Repositories struct {
	Profiles repository.ProfileRepository
	Requests repository.RequestRepository
	Swaps    repository.SwapRepository
	Settings repository.SettingsRepository
	Sessions repository.SessionRepository
	KV       repository.KV
}

// MemoryRepositories is process-local storage; everything is lost on exit.
func MemoryRepositories() *Repositories {
	store := memory.NewStore()
	return &Repositories{
		Profiles: memory.NewProfileRepository(),
		Requests: store.Requests(),
		Swaps:    store.Swaps(),
		Settings: memory.NewSettingsRepository(),
		Sessions: memory.NewSessionRepository(),
		KV:       memory.NewKV(),
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	repos := MemoryRepositories()

	if cfg.Storage.Type == config.StoragePostgres {
		db, err := database.NewPostgresDB(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		if cfg.Database.Migrate {
			if err := database.RunMigrations(db.DB, logger); err != nil {
				c.Close()
				return nil, err
			}
		}
		repos.Profiles = postgres.NewProfileRepository(db)
		repos.Requests = postgres.NewRequestRepository(db)
		repos.Swaps = postgres.NewSwapRepository(db)
		repos.Settings = postgres.NewSettingsRepository(db)
	}

	notifiers := notify.Multi{notify.NewLogNotifier(logger.Named("notify"))}

	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		repos.Sessions = redisstore.NewSessionRepository(redisClient, redisKeyPrefix)
		repos.KV = redisstore.NewKV(redisClient, redisKeyPrefix)
		notifiers = append(notifiers, notify.NewRedisNotifier(redisClient, cfg.Notify.Channel, logger.Named("notify")))
	}

	// Without a key the request use case falls back to template messages.
	var drafter request.MessageDrafter
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, logger.Named("gemini"))
		if err != nil {
			logger.Warn("gemini disabled", zap.Error(err))
		} else {
			c.Gemini = geminiClient
			drafter = geminiClient
		}
	}

	if cfg.Storage.Seed {
		if err := seed.Load(ctx, repos.Profiles, repos.Settings, repos.Requests, time.Now().UTC()); err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to seed: %w", err)
		}
		logger.Info("sample data loaded", zap.String("demo_profile_id", seed.DemoViewerID))
	}

	router := NewRouter(repos, cfg, notifiers, drafter, logger)
	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

// NewRouter wires use cases, handlers and middleware on top of repos.
func NewRouter(
	repos *Repositories,
	cfg *config.Config,
	notifier request.Notifier,
	drafter request.MessageDrafter,
	logger *zap.Logger,
) *http.Router {
	authUseCase := auth.NewAuthUseCase(repos.Profiles, repos.Sessions, cfg.JWT.AccessSecret, cfg.JWT.SessionTTL)
	profileUseCase := profile.NewProfileUseCase(repos.Profiles)
	browseUseCase := browse.NewBrowseUseCase(repos.Profiles, repos.Settings)
	requestUseCase := request.NewRequestUseCase(repos.Requests, repos.Swaps, browseUseCase, notifier, drafter, logger.Named("request"))
	bookmarkUseCase := bookmark.NewBookmarkUseCase(repos.KV, browseUseCase)
	settingsUseCase := settings.NewSettingsUseCase(repos.Settings, repos.Profiles)

	return http.NewRouter(
		handler.NewAuthHandler(authUseCase, profileUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewBrowseHandler(browseUseCase),
		handler.NewRequestHandler(requestUseCase),
		handler.NewBookmarkHandler(bookmarkUseCase),
		handler.NewSettingsHandler(settingsUseCase),
		middleware.NewAuthMiddleware(authUseCase),
		logger,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
