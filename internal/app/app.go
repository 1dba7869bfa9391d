package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/infrastructure/account"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-stats/internal/platform/cache"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
	"github.com/riskibarqy/club-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel"
)

const meterName = "github.com/riskibarqy/club-stats"

// App is the assembled HTTP service together with the resources it owns.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

// New builds the storage backend, services and router described by cfg.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	hasher := account.NewBcryptHasher(cfg.BcryptCost)
	tokens, err := account.NewTokenService(account.TokenConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("build token service: %w", err)
	}

	out := &App{}
	uow, err := out.openStorage(ctx, cfg, hasher, logger)
	if err != nil {
		return nil, err
	}

	var analyticsCache *cache.Store
	if cfg.CacheEnabled {
		analyticsCache = cache.NewStore(cfg.CacheTTL)
	}

	analyticsSvc := usecase.NewAnalyticsService(uow, analyticsCache, logger)
	teamSvc := usecase.NewTeamService(uow, hasher, tokens, analyticsSvc, logger)
	playerSvc := usecase.NewPlayerService(uow, analyticsSvc, logger)
	matchSvc := usecase.NewMatchService(
		uow,
		usecase.NewStatsReconciler(otel.GetMeterProvider().Meter(meterName), logger),
		usecase.NewQuarterSynthesizer(logger),
		analyticsSvc,
		logger,
	)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, analyticsSvc, logger)
	router := httpapi.NewRouter(handler, tokens, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	out.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return out, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) openStorage(ctx context.Context, cfg config.Config, hasher usecase.PasswordHasher, logger *logging.Logger) (usecase.UnitOfWork, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		if cfg.SeedDemo {
			hash, err := hasher.Hash(cfg.SeedDemoPassword)
			if err != nil {
				return nil, fmt.Errorf("hash demo password: %w", err)
			}
			if _, _, err := memory.SeedDemo(ctx, store, hash); err != nil {
				return nil, fmt.Errorf("seed memory store: %w", err)
			}
			logger.Info("demo team seeded", "storage", cfg.StorageDriver, "team", memory.DemoTeamName)
		}
		return store, nil

	case config.StoragePostgres:
		db, err := otelsqlx.Open("postgres",
			withApplicationName(cfg.DBURL, cfg.ServiceName),
			dbTraceOptions(dbNameFromURL(cfg.DBURL))...,
		)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
		db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), db.Close())
		}
		a.db = db

		if cfg.SeedDemo {
			hash, err := hasher.Hash(cfg.SeedDemoPassword)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("hash demo password: %w", err), db.Close())
			}
			seeded, err := postgres.BootstrapSeed(ctx, db, hash)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("seed postgres: %w", err), db.Close())
			}
			if seeded {
				logger.Info("demo team seeded", "storage", cfg.StorageDriver, "team", memory.DemoTeamName)
			}
		}
		var opts []postgres.UnitOfWorkOption
		if cfg.DBBreakerThreshold > 0 {
			opts = append(opts, postgres.WithBreaker(resilience.NewBreaker(resilience.BreakerConfig{
				FailureThreshold: cfg.DBBreakerThreshold,
				Cooldown:         cfg.DBBreakerCooldown,
			}, nil)))
		}
		return postgres.NewUnitOfWork(db, opts...), nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
