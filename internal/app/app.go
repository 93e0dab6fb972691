package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/prepkit/assessment-service/internal/config"
	"github.com/prepkit/assessment-service/internal/delivery/httpd"
	"github.com/prepkit/assessment-service/internal/repository"
	"github.com/prepkit/assessment-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server     *http.Server
	logger     zerolog.Logger
	config     *config.Config
	db         *sql.DB
	statsCache *repository.StatsCache
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	var statsCache *repository.StatsCache
	if cfg.Redis.Enabled {
		cache, err := repository.NewStatsCache(
			cfg.Redis.Addr(),
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.StatsTTL,
			log,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Redis, serving stats without cache")
		} else {
			statsCache = cache
		}
	}

	studentRepo := repository.NewStudentRepository(db, log)
	recordRepo := repository.NewRecordRepository(db, log)
	statsRepo := repository.NewStatsRepository(db, log)

	studentService := service.NewStudentService(studentRepo, log)
	recordService := service.NewRecordService(studentRepo, recordRepo, log)
	analyticsService := service.NewAnalyticsService(statsRepo, statsCache, log)

	handler := httpd.NewHandler(
		studentService,
		recordService,
		analyticsService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:     server,
		logger:     log,
		config:     cfg,
		db:         db,
		statsCache: statsCache,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting assessment service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down assessment service...")

	if a.statsCache != nil {
		if err := a.statsCache.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
