package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/companies"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/storage/cache"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/storage/object"
	localstore "jobboard-backend/internal/shared/storage/object/local"
	s3store "jobboard-backend/internal/shared/storage/object/s3"
	"jobboard-backend/internal/uploads"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies. An explicitly configured backend that cannot be
	// reached aborts startup; only absent configuration falls back.
	store, err := buildObjectStore(cfg)
	if err != nil {
		log.Fatalf("object store: %v", err)
	}
	sqlDB, err := buildDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	redisClient := buildRedis(cfg)

	var companyRepo companies.Repo
	var jobRepo jobs.Repo
	var applicationRepo applications.Repo
	if sqlDB != nil {
		companyRepo = &companies.PGRepo{DB: sqlDB}
		jobRepo = &jobs.PGRepo{DB: sqlDB}
		applicationRepo = &applications.PGRepo{DB: sqlDB}
	} else {
		companyRepo = companies.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		applicationRepo = applications.NewMemoryRepo()
	}

	var jobCache *jobs.Cache
	if redisClient != nil {
		ttl, err := time.ParseDuration(cfg.JobCacheTTL)
		if err != nil {
			log.Printf("invalid JOB_CACHE_TTL %q, using default: %v", cfg.JobCacheTTL, err)
			ttl = 0
		}
		jobCache = jobs.NewCache(redisClient, ttl)
	}

	intake := uploads.NewIntake(store)
	submissionSvc := applications.NewService(applicationRepo, jobRepo, intake)

	companyHandler := companies.NewHandler(companyRepo)
	jobHandler := jobs.NewHandler(jobRepo, jobCache)
	applicationHandler := applications.NewHandler(submissionSvc)
	uploadHandler := uploads.NewHandler(intake)

	submitLimiter := middleware.NewRateLimiter(nil)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	companyHandler.RegisterRoutes(api.Group("/company"))
	jobHandler.RegisterRoutes(api.Group("/job"))

	applicationGroup := api.Group("/application")
	applicationGroup.Use(middleware.RateLimit(submitLimiter, middleware.RateLimitRule{Rate: 2, Burst: 10}))
	applicationHandler.RegisterRoutes(applicationGroup)

	uploadHandler.RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler())

	return r
}

func buildObjectStore(cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.UploadDir), nil
}

func buildDB(cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(context.Background(), sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildRedis(cfg config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Printf("failed to connect redis, job cache disabled: %v", err)
		return nil
	}
	return client
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":4000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
