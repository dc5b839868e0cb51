package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"countries-backend/internal/config"
	infraCache "countries-backend/internal/infrastructure/cache"
	"countries-backend/internal/infrastructure/database"
	"countries-backend/pkg/cache"
	"countries-backend/pkg/jwt"

	"countries-backend/internal/domains/city"
	cityHandler "countries-backend/internal/domains/city/handler"
	cityRepo "countries-backend/internal/domains/city/repository"
	cityService "countries-backend/internal/domains/city/service"
	"countries-backend/internal/domains/country"
	countryHandler "countries-backend/internal/domains/country/handler"
	countryRepo "countries-backend/internal/domains/country/repository"
	countryService "countries-backend/internal/domains/country/service"
)

// Container holds every dependency of the application, wired in order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	CountryRepo country.Repository
	CityRepo    city.Repository

	CountryService country.Service
	CityService    city.Service

	CountryHandler *countryHandler.CountryHandler
	CityHandler    *cityHandler.CityHandler
}

// NewContainer builds the full dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The app serves reads from postgres either way.
		log.Warn().Err(err).Msg("redis unavailable at startup")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessToken)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CountryRepo = countryRepo.NewPostgresRepository(pool, c.Cache)
	c.CityRepo = cityRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.CountryService = countryService.NewCountryService(c.CountryRepo)
	c.CityService = cityService.NewCityService(c.CityRepo, c.CountryRepo)
}

func (c *Container) initHandlers() {
	c.CountryHandler = countryHandler.NewCountryHandler(c.CountryService)
	c.CityHandler = cityHandler.NewCityHandler(c.CityService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
}
