package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"countries-backend/internal/shared/middleware"
	"countries-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Everything below is authenticated and rate limited. Auth runs
		// first so the limiter can partition by subject.
		protected := v1.Group("")
		protected.Use(
			middleware.Auth(c.JWTManager),
			middleware.RateLimit(c.Cache, c.Config.RateLimit.Requests, c.Config.RateLimit.Window),
		)

		setupCountryRoutes(protected, c)
		setupCityRoutes(protected, c)
	}

	return router
}

func setupCountryRoutes(g *gin.RouterGroup, c *container.Container) {
	countries := g.Group("/countries")
	{
		countries.GET("", c.CountryHandler.GetAll)
		countries.GET("/:id", c.CountryHandler.GetByID)
		countries.POST("", c.CountryHandler.Create)
		countries.PUT("/:id", c.CountryHandler.Update)
		countries.DELETE("/:id", c.CountryHandler.Delete)
	}
}

func setupCityRoutes(g *gin.RouterGroup, c *container.Container) {
	cities := g.Group("/cities")
	{
		cities.GET("", c.CityHandler.GetAll)
		cities.GET("/:id", c.CityHandler.GetByID)
		cities.POST("", c.CityHandler.Create)
		cities.PUT("/:id", c.CityHandler.Update)
		cities.DELETE("/:id", c.CityHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error"
				health["status"] = "degraded"
			}
		}

		// Redis being down degrades caching and rate limiting but not reads.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
