package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"countries-backend/internal/shared/response"
	"countries-backend/pkg/cache"
)

const rateLimitMessage = "Too many requests. Please try again later."

// RateLimit enforces a fixed-window limit per caller. Requests are
// partitioned by the authenticated subject when present, otherwise by
// client host. The window lives in the cache, so the limit holds across
// instances. Cache failures fail open.
func RateLimit(store cache.Cache, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		partition := c.GetString(SubjectKey)
		if partition == "" {
			partition = c.ClientIP()
		}
		key := fmt.Sprintf("ratelimit:%s", partition)

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("rate limit counter unavailable")
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to arm rate limit window")
			}
		}

		if count > int64(limit) {
			response.TooManyRequests(c, rateLimitMessage)
			c.Abort()
			return
		}

		c.Next()
	}
}
