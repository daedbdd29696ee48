package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// LoginRateLimiter limits login attempts per client IP using an in-memory
// store. The format string follows ulule/limiter, e.g. "5-M" for 5/minute.
func LoginRateLimiter(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		log.Printf("invalid rate limit format %q, falling back to 5-M", format)
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
