package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/subguard-api/internal/application/dto"
)

const (
	limiterTTL        = 5 * time.Minute
	limiterSweepEvery = time.Minute
)

// RateLimit token bucket por cliente. La clave es el usuario del token; sin sesión, la IP.
// perMinute <= 0 desactiva el límite.
func RateLimit(perMinute, burst int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	type bucket struct {
		lim *rate.Limiter
		ts  time.Time
	}
	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastSweep = time.Now()
	)
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *fiber.Ctx) error {
		key := GetUserID(c)
		if key == "" {
			key = c.IP()
		}
		now := time.Now()

		mu.Lock()
		if now.Sub(lastSweep) > limiterSweepEvery {
			for k, b := range buckets {
				if now.Sub(b.ts) > limiterTTL {
					delete(buckets, k)
				}
			}
			lastSweep = now
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{lim: rate.NewLimiter(every, burst)}
			buckets[key] = b
		}
		b.ts = now
		allowed := b.lim.Allow()
		mu.Unlock()

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiadas solicitudes; intenta de nuevo en un momento",
			})
		}
		return c.Next()
	}
}
