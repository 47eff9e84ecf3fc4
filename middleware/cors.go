package middleware

import (
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/config"
)

// CORSMiddleware allows the marketing site's origins to call the API.
// Entries of the form "*.example.com" match any subdomain.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Accept",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		allowed := slices.Clone(cfg.AllowedOrigins)
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return originAllowed(allowed, origin)
		}
	}

	return cors.New(corsConfig)
}

func originAllowed(allowed []string, origin string) bool {
	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
		if strings.HasPrefix(candidate, "*.") && strings.HasSuffix(origin, strings.TrimPrefix(candidate, "*")) {
			return true
		}
	}
	return false
}
