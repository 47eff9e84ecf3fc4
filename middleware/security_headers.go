package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/config"
)

// contactPathPrefix covers the routes that echo submitted form values.
const contactPathPrefix = "/v1/contact"

// SecurityHeadersMiddleware sets the response headers for a JSON-only API.
// Contact responses carry what visitors typed, so shared caches must not
// keep them.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	hsts := cfg.IsProduction()
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		if strings.HasPrefix(c.Request.URL.Path, contactPathPrefix) {
			h.Set("Cache-Control", "no-store")
		}
		if hsts {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
