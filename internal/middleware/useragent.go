package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// UserAgentBan rejects requests whose User-Agent header matches any of the
// configured denylist patterns, before any routing happens.
func UserAgentBan(patterns []string) gin.HandlerFunc {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			// A broken pattern is a config mistake; skip it rather than
			// refusing all traffic.
			slog.Warn("Skipping invalid user-agent ban pattern", slog.String("pattern", p))
			continue
		}
		compiled = append(compiled, re)
	}

	return func(c *gin.Context) {
		userAgent := c.GetHeader("User-Agent")
		for _, re := range compiled {
			if re.MatchString(userAgent) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "You are banned"})
				return
			}
		}
		c.Next()
	}
}
