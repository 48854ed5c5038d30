package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/webgroup16/contacts_app/internal/middleware"
)

func newBanRouter(patterns []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.UserAgentBan(patterns))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestUserAgentBan_BlocksMatchingAgents(t *testing.T) {
	r := newBanRouter([]string{"Googlebot", "Python-urllib"})

	cases := []string{
		"Googlebot/2.1 (+http://www.google.com/bot.html)",
		"Python-urllib/3.11",
	}
	for _, ua := range cases {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("User-Agent", ua)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "user agent %q should be banned", ua)
		assert.Contains(t, w.Body.String(), "You are banned")
	}
}

func TestUserAgentBan_AllowsRegularAgents(t *testing.T) {
	r := newBanRouter([]string{"Googlebot", "Python-urllib"})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserAgentBan_SkipsInvalidPatterns(t *testing.T) {
	// A broken pattern must not take the whole denylist down.
	r := newBanRouter([]string{"[invalid(", "Googlebot"})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "Googlebot/2.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
