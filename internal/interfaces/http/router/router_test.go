package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("billing", "/billing")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/billing/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterUseAppliesMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	called := false
	r.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})

	group := NewDomainGroup("reports", "/reports")
	group.GET("/summary", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/reports/summary", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("partner", "/partner")
		assert.Equal(t, "partner", g.Name())
		assert.Equal(t, "/partner", g.Prefix())
	})

	t.Run("registers routes for all methods", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("clearance", "/clearance")
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		g.GET("/operations", ok)
		g.POST("/operations", ok)
		g.PUT("/operations/:id", ok)
		g.DELETE("/operations/:id", ok)

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		for _, method := range []string{"GET", "POST"} {
			req := httptest.NewRequest(method, "/api/v1/clearance/operations", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, method)
		}
		for _, method := range []string{"PUT", "DELETE"} {
			req := httptest.NewRequest(method, "/api/v1/clearance/operations/123", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, method)
		}
	})

	t.Run("registers subgroups recursively", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("reports", "/reports")
		sub := g.Group("profit", "/profit")
		sub.GET("/by-client", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/reports/profit/by-client", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
