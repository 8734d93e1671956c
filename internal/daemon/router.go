package daemon

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func (s *Service) newRouter() *gin.Engine {
	r := gin.New()

	// Client IPs are never used
	r.ForwardedByClientIP = false
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.DebugLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Logger()
		})))
	r.Use(s.metrics.middleware())

	if len(s.cfg.CORSAllowOrigins) > 0 {
		log.Debug().Str("origins", strings.Join(s.cfg.CORSAllowOrigins, " ")).Msg("CORS enabled")
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.CORSAllowOrigins,
			AllowMethods: []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		}))
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, HTTPError{Error: "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, HTTPError{Error: "not found"})
	})

	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}
	_ = r.SetTrustedProxies([]string{})

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	{
		v1.GET("/status", s.handleStatus)
		v1.PUT("/budget", s.handleSetBudget)
		v1.GET("/expenses", s.handleListExpenses)
		v1.POST("/expenses", s.handleRecordExpense)
		v1.POST("/expenses/emergency", s.handleRecordEmergency)
		v1.GET("/alerts", s.handleListAlerts)
		v1.DELETE("/alerts", s.handleClearAlerts)
		v1.POST("/tips", s.handleTip)
		v1.POST("/day-boundary", s.handleDayBoundary)
		v1.GET("/report", s.handleReport)
		v1.GET("/events", s.handleEvents)
		v1.GET("/stream", s.handleStream)
	}

	return r
}
