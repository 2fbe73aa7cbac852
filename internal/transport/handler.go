package transport

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-writing-services/internal/backend"
	"go-writing-services/internal/catalog"
	"go-writing-services/internal/config"
	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/form"
	"go-writing-services/internal/logger"
	"go-writing-services/internal/observer"
	"go-writing-services/internal/session"
	"go-writing-services/internal/ui"
	"go-writing-services/pkg/models"
)

const (
	sessionKey = "session"
	uiKey      = "ui"

	// statusClientClosedRequest is logged when the client went away before
	// the response was written.
	statusClientClosedRequest = 499
)

// HistoryReader lists recorded submissions
type HistoryReader interface {
	Recent(ctx context.Context, service string, limit int) ([]models.HistoryEntry, error)
}

// Dependencies are the collaborators of the HTTP handler. History may be nil
// when no history database is configured.
type Dependencies struct {
	Config    *config.Config
	Registry  *catalog.Registry
	Backends  *backend.Selector
	Submitter *form.Submitter
	Sessions  *session.Store
	Metrics   *observer.MetricsObserver
	History   HistoryReader
	Templates *template.Template
}

type server struct {
	Dependencies
	policy ui.Policy
}

func NewHandler(deps Dependencies) http.Handler {
	s := &server{Dependencies: deps, policy: ui.Policy(deps.Config.ThemePolicy)}

	r := gin.New()
	r.SetHTMLTemplate(deps.Templates)

	// Add middleware
	r.Use(
		gin.Recovery(),
		requestLogger(),
		requestSizeLimiter(deps.Config.MaxRequestBodySize),
		errorHandler(),
	)

	// Configure routes
	r.GET("/health", healthCheck)
	r.GET("/metrics", s.metrics)

	pages := r.Group("/", s.withTheme())
	pages.GET("/", s.home)
	pages.GET(ui.TogglePath, s.toggleTheme)

	// Only form pages hold per-visitor state.
	forms := pages.Group("/services", s.withSession())
	forms.GET("/:slug", s.showService)
	forms.POST("/:slug", s.submitService)

	api := r.Group("/api/v1")
	api.GET("/services", s.listServices)
	api.POST("/services/:slug", s.submitJSON)
	api.GET("/history", s.history)

	r.NoRoute(s.withTheme(), s.notFound)

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) metrics(c *gin.Context) {
	out := gin.H{"active_sessions": s.Sessions.Len()}
	if s.Metrics != nil {
		for k, v := range s.Metrics.GetMetrics() {
			out[k] = v
		}
	}
	c.JSON(http.StatusOK, out)
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("Request finished with server error")
			return
		}
		entry.Debug("Request finished")
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err.Err), "request processing failed", err.Err)
		}
	}
}

func determineStatusCode(err error) int {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.StatusCode
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	text := http.StatusText(code)
	if code == statusClientClosedRequest {
		text = "Client Closed Request"
	}
	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   text,
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}

func (s *server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		sess, created := s.Sessions.GetOrCreate(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     session.CookieName,
				Value:    sess.ID,
				Path:     "/",
				MaxAge:   int(s.Sessions.TTL().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func (s *server) withTheme() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(uiKey, ui.Resolve(s.policy, c.Request))
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func uiFrom(c *gin.Context) *ui.Context {
	return c.MustGet(uiKey).(*ui.Context)
}
