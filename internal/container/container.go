package container

import (
	"fmt"
	"net/http"

	"go-writing-services/internal/apiclient"
	"go-writing-services/internal/backend"
	"go-writing-services/internal/catalog"
	"go-writing-services/internal/config"
	"go-writing-services/internal/form"
	"go-writing-services/internal/history"
	"go-writing-services/internal/logger"
	"go-writing-services/internal/observer"
	"go-writing-services/internal/render"
	"go-writing-services/internal/session"
	"go-writing-services/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config    *config.Config
	registry  *catalog.Registry
	backends  *backend.Selector
	publisher *observer.EventPublisher
	metrics   *observer.MetricsObserver
	history   *history.Store
	submitter *form.Submitter
	sessions  *session.Store
	handler   http.Handler
}

// NewContainer builds the dependency graph for cfg
func NewContainer(cfg *config.Config) (*Container, error) {
	registry := catalog.Default()

	var remote backend.Backend
	if !cfg.MocksAll() {
		remote = backend.NewHTTPBackend(apiclient.New(cfg.APIBaseURL, cfg.APIKey))
	} else {
		logger.Warn("API_BASE_URL is not set; every service is served from canned responses")
	}
	backends := backend.NewSelector(remote, backend.NewMockBackend(cfg.MockDelay), cfg.IsMocked)

	metrics := observer.NewMetricsObserver()
	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(metrics)

	c := &Container{
		config:    cfg,
		registry:  registry,
		backends:  backends,
		publisher: publisher,
		metrics:   metrics,
		sessions:  session.NewStore(cfg.SessionTTL),
	}

	if cfg.HistoryDBPath != "" {
		store, err := history.New(cfg.HistoryDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		c.history = store
		publisher.Subscribe(observer.NewHistoryObserver(store, logger.Logger))
	}

	c.submitter = form.NewSubmitter(backends, publisher)
	return c, nil
}

// Handler builds the HTTP handler on first use
func (c *Container) Handler() (http.Handler, error) {
	if c.handler != nil {
		return c.handler, nil
	}

	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}

	deps := transport.Dependencies{
		Config:    c.config,
		Registry:  c.registry,
		Backends:  c.backends,
		Submitter: c.submitter,
		Sessions:  c.sessions,
		Metrics:   c.metrics,
		Templates: tmpl,
	}
	// A nil *history.Store must not become a non-nil interface.
	if c.history != nil {
		deps.History = c.history
	}

	c.handler = transport.NewHandler(deps)
	return c.handler, nil
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Registry returns the service catalog
func (c *Container) Registry() *catalog.Registry {
	return c.registry
}

// Backends returns the backend selector
func (c *Container) Backends() *backend.Selector {
	return c.backends
}

// Submitter returns the form submitter
func (c *Container) Submitter() *form.Submitter {
	return c.submitter
}

// Sessions returns the visitor session store
func (c *Container) Sessions() *session.Store {
	return c.sessions
}

// Close releases the history database, if any
func (c *Container) Close() error {
	if c.history == nil {
		return nil
	}
	return c.history.Close()
}
