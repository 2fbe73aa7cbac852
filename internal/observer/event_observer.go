package observer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"go-writing-services/pkg/models"
)

// SubmissionEvent describes one step in the life of a form submission
type SubmissionEvent struct {
	EventType    EventType              `json:"event_type"`
	Timestamp    time.Time              `json:"timestamp"`
	SubmissionID string                 `json:"submission_id"`
	Service      string                 `json:"service"`
	Lang         string                 `json:"lang,omitempty"`
	Mocked       bool                   `json:"mocked"`
	Duration     time.Duration          `json:"duration"`
	ErrorType    string                 `json:"error_type,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of submission event
type EventType string

const (
	// SubmissionStarted when a valid request is handed to a backend
	SubmissionStarted EventType = "submission_started"
	// SubmissionCompleted when the backend returned a usable result
	SubmissionCompleted EventType = "submission_completed"
	// SubmissionFailed when the backend call or decoding failed
	SubmissionFailed EventType = "submission_failed"
	// SubmissionRejected when validation failed or the form was busy
	SubmissionRejected EventType = "submission_rejected"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event SubmissionEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event SubmissionEvent)
}

// LoggingObserver logs submission events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles submission events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event SubmissionEvent) {
	fields := logrus.Fields{
		"event_type":    event.EventType,
		"submission_id": event.SubmissionID,
		"service":       event.Service,
		"lang":          event.Lang,
		"mocked":        event.Mocked,
	}
	if event.Duration > 0 {
		fields["duration_ms"] = event.Duration.Milliseconds()
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
		fields["error_type"] = event.ErrorType
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := o.logger.WithFields(fields)
	switch event.EventType {
	case SubmissionStarted:
		entry.Info("Submission started")
	case SubmissionCompleted:
		entry.Info("Submission completed")
	case SubmissionFailed:
		entry.Error("Submission failed")
	case SubmissionRejected:
		entry.Warn("Submission rejected")
	default:
		entry.Info("Submission event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver counts submissions, overall and per service
type MetricsObserver struct {
	mu                 sync.RWMutex
	total              int64
	succeeded          int64
	failed             int64
	rejected           int64
	totalDuration      time.Duration
	succeededByService map[string]int64
	failedByService    map[string]int64
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		succeededByService: make(map[string]int64),
		failedByService:    make(map[string]int64),
	}
}

// OnEvent handles submission events by collecting metrics
func (o *MetricsObserver) OnEvent(ctx context.Context, event SubmissionEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case SubmissionStarted:
		o.total++
	case SubmissionCompleted:
		o.succeeded++
		o.succeededByService[event.Service]++
		o.totalDuration += event.Duration
	case SubmissionFailed:
		o.failed++
		o.failedByService[event.Service]++
	case SubmissionRejected:
		o.rejected++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current metrics
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avg := time.Duration(0)
	if o.succeeded > 0 {
		avg = o.totalDuration / time.Duration(o.succeeded)
	}

	perService := make(map[string]map[string]int64)
	for svc, n := range o.succeededByService {
		if perService[svc] == nil {
			perService[svc] = map[string]int64{}
		}
		perService[svc]["succeeded"] = n
	}
	for svc, n := range o.failedByService {
		if perService[svc] == nil {
			perService[svc] = map[string]int64{}
		}
		perService[svc]["failed"] = n
	}

	return map[string]interface{}{
		"total_submissions":      o.total,
		"successful_submissions": o.succeeded,
		"failed_submissions":     o.failed,
		"rejected_submissions":   o.rejected,
		"avg_duration_ms":        avg.Milliseconds(),
		"by_service":             perService,
	}
}

// Recorder persists finished submissions
type Recorder interface {
	Record(ctx context.Context, entry models.HistoryEntry) error
}

// HistoryObserver writes completed and failed submissions to a Recorder
type HistoryObserver struct {
	recorder Recorder
	logger   *logrus.Logger
	timeout  time.Duration
}

// NewHistoryObserver creates a history observer
func NewHistoryObserver(recorder Recorder, logger *logrus.Logger) Observer {
	return &HistoryObserver{recorder: recorder, logger: logger, timeout: 5 * time.Second}
}

// OnEvent records terminal submission events
func (o *HistoryObserver) OnEvent(ctx context.Context, event SubmissionEvent) {
	var status string
	switch event.EventType {
	case SubmissionCompleted:
		status = "succeeded"
	case SubmissionFailed:
		status = "failed"
	default:
		return
	}

	// The write outlives the request that triggered it.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeout)
	defer cancel()

	err := o.recorder.Record(writeCtx, models.HistoryEntry{
		SubmissionID: event.SubmissionID,
		Service:      event.Service,
		Lang:         event.Lang,
		Status:       status,
		ErrorType:    event.ErrorType,
		DurationMS:   event.Duration.Milliseconds(),
		CreatedAt:    event.Timestamp,
	})
	if err != nil {
		o.logger.WithError(err).WithField("submission_id", event.SubmissionID).Error("Failed to record submission history")
	}
}

// GetObserverName returns the observer name
func (o *HistoryObserver) GetObserverName() string {
	return "history_observer"
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers delivers event to every observer concurrently and returns
// once all of them are done. A panicking observer is logged and skipped.
func (p *EventPublisher) NotifyObservers(ctx context.Context, event SubmissionEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	var g errgroup.Group
	for _, observer := range observers {
		obs := observer
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
					err = fmt.Errorf("observer %s panicked: %v", obs.GetObserverName(), r)
				}
			}()
			obs.OnEvent(ctx, event)
			return nil
		})
	}
	_ = g.Wait()
}
