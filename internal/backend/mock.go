package backend

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"go-writing-services/internal/catalog"
	apperrors "go-writing-services/internal/errors"
	"go-writing-services/pkg/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// MockBackend answers every submit with a canned result after a fixed delay
type MockBackend struct {
	delay time.Duration
}

// NewMockBackend creates a mock that waits delay before resolving
func NewMockBackend(delay time.Duration) *MockBackend {
	return &MockBackend{delay: delay}
}

// Submit waits for the delay, or for ctx, then decodes the service fixture.
// Echo fields missing from a fixture are filled from req.
func (b *MockBackend) Submit(ctx context.Context, svc *catalog.Service, req models.ServiceRequest) (models.Result, error) {
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, apperrors.NewTimeoutError("mock submission timed out", ctx.Err())
			}
			return nil, apperrors.NewNetworkError("mock submission cancelled", ctx.Err())
		}
	}

	data, err := fixtures.ReadFile("fixtures/" + svc.Slug + ".json")
	if err != nil {
		return nil, apperrors.NewNotFoundError("no canned response for "+svc.Slug, err)
	}

	result := svc.NewResult()
	if err := json.Unmarshal(data, result); err != nil {
		return nil, apperrors.NewProcessingError("failed to decode canned response", err)
	}
	result.Normalize(req)
	return result, nil
}

func (b *MockBackend) Name() string { return "mock" }

func (b *MockBackend) Mocked() bool { return true }
