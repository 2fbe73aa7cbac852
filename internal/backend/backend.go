// Package backend performs the single outbound call behind a form submit,
// either against the writing API or against canned fixtures.
package backend

import (
	"context"

	"go-writing-services/internal/apiclient"
	"go-writing-services/internal/catalog"
	"go-writing-services/pkg/models"
)

// Backend submits one request for one service
type Backend interface {
	Submit(ctx context.Context, svc *catalog.Service, req models.ServiceRequest) (models.Result, error)
	Name() string
	Mocked() bool
}

// HTTPBackend posts requests to the writing API
type HTTPBackend struct {
	client apiclient.Poster
}

// NewHTTPBackend creates a backend that sends through client
func NewHTTPBackend(client apiclient.Poster) *HTTPBackend {
	return &HTTPBackend{client: client}
}

// Submit posts req to the service endpoint and normalizes the decoded result
func (b *HTTPBackend) Submit(ctx context.Context, svc *catalog.Service, req models.ServiceRequest) (models.Result, error) {
	result := svc.NewResult()
	if err := b.client.Post(ctx, svc.Endpoint, req, result); err != nil {
		return nil, err
	}
	result.Normalize(req)
	return result, nil
}

func (b *HTTPBackend) Name() string { return "http" }

func (b *HTTPBackend) Mocked() bool { return false }
