package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-writing-services/internal/apiclient"
	"go-writing-services/internal/catalog"
	apperrors "go-writing-services/internal/errors"
	"go-writing-services/pkg/models"
)

func lookup(t *testing.T, slug string) *catalog.Service {
	t.Helper()
	svc, err := catalog.Default().Lookup(slug)
	require.NoError(t, err)
	return svc
}

func TestMockBackend_EveryServiceHasAFixture(t *testing.T) {
	mock := NewMockBackend(0)

	for _, svc := range catalog.Default().All() {
		t.Run(svc.Slug, func(t *testing.T) {
			req := svc.NewRequest()
			res, err := mock.Submit(context.Background(), svc, req)
			require.NoError(t, err)
			assert.IsType(t, svc.NewResult(), res)
		})
	}
}

func TestMockBackend_EchoesRequest(t *testing.T) {
	svc := lookup(t, catalog.AdditionOfConnectors)
	req := &models.TextRequest{Lang: "pt", Text: "Olá mundo."}

	res, err := NewMockBackend(0).Submit(context.Background(), svc, req)
	require.NoError(t, err)

	con := res.(*models.ConnectorsResult)
	assert.Equal(t, "pt", con.Lang)
	assert.Equal(t, "Olá mundo.", con.Text)
	assert.NotEmpty(t, con.LogicalRelations)
}

func TestMockBackend_WaitsForDelay(t *testing.T) {
	svc := lookup(t, catalog.WritingEnhancement)

	start := time.Now()
	_, err := NewMockBackend(30*time.Millisecond).Submit(context.Background(), svc, &models.TextRequest{Lang: "es", Text: "x"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMockBackend_HonorsContext(t *testing.T) {
	svc := lookup(t, catalog.TextualToneShifts)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := NewMockBackend(time.Minute).Submit(ctx, svc, &models.ToneShiftRequest{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTimeout))

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	_, err = NewMockBackend(time.Minute).Submit(ctx, svc, &models.ToneShiftRequest{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNetwork))
}

func TestMockBackend_MissingFixture(t *testing.T) {
	svc := &catalog.Service{Slug: "grammar-check", NewResult: func() models.Result { return &models.SpellingResult{} }}
	_, err := NewMockBackend(0).Submit(context.Background(), svc, &models.SpellingRequest{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestHTTPBackend_Submit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plagiarism-check", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_plagiarized":"no","plagiarism_level":0}`))
	}))
	defer server.Close()

	b := NewHTTPBackend(apiclient.New(server.URL, "k"))
	req := &models.PlagiarismRequest{OriginalText: "a", ComparisonText: "b", Lang: "en"}

	res, err := b.Submit(context.Background(), lookup(t, catalog.PlagiarismCheck), req)
	require.NoError(t, err)

	p := res.(*models.PlagiarismResult)
	assert.Equal(t, models.VerdictClean, p.IsPlagiarized)
	assert.Equal(t, "a", p.OriginalText)
	assert.NotNil(t, p.TextAnalysis)
	assert.False(t, b.Mocked())
}

func TestHTTPBackend_PropagatesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPBackend(apiclient.New(server.URL, "")).Submit(context.Background(), lookup(t, catalog.SpellingCheck), &models.SpellingRequest{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNetwork))
}

func TestSelector(t *testing.T) {
	remote := NewHTTPBackend(apiclient.New("http://localhost:1", ""))
	mock := NewMockBackend(0)

	sel := NewSelector(remote, mock, func(slug string) bool { return slug == catalog.WritingEnhancement })
	assert.Equal(t, "http", sel.For(catalog.SpellingCheck).Name())
	assert.Equal(t, "mock", sel.For(catalog.WritingEnhancement).Name())
	assert.True(t, sel.IsMocked(catalog.WritingEnhancement))

	allMock := NewSelector(nil, mock, nil)
	assert.True(t, allMock.IsMocked(catalog.PlagiarismCheck))
}
