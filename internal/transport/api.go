package transport

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/form"
	"go-writing-services/internal/logger"
	"go-writing-services/pkg/models"
)

func (s *server) listServices(c *gin.Context) {
	services := s.Registry.All()
	out := make([]models.ServiceInfo, 0, len(services))
	for _, svc := range services {
		out = append(out, svc.Info(s.Backends.IsMocked(svc.Slug)))
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

// submitJSON runs one submission outside any visitor session.
func (s *server) submitJSON(c *gin.Context) {
	svc, err := s.Registry.Lookup(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "unknown service", err)
		return
	}

	logger.WithFields(logrus.Fields{
		"service": svc.Slug,
		"ip":      c.ClientIP(),
	}).Info("Processing service request")

	req := svc.NewRequest()
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, bindStatus(err), "invalid request format", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.Config.RequestTimeout)
	defer cancel()

	outcome, err := s.Submitter.Submit(ctx, form.NewMachine(), svc, req)
	if err != nil {
		respondError(c, apperrors.GetStatusCode(err), "submission refused", err)
		return
	}

	switch outcome.Status {
	case form.StatusInvalid:
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "validation failed",
			Fields:  outcome.FieldErrors,
		})
	case form.StatusFailed:
		respondError(c, apperrors.GetStatusCode(outcome.Err), "service request failed", outcome.Err)
	default:
		c.JSON(http.StatusOK, models.SubmissionResponse{
			Service:      svc.Slug,
			SubmissionID: outcome.SubmissionID,
			DurationMS:   outcome.Duration.Milliseconds(),
			Result:       outcome.Result,
			Mocked:       outcome.Mocked,
			Changes:      outcome.Changes,
		})
	}
}

func (s *server) history(c *gin.Context) {
	if s.History == nil {
		respondError(c, http.StatusNotFound, "history unavailable", apperrors.NewNotFoundError("submission history is disabled", nil))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "invalid limit", apperrors.NewValidationError("limit must be a non-negative integer", err))
			return
		}
		limit = n
	}

	service := c.Query("service")
	if service != "" {
		if _, err := s.Registry.Lookup(service); err != nil {
			respondError(c, http.StatusBadRequest, "invalid service", err)
			return
		}
	}

	entries, err := s.History.Recent(c.Request.Context(), service, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func bindStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
