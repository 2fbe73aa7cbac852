package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"go-writing-services/internal/catalog"
	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/form"
	"go-writing-services/internal/logger"
	"go-writing-services/internal/render"
	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
)

const busyMessage = "This form is already being submitted. Please wait for the current request to finish."

func (s *server) home(c *gin.Context) {
	c.HTML(http.StatusOK, render.HomeTemplate, render.NewHomePage(uiFrom(c), s.Registry, s.Backends.IsMocked))
}

// showService renders an empty form. Any stored result is dropped, so a
// reload or a visit from the nav bar starts over.
func (s *server) showService(c *gin.Context) {
	svc, err := s.Registry.Lookup(c.Param("slug"))
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Page Not Found", err.Error())
		return
	}

	sessionFrom(c).Slot(svc.Slug).Clear()

	c.HTML(http.StatusOK, render.ServiceTemplate, render.NewServicePage(uiFrom(c), s.Registry, svc, render.ServicePageInput{
		Mocked: s.Backends.IsMocked(svc.Slug),
	}))
}

func (s *server) submitService(c *gin.Context) {
	svc, err := s.Registry.Lookup(c.Param("slug"))
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Page Not Found", err.Error())
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		_ = c.Error(err)
		return
	}

	req := svc.NewRequest()
	if err := binding.MapFormWithTag(req, c.Request.PostForm, "form"); err != nil {
		_ = c.Error(apperrors.NewValidationError("invalid form data", err))
		return
	}
	values := formValues(svc, c.Request.PostForm)

	slot := sessionFrom(c).Slot(svc.Slug)
	in := render.ServicePageInput{Values: values, Mocked: s.Backends.IsMocked(svc.Slug)}
	if prev := slot.Result(); prev != nil {
		doc := view.WithChanges(svc.View(prev), slot.Change())
		in.Document = &doc
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.Config.RequestTimeout)
	defer cancel()

	outcome, err := s.Submitter.Submit(ctx, slot.Machine, svc, req)
	if err != nil {
		logger.WithError(err).WithField("service", svc.Slug).Warn("Form submission refused")
		in.Notification = &form.Notification{Level: form.NotifyError, Message: busyMessage}
		s.renderService(c, apperrors.GetStatusCode(err), svc, in)
		return
	}

	status := http.StatusOK
	switch outcome.Status {
	case form.StatusInvalid:
		status = http.StatusUnprocessableEntity
		in.FieldErrors = outcome.FieldErrors
	case form.StatusFailed:
		status = apperrors.GetStatusCode(outcome.Err)
		in.Notification = outcome.Notification
		logger.WithError(outcome.Err).WithFields(logrus.Fields{
			"service":       svc.Slug,
			"submission_id": outcome.SubmissionID,
		}).Error("Service submission failed")
	case form.StatusSucceeded:
		slot.SetResult(outcome.Result, outcome.Changes, values)
		doc := view.WithChanges(svc.View(outcome.Result), outcome.Changes)
		in.Document = &doc
		in.Notification = outcome.Notification
	}

	s.renderService(c, status, svc, in)
}

func (s *server) toggleTheme(c *gin.Context) {
	target, cookie := ui.Toggle(s.policy, c.Request)
	if cookie != nil {
		http.SetCookie(c.Writer, cookie)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (s *server) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondError(c, http.StatusNotFound, "route not found", apperrors.NewNotFoundError(c.Request.URL.Path, nil))
		return
	}
	s.renderError(c, http.StatusNotFound, "Page Not Found", "The page you are looking for does not exist.")
}

func (s *server) renderService(c *gin.Context, status int, svc *catalog.Service, in render.ServicePageInput) {
	c.HTML(status, render.ServiceTemplate, render.NewServicePage(uiFrom(c), s.Registry, svc, in))
}

func (s *server) renderError(c *gin.Context, status int, title, message string) {
	uictx := uiFrom(c)
	c.HTML(status, render.ErrorTemplate, &render.ErrorPage{
		UI:      uictx,
		Nav:     render.Nav(uictx, s.Registry),
		Title:   title,
		Message: message,
	})
}

// formValues keeps the submitted value of every field of svc.
func formValues(svc *catalog.Service, posted map[string][]string) map[string]string {
	out := make(map[string]string, len(svc.Fields))
	for _, f := range svc.Fields {
		if v := posted[f.Name]; len(v) > 0 {
			out[f.Name] = v[0]
		}
	}
	return out
}

