// Package catalog describes the writing services: their form fields, their
// remote endpoints and the texts shown around a submission.
package catalog

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/view"
	"go-writing-services/pkg/models"
	"go-writing-services/pkg/validation"
)

// FieldKind selects the input control of a field
type FieldKind string

const (
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindInput    FieldKind = "input"
)

// Option is one choice of a select field
type Option struct {
	Value string
	Label string
}

// Field is one input of a service form
type Field struct {
	Name    string
	Label   string
	Kind    FieldKind
	Rows    int
	Options []Option
}

// Service is the configuration record that drives the generic form
type Service struct {
	Slug        string
	Endpoint    string
	Heading     string
	CardTitle   string
	Description string
	Fields      []Field

	SubmitLabel    string
	PendingLabel   string
	SuccessMessage string
	FailureMessage string

	NewRequest func() models.ServiceRequest
	NewResult  func() models.Result
	View       view.Viewer
}

// Info is the public description served by the JSON API
func (s *Service) Info(mocked bool) models.ServiceInfo {
	fields := make([]models.FieldInfo, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, models.FieldInfo{Name: f.Name, Label: f.Label, Kind: string(f.Kind)})
	}
	return models.ServiceInfo{
		Slug:        s.Slug,
		Title:       s.CardTitle,
		Description: s.Description,
		Endpoint:    s.Endpoint,
		Mocked:      mocked,
		Fields:      fields,
	}
}

// Registry holds the services in landing page order
type Registry struct {
	services []*Service
	bySlug   map[string]*Service
}

// NewRegistry indexes services by slug. A later duplicate replaces the
// earlier one in place.
func NewRegistry(services ...*Service) *Registry {
	r := &Registry{bySlug: make(map[string]*Service, len(services))}
	for _, s := range services {
		if _, dup := r.bySlug[s.Slug]; !dup {
			r.services = append(r.services, s)
		} else {
			for i, existing := range r.services {
				if existing.Slug == s.Slug {
					r.services[i] = s
				}
			}
		}
		r.bySlug[s.Slug] = s
	}
	return r
}

// Lookup returns the service registered under slug
func (r *Registry) Lookup(slug string) (*Service, error) {
	if s, ok := r.bySlug[slug]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("unknown service: "+slug, nil)
}

// All returns services in registration order
func (r *Registry) All() []*Service {
	out := make([]*Service, len(r.services))
	copy(out, r.services)
	return out
}

// Slugs returns the registered slugs sorted alphabetically
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.bySlug))
	for slug := range r.bySlug {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// LanguageOptions lists the supported languages with English display names.
func LanguageOptions() []Option {
	namer := display.English.Languages()
	opts := make([]Option, 0, len(validation.SupportedLanguages))
	for _, code := range validation.SupportedLanguages {
		label := code
		if tag, err := language.Parse(code); err == nil {
			if name := namer.Name(tag); name != "" {
				label = name
			}
		}
		opts = append(opts, Option{Value: code, Label: label})
	}
	return opts
}
