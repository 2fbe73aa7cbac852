// Package render draws pages and view documents: HTML through embedded
// templates for the web app, styled text through lipgloss for the CLI.
package render

import (
	"go-writing-services/internal/catalog"
	"go-writing-services/internal/form"
	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
	"go-writing-services/pkg/validation"
)

// Template names
const (
	HomeTemplate    = "home.html"
	ServiceTemplate = "service.html"
	ErrorTemplate   = "error.html"
)

// NavLink is one entry of the nav bar
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Card is a service tile on the landing page
type Card struct {
	Title       string
	Description string
	Href        string
	Mocked      bool
}

// FieldView is a form field with its current value and error
type FieldView struct {
	Name    string
	Label   string
	Kind    string
	Rows    int
	Options []catalog.Option
	Value   string
	Error   string
}

// HomePage is the landing page model
type HomePage struct {
	UI    *ui.Context
	Nav   []NavLink
	Cards []Card
}

// ServicePage is the model of one service form page
type ServicePage struct {
	UI           *ui.Context
	Nav          []NavLink
	Heading      string
	Action       string
	SubmitLabel  string
	PendingLabel string
	Fields       []FieldView
	Notification *form.Notification
	Document     *view.Document
	Mocked       bool
}

// ErrorPage is shown for unknown pages and unexpected failures
type ErrorPage struct {
	UI      *ui.Context
	Nav     []NavLink
	Title   string
	Message string
}

// ServicePath is the form page of slug
func ServicePath(slug string) string {
	return "/services/" + slug
}

// Nav builds the nav bar links for uictx.
func Nav(uictx *ui.Context, reg *catalog.Registry) []NavLink {
	links := []NavLink{{Label: "Home", Href: uictx.Link("/"), Active: uictx.IsCurrent("/")}}
	for _, svc := range reg.All() {
		path := ServicePath(svc.Slug)
		links = append(links, NavLink{Label: svc.CardTitle, Href: uictx.Link(path), Active: uictx.IsCurrent(path)})
	}
	return links
}

// NewHomePage lists every service of reg as a card.
func NewHomePage(uictx *ui.Context, reg *catalog.Registry, mocked func(slug string) bool) *HomePage {
	services := reg.All()
	cards := make([]Card, 0, len(services))
	for _, svc := range services {
		cards = append(cards, Card{
			Title:       svc.CardTitle,
			Description: svc.Description,
			Href:        uictx.Link(ServicePath(svc.Slug)),
			Mocked:      mocked != nil && mocked(svc.Slug),
		})
	}
	return &HomePage{UI: uictx, Nav: Nav(uictx, reg), Cards: cards}
}

// ServicePageInput is what a handler knows about a form at render time
type ServicePageInput struct {
	Values       map[string]string
	FieldErrors  validation.FieldErrors
	Notification *form.Notification
	Document     *view.Document
	Mocked       bool
}

// NewServicePage builds the form page of svc.
func NewServicePage(uictx *ui.Context, reg *catalog.Registry, svc *catalog.Service, in ServicePageInput) *ServicePage {
	fields := make([]FieldView, 0, len(svc.Fields))
	for _, f := range svc.Fields {
		fv := FieldView{
			Name:    f.Name,
			Label:   f.Label,
			Kind:    string(f.Kind),
			Rows:    f.Rows,
			Options: f.Options,
			Value:   in.Values[f.Name],
			Error:   in.FieldErrors[f.Name],
		}
		if fv.Value == "" && f.Kind == catalog.KindSelect && len(f.Options) > 0 {
			fv.Value = f.Options[0].Value
		}
		fields = append(fields, fv)
	}

	return &ServicePage{
		UI:           uictx,
		Nav:          Nav(uictx, reg),
		Heading:      svc.Heading,
		Action:       uictx.Link(ServicePath(svc.Slug)),
		SubmitLabel:  svc.SubmitLabel,
		PendingLabel: svc.PendingLabel,
		Fields:       fields,
		Notification: in.Notification,
		Document:     in.Document,
		Mocked:       in.Mocked,
	}
}
