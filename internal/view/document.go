// Package view turns service results into renderer-neutral documents.
//
// Viewers are pure: the same result always yields the same Document and the
// result is never modified.
package view

import "go-writing-services/pkg/models"

// SectionKind selects how a renderer draws a section.
type SectionKind string

const (
	KindText   SectionKind = "text"
	KindList   SectionKind = "list"
	KindFacts  SectionKind = "facts"
	KindNotice SectionKind = "notice"
	KindLevel  SectionKind = "level"
)

// Tone colors notices, markers and facts.
type Tone string

const (
	ToneNone    Tone = ""
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

// Fact is a labelled value. An empty Label renders the value alone.
type Fact struct {
	Label string
	Value string
	Tone  Tone
}

// Item is one entry of a list section.
type Item struct {
	Marker Tone
	Text   string
	Facts  []Fact
}

// Section is one titled block of a Document.
type Section struct {
	Kind  SectionKind
	Title string
	Tone  Tone
	// Body holds the text of text and notice sections.
	Body  string
	Items []Item
	Facts []Fact
	// Level is a percentage in [0, 100] for level sections.
	Level float64
}

// Document is the full rendering of one result.
type Document struct {
	Heading  string
	Sections []Section
}

// Section returns the first section with the given title.
func (d Document) Section(title string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Titles lists section titles in order.
func (d Document) Titles() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Title)
	}
	return out
}

// Viewer renders one kind of result.
type Viewer func(models.Result) Document

// For picks the viewer matching the dynamic type of result.
func For(result models.Result) Document {
	switch result.(type) {
	case *models.SpellingResult:
		return Spelling(result)
	case *models.EnhancementResult:
		return Enhancement(result)
	case *models.ConnectorsResult:
		return Connectors(result)
	case *models.ToneShiftResult:
		return ToneShift(result)
	case *models.PlagiarismResult:
		return Plagiarism(result)
	default:
		return unexpected("Result")
	}
}

func text(title, body string) Section {
	return Section{Kind: KindText, Title: title, Body: body}
}

func notice(title string, tone Tone, body string) Section {
	return Section{Kind: KindNotice, Title: title, Tone: tone, Body: body}
}

func list(title string, items []Item) Section {
	return Section{Kind: KindList, Title: title, Items: items}
}

func facts(title string, fs ...Fact) Section {
	return Section{Kind: KindFacts, Title: title, Facts: fs}
}

func unexpected(heading string) Document {
	return Document{
		Heading: heading,
		Sections: []Section{
			notice("Unexpected Result", ToneWarning, "The service returned a result this page cannot display."),
		},
	}
}
