package render

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-writing-services/internal/catalog"
	"go-writing-services/internal/form"
	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
	"go-writing-services/pkg/models"
	"go-writing-services/pkg/validation"
)

func uiContext(t *testing.T, target string) *ui.Context {
	t.Helper()
	return ui.Resolve(ui.PolicyReset, httptest.NewRequest(http.MethodGet, target, nil))
}

func execute(t *testing.T, name string, data interface{}) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestHomePage(t *testing.T) {
	reg := catalog.Default()
	page := NewHomePage(uiContext(t, "/?theme=dark"), reg, func(slug string) bool {
		return slug == catalog.WritingEnhancement
	})

	require.Len(t, page.Cards, 5)
	assert.Equal(t, "Spelling Check", page.Cards[0].Title)
	assert.Equal(t, "/services/spelling-check?theme=dark", page.Cards[0].Href)
	assert.True(t, page.Cards[1].Mocked)
	assert.False(t, page.Cards[0].Mocked)
	require.Len(t, page.Nav, 6)
	assert.True(t, page.Nav[0].Active)

	html := execute(t, HomeTemplate, page)
	assert.Contains(t, html, "AI WRITING SERVICES")
	assert.Contains(t, html, "Use Service")
	assert.Contains(t, html, "Plagiarism Check")
	assert.Contains(t, html, "--bg:#121212;")
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, "Light mode")
	assert.Equal(t, 5, strings.Count(html, "Use Service"))
}

func TestServicePage_FieldsAndErrors(t *testing.T) {
	reg := catalog.Default()
	svc, err := reg.Lookup(catalog.TextualToneShifts)
	require.NoError(t, err)

	page := NewServicePage(uiContext(t, "/services/textual-tone-shifts"), reg, svc, ServicePageInput{
		Values:      map[string]string{"lang": "fr", "text": "Salut"},
		FieldErrors: validation.FieldErrors{"target_tone": "Target tone is required"},
	})

	require.Len(t, page.Fields, 3)
	assert.Equal(t, "fr", page.Fields[0].Value)
	assert.Equal(t, "Target tone is required", page.Fields[2].Error)
	assert.Equal(t, "/services/textual-tone-shifts", page.Action)

	html := execute(t, ServiceTemplate, page)
	assert.Contains(t, html, "AI Textual Tone Shift")
	assert.Contains(t, html, `<option value="fr" selected>French</option>`)
	assert.Contains(t, html, "Target tone is required")
	assert.Contains(t, html, `data-pending="Processing..."`)
	assert.Contains(t, html, "Adjust Tone")
	assert.NotContains(t, html, `class="toast`)
}

func TestServicePage_DefaultsLanguage(t *testing.T) {
	reg := catalog.Default()
	svc, err := reg.Lookup(catalog.SpellingCheck)
	require.NoError(t, err)

	page := NewServicePage(uiContext(t, "/services/spelling-check"), reg, svc, ServicePageInput{})
	assert.Equal(t, "en", page.Fields[0].Value)
	assert.Empty(t, page.Fields[1].Value)
}

func TestServicePage_Result(t *testing.T) {
	reg := catalog.Default()
	svc, err := reg.Lookup(catalog.PlagiarismCheck)
	require.NoError(t, err)

	doc := svc.View(&models.PlagiarismResult{
		IsPlagiarized:   models.VerdictPlagiarized,
		PlagiarismLevel: 72.5,
		TextAnalysis: []models.SentenceAnalysis{
			{SentenceOriginal: "A cat.", SentenceComparison: "A cat!", LikelihoodOfPlagiarism: 0.9, FlaggedForReview: true},
		},
	})
	page := NewServicePage(uiContext(t, "/services/plagiarism-check"), reg, svc, ServicePageInput{
		Notification: &form.Notification{Level: form.NotifySuccess, Message: svc.SuccessMessage},
		Document:     &doc,
	})

	html := execute(t, ServiceTemplate, page)
	assert.Contains(t, html, `class="toast success"`)
	assert.Contains(t, html, "Plagiarism check complete!")
	assert.Contains(t, html, "AI Plagiarism Check Results")
	assert.Contains(t, html, "Plagiarism Level: 72.5%")
	assert.Contains(t, html, `value="72.5"`)
	assert.Contains(t, html, "Flagged for Review")
	assert.Contains(t, html, "90%")
	assert.Contains(t, html, "None.")
}

func TestErrorPage(t *testing.T) {
	reg := catalog.Default()
	uictx := uiContext(t, "/services/unknown?theme=dark")
	html := execute(t, ErrorTemplate, &ErrorPage{UI: uictx, Nav: Nav(uictx, reg), Title: "Not Found", Message: "unknown service: unknown"})

	assert.Contains(t, html, "Not Found")
	assert.Contains(t, html, `href="/?theme=dark"`)
}

func TestTerminal_Render(t *testing.T) {
	doc := view.Document{
		Heading: "Spelling Check Result",
		Sections: []view.Section{
			{Kind: view.KindText, Title: "Corrected Text", Body: "This is a test."},
			{Kind: view.KindNotice, Title: "No Errors", Tone: view.ToneSuccess, Body: "Nothing to fix."},
			{Kind: view.KindFacts, Title: "Details", Facts: []view.Fact{{Label: "Language", Value: "EN"}, {Value: "Flagged"}}},
			{Kind: view.KindList, Title: "Suggestions", Items: []view.Item{{Text: "Ths", Facts: []view.Fact{{Label: "Suggested", Value: "This"}}}}},
			{Kind: view.KindList, Title: "Errors"},
			{Kind: view.KindLevel, Title: "Plagiarism Level", Body: "Plagiarism Level: 50%", Level: 50},
		},
	}

	out := NewTerminal(ui.Light).Render(doc)
	for _, want := range []string{
		"Spelling Check Result",
		"Corrected Text",
		"This is a test.",
		"No Errors",
		"Nothing to fix.",
		"Language: EN",
		"[Flagged]",
		"• Ths",
		"Suggested: This",
		"None.",
		"Plagiarism Level: 50%",
		strings.Repeat("█", 10) + strings.Repeat("░", 10),
	} {
		assert.Contains(t, out, want)
	}
}
