package view

import (
	"strconv"
	"strings"

	"go-writing-services/pkg/models"
)

const noSpellingErrors = "No errors found. Your text is well-written!"

// Spelling renders a spell check result.
func Spelling(result models.Result) Document {
	r, ok := result.(*models.SpellingResult)
	if !ok || r == nil {
		return unexpected("Spelling Check Result")
	}

	doc := Document{Heading: "Spelling Check Result"}
	doc.Sections = append(doc.Sections, text("Result", r.Result))

	if r.HasAnyError {
		explanation := "Errors were found in the submitted text."
		if r.ErrorExplanation != nil && *r.ErrorExplanation != "" {
			explanation = *r.ErrorExplanation
		}
		doc.Sections = append(doc.Sections,
			notice("Error Explanation", ToneError, explanation),
			list("Suggestions", spellingSuggestions(r.Suggestions)),
			list("Error Details", spellingErrors(r.Errors)),
		)
	} else {
		doc.Sections = append(doc.Sections, notice("No Errors", ToneSuccess, noSpellingErrors))
	}

	info := []Fact{
		{Label: "Language", Value: r.Language},
		{Label: "Processing Time", Value: number(r.ProcessingTime) + " seconds"},
	}
	if r.ConfidenceScore != nil {
		info = append(info, Fact{Label: "Confidence Score", Value: number(*r.ConfidenceScore)})
	}
	doc.Sections = append(doc.Sections, facts("Additional Information", info...))

	return doc
}

func spellingSuggestions(suggestions []models.SpellingSuggestion) []Item {
	items := make([]Item, 0, len(suggestions))
	for _, s := range suggestions {
		fs := []Fact{
			{Label: "Original", Value: s.OriginalWord},
			{Label: "Suggested", Value: strings.Join(s.SuggestedWords, ", ")},
		}
		if s.Context != nil && *s.Context != "" {
			fs = append(fs, Fact{Label: "Context", Value: *s.Context})
		}
		items = append(items, Item{Facts: fs})
	}
	return items
}

func spellingErrors(errs []models.SpellingError) []Item {
	items := make([]Item, 0, len(errs))
	for _, e := range errs {
		marker := ToneWarning
		if e.Severity == "high" {
			marker = ToneError
		}
		items = append(items, Item{
			Marker: marker,
			Text:   e.Message,
			Facts: []Fact{
				{Label: "Position", Value: strconv.Itoa(e.Position)},
				{Label: "Length", Value: strconv.Itoa(e.Length)},
				{Label: "Severity", Value: e.Severity},
			},
		})
	}
	return items
}
