package view

import "go-writing-services/pkg/models"

// Enhancement renders the staged rewrites of a writing enhancement result.
func Enhancement(result models.Result) Document {
	r, ok := result.(*models.EnhancementResult)
	if !ok || r == nil {
		return unexpected("AI Writing Enhancement Result")
	}

	return Document{
		Heading: "AI Writing Enhancement Result",
		Sections: []Section{
			text("Original Text", r.Text),
			text("Normalized Text", r.NormalizedText),
			text("Advanced Grammar Text", r.AdvancedGrammarText),
			text("Clarity and Readability Text", r.ClarityReadabilityText),
			text("Corrected Style Text", r.CorrectedStyleText),
			list("Normalization Corrections", corrections(r.NormalizeCorrections)),
			list("Advanced Grammar Corrections", corrections(r.AdvancedGrammarCorrections)),
			list("Clarity and Readability Corrections", corrections(r.ClarityReadabilityCorrections)),
			list("Stylistic Corrections", corrections(r.StylisticCorrections)),
		},
	}
}

func corrections(cs []models.Correction) []Item {
	items := make([]Item, 0, len(cs))
	for _, c := range cs {
		items = append(items, Item{Facts: []Fact{
			{Label: "Before", Value: c.Before},
			{Label: "After", Value: c.After, Tone: ToneSuccess},
			{Label: "Explanation", Value: c.Explanation, Tone: ToneWarning},
		}})
	}
	return items
}
