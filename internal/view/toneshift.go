package view

import "go-writing-services/pkg/models"

// ToneShift renders a textual tone shift result.
func ToneShift(result models.Result) Document {
	r, ok := result.(*models.ToneShiftResult)
	if !ok || r == nil {
		return unexpected("AI Textual Tone Shift Result")
	}

	analysis := make([]Item, 0, len(r.ToneAnalysis))
	for _, a := range r.ToneAnalysis {
		marker := ToneSuccess
		if a.ChangeNeeded {
			marker = ToneWarning
		}
		analysis = append(analysis, Item{Marker: marker, Facts: []Fact{
			{Label: "Sentence", Value: a.Sentence},
			{Label: "Current Tone", Value: a.CurrentTone},
			{Label: "Reason", Value: a.Reason, Tone: ToneWarning},
		}})
	}

	suggestions := make([]Item, 0, len(r.ToneShiftSuggestions))
	for _, s := range r.ToneShiftSuggestions {
		suggestions = append(suggestions, Item{Facts: []Fact{
			{Label: "Sentence", Value: s.Sentence},
			{Label: "Suggested Revision", Value: s.Suggestion, Tone: ToneSuccess},
		}})
	}

	implementation := make([]Item, 0, len(r.ToneShiftImplementation))
	for _, impl := range r.ToneShiftImplementation {
		implementation = append(implementation, Item{Facts: []Fact{
			{Label: "Original Sentence", Value: impl.OriginalSentence},
			{Label: "Revised Sentence", Value: impl.RevisedSentence, Tone: ToneSuccess},
			{Label: "Review Notes", Value: impl.ReviewNotes, Tone: ToneWarning},
		}})
	}

	return Document{
		Heading: "AI Textual Tone Shift Result",
		Sections: []Section{
			text("Original Text", r.Text),
			text("Final Text with Tone Shift", r.FinalText),
			list("Tone Analysis", analysis),
			list("Tone Shift Suggestions", suggestions),
			list("Tone Shift Implementation", implementation),
			text("Final Review Notes", r.ReviewNotes),
		},
	}
}
