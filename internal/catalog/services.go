package catalog

import (
	"go-writing-services/internal/view"
	"go-writing-services/pkg/models"
)

// Slugs of the built-in services
const (
	SpellingCheck        = "spelling-check"
	WritingEnhancement   = "writing-enhancement"
	AdditionOfConnectors = "addition-of-connectors"
	TextualToneShifts    = "textual-tone-shifts"
	PlagiarismCheck      = "plagiarism-check"
)

func languageField() Field {
	return Field{Name: "lang", Label: "Language", Kind: KindSelect, Options: LanguageOptions()}
}

func textField(name, label string, rows int) Field {
	return Field{Name: name, Label: label, Kind: KindTextarea, Rows: rows}
}

// Default returns the five writing services.
func Default() *Registry {
	return NewRegistry(
		&Service{
			Slug:           SpellingCheck,
			Endpoint:       "/check-spelling",
			Heading:        "Spelling Checker",
			CardTitle:      "Spelling Check",
			Description:    "Automatically check and correct the spelling of your documents.",
			Fields:         []Field{languageField(), textField("content", "Content", 4)},
			SubmitLabel:    "Check Spelling",
			PendingLabel:   "Checking...",
			SuccessMessage: "Spelling check completed successfully!",
			FailureMessage: "An error occurred while submitting the form.",
			NewRequest:     func() models.ServiceRequest { return &models.SpellingRequest{} },
			NewResult:      func() models.Result { return &models.SpellingResult{} },
			View:           view.Spelling,
		},
		&Service{
			Slug:           WritingEnhancement,
			Endpoint:       "/writing-enhancement",
			Heading:        "AI Writing Enhancement",
			CardTitle:      "Writing Enhancement",
			Description:    "Improve the quality and clarity of your texts with advanced suggestions.",
			Fields:         []Field{languageField(), textField("text", "Text", 5)},
			SubmitLabel:    "Enhance Text",
			PendingLabel:   "Enhancing...",
			SuccessMessage: "Text enhanced successfully!",
			FailureMessage: "An error occurred while enhancing the text.",
			NewRequest:     func() models.ServiceRequest { return &models.TextRequest{} },
			NewResult:      func() models.Result { return &models.EnhancementResult{} },
			View:           view.Enhancement,
		},
		&Service{
			Slug:           AdditionOfConnectors,
			Endpoint:       "/addition-of-connectors",
			Heading:        "AI Addition of Connectors",
			CardTitle:      "Addition of Connectors",
			Description:    "Add appropriate connectors to enhance the flow of your texts.",
			Fields:         []Field{languageField(), textField("text", "Text", 5)},
			SubmitLabel:    "Add Connectors",
			PendingLabel:   "Processing...",
			SuccessMessage: "Text processed with connectors successfully!",
			FailureMessage: "An error occurred while processing the text.",
			NewRequest:     func() models.ServiceRequest { return &models.TextRequest{} },
			NewResult:      func() models.Result { return &models.ConnectorsResult{} },
			View:           view.Connectors,
		},
		&Service{
			Slug:        TextualToneShifts,
			Endpoint:    "/textual-tone-shifts",
			Heading:     "AI Textual Tone Shift",
			CardTitle:   "Textual Tone Shifts",
			Description: "Adjust the tone of your text according to the context and audience.",
			Fields: []Field{
				languageField(),
				textField("text", "Text", 5),
				{Name: "target_tone", Label: "Target Tone", Kind: KindInput},
			},
			SubmitLabel:    "Adjust Tone",
			PendingLabel:   "Processing...",
			SuccessMessage: "Tone adjustment request sent successfully!",
			FailureMessage: "An error occurred while processing the request.",
			NewRequest:     func() models.ServiceRequest { return &models.ToneShiftRequest{} },
			NewResult:      func() models.Result { return &models.ToneShiftResult{} },
			View:           view.ToneShift,
		},
		&Service{
			Slug:        PlagiarismCheck,
			Endpoint:    "/plagiarism-check",
			Heading:     "AI Plagiarism Check",
			CardTitle:   "Plagiarism Check",
			Description: "Ensure the originality of your texts with advanced tools.",
			Fields: []Field{
				textField("original_text", "Original Text", 5),
				textField("comparison_text", "Comparison Text", 5),
				languageField(),
			},
			SubmitLabel:    "Check Plagiarism",
			PendingLabel:   "Checking...",
			SuccessMessage: "Plagiarism check complete!",
			FailureMessage: "An error occurred during the plagiarism check.",
			NewRequest:     func() models.ServiceRequest { return &models.PlagiarismRequest{} },
			NewResult:      func() models.Result { return &models.PlagiarismResult{} },
			View:           view.Plagiarism,
		},
	)
}
