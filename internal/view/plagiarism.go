package view

import (
	"fmt"
	"strings"

	"go-writing-services/pkg/models"
)

const plagiarismHeading = "AI Plagiarism Check Results"

// Plagiarism renders a plagiarism check. The layout depends on the verdict.
func Plagiarism(result models.Result) Document {
	r, ok := result.(*models.PlagiarismResult)
	if !ok || r == nil {
		return unexpected(plagiarismHeading)
	}

	switch r.IsPlagiarized {
	case models.VerdictClean:
		return noPlagiarism(r)
	case models.VerdictPlagiarized:
		return plagiarismFound(r)
	default:
		return Document{
			Heading: plagiarismHeading,
			Sections: []Section{
				notice("Inconclusive Result", ToneWarning,
					fmt.Sprintf("The plagiarism check returned an unrecognized verdict %q.", r.IsPlagiarized)),
			},
		}
	}
}

func noPlagiarism(r *models.PlagiarismResult) Document {
	return Document{
		Heading: plagiarismHeading,
		Sections: []Section{
			notice("No Plagiarism Detected", ToneSuccess,
				"The submitted text has been compared, and no plagiarism was detected."),
			text("Original Text", r.OriginalText),
			text("Comparison Text", r.ComparisonText),
			facts("Details", Fact{Label: "Language", Value: strings.ToUpper(r.Lang)}),
		},
	}
}

func plagiarismFound(r *models.PlagiarismResult) Document {
	analysis := make([]Item, 0, len(r.TextAnalysis))
	for _, a := range r.TextAnalysis {
		chip := ToneSuccess
		if a.FlaggedForReview {
			chip = ToneError
		}
		fs := []Fact{
			{Label: "Original", Value: a.SentenceOriginal},
			{Label: "Comparison", Value: a.SentenceComparison},
			{Label: "Plagiarism Likelihood", Value: percent(a.LikelihoodOfPlagiarism), Tone: chip},
		}
		if a.FlaggedForReview {
			fs = append(fs, Fact{Value: "Flagged for Review", Tone: ToneError})
		}
		analysis = append(analysis, Item{Marker: chip, Facts: fs})
	}

	suggestions := make([]Item, 0, len(r.PlagiarismSuspicionSuggestions))
	for _, s := range r.PlagiarismSuspicionSuggestions {
		suggestions = append(suggestions, Item{Facts: []Fact{
			{Label: "Original", Value: s.SentenceOriginal},
			{Label: "Comparison", Value: s.SentenceComparison},
			{Label: "Suggestion", Value: s.Suggestion, Tone: ToneInfo},
		}})
	}

	corrections := make([]Item, 0, len(r.PlagiarismCorrections))
	for _, c := range r.PlagiarismCorrections {
		corrections = append(corrections, Item{Facts: []Fact{
			{Label: "Original", Value: c.OriginalSentence},
			{Label: "Corrected", Value: c.CorrectedSentence, Tone: ToneSuccess},
			{Label: "Reason for Correction", Value: c.ReasonForCorrection, Tone: ToneInfo},
		}})
	}

	level := Section{
		Kind:  KindLevel,
		Title: "Plagiarism Level",
		Body:  "Plagiarism Level: " + number(r.PlagiarismLevel) + "%",
		Level: clampPercent(r.PlagiarismLevel),
		Tone:  ToneError,
	}

	doc := Document{
		Heading: plagiarismHeading,
		Sections: []Section{
			level,
			list("Text Analysis", analysis),
			list("Suggestions to Avoid Plagiarism", suggestions),
			list("Plagiarism Corrections", corrections),
		},
	}

	if fc := r.FinalPlagiarismCheck; fc != nil {
		passed := ToneError
		if yesNo(fc.FinalCheck) == "Yes" {
			passed = ToneSuccess
		}
		doc.Sections = append(doc.Sections, facts("Final Plagiarism Check",
			Fact{Label: "Final Text", Value: fc.FinalText},
			Fact{Label: "Review Notes", Value: fc.ReviewNotes},
			Fact{Label: "Final Check Passed", Value: yesNo(fc.FinalCheck), Tone: passed},
		))
	}

	return doc
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
