package textdiff

import "go-writing-services/pkg/models"

// Summarize compares the submitted and the final text of results that
// rewrite text. It returns nil for results that do not and for texts too
// large to compare.
func Summarize(result models.Result) *models.Change {
	var before, after string
	switch r := result.(type) {
	case *models.EnhancementResult:
		before, after = r.Text, r.CorrectedStyleText
	case *models.ConnectorsResult:
		before, after = r.Text, r.FinalText
	case *models.ToneShiftResult:
		before, after = r.Text, r.FinalText
	default:
		return nil
	}
	if after == "" {
		return nil
	}

	s, err := Compare(before, after)
	if err != nil {
		return nil
	}
	return &models.Change{
		EditDistance:  s.EditDistance,
		WordErrorRate: s.WordErrorRate,
		WordsBefore:   s.WordsBefore,
		WordsAfter:    s.WordsAfter,
	}
}
