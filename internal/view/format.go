package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-writing-services/pkg/models"
)

// number prints v without trailing zeros.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// percent prints a fraction as a percentage rounded to two decimals.
func percent(fraction float64) string {
	return number(math.Round(fraction*10000)/100) + "%"
}

func yesNo(v string) string {
	if strings.EqualFold(v, "yes") {
		return "Yes"
	}
	return "No"
}

// changeSummary reports how far a rewrite moved away from the submitted text.
func changeSummary(c *models.Change) Section {
	if c.EditDistance == 0 {
		return notice("Change Summary", ToneInfo, "The text was returned unchanged.")
	}
	return facts("Change Summary",
		Fact{Label: "Characters Changed", Value: strconv.Itoa(c.EditDistance)},
		Fact{Label: "Word Error Rate", Value: fmt.Sprintf("%.2f%%", c.WordErrorRate*100)},
		Fact{Label: "Words", Value: fmt.Sprintf("%d to %d", c.WordsBefore, c.WordsAfter)},
	)
}

// WithChanges returns doc with a change summary placed after its last text
// section. A nil change returns doc unchanged.
func WithChanges(doc Document, change *models.Change) Document {
	if change == nil {
		return doc
	}

	at := len(doc.Sections)
	for i, s := range doc.Sections {
		if s.Kind == KindText {
			at = i + 1
		}
	}

	sections := make([]Section, 0, len(doc.Sections)+1)
	sections = append(sections, doc.Sections[:at]...)
	sections = append(sections, changeSummary(change))
	sections = append(sections, doc.Sections[at:]...)
	doc.Sections = sections
	return doc
}
