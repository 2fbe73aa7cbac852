package view

import (
	"fmt"
	"strconv"

	"go-writing-services/pkg/models"
)

// Connectors renders an addition of connectors result.
func Connectors(result models.Result) Document {
	r, ok := result.(*models.ConnectorsResult)
	if !ok || r == nil {
		return unexpected("AI Addition of Connectors Result")
	}

	relations := make([]Item, 0, len(r.LogicalRelations))
	for _, rel := range r.LogicalRelations {
		relations = append(relations, Item{
			Text: rel.Sentence,
			Facts: []Fact{{
				Label: "Relation",
				Value: fmt.Sprintf("%s (Confidence: %.2f%%)", rel.Relation, rel.Confidence*100),
			}},
		})
	}

	suggestions := make([]Item, 0, len(r.ConnectorSuggestions))
	for _, s := range r.ConnectorSuggestions {
		suggestions = append(suggestions, Item{Facts: []Fact{
			{Label: "Suggested Connector", Value: s.Connector},
			{Label: "Relation Type", Value: s.RelationType},
		}})
	}

	fluency := make([]Item, 0, len(r.FluencyCorrections))
	for _, c := range r.FluencyCorrections {
		fluency = append(fluency, Item{Facts: []Fact{
			{Label: "From", Value: strconv.Itoa(c.StartIndex) + " to " + strconv.Itoa(c.EndIndex)},
			{Label: "Correction", Value: c.Correction, Tone: ToneSuccess},
			{Label: "Explanation", Value: c.Explanation, Tone: ToneWarning},
		}})
	}

	return Document{
		Heading: "AI Addition of Connectors Result",
		Sections: []Section{
			text("Original Text", r.Text),
			text("Text with Connectors", r.TextWithConnectors),
			list("Logical Relations", relations),
			list("Connector Suggestions", suggestions),
			list("Fluency Corrections", fluency),
			text("Final Text", r.FinalText),
		},
	}
}
