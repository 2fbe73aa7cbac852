package models

// Result is a decoded response from one of the writing endpoints.
type Result interface {
	// Normalize fills what the API left out: nil lists become empty and
	// echoed request fields fall back to the request values.
	Normalize(req ServiceRequest)
}

// SpellingSuggestion proposes replacements for a misspelled word
type SpellingSuggestion struct {
	OriginalWord   string   `json:"originalWord"`
	SuggestedWords []string `json:"suggestedWords"`
	Context        *string  `json:"context,omitempty"`
}

// SpellingError locates a single problem in the checked content
type SpellingError struct {
	Position int    `json:"position"`
	Length   int    `json:"length"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// SpellingResult is returned by /check-spelling
type SpellingResult struct {
	Result           string               `json:"result"`
	HasAnyError      bool                 `json:"hasAnyError"`
	ErrorExplanation *string              `json:"errorExplanation,omitempty"`
	Suggestions      []SpellingSuggestion `json:"suggestions"`
	Errors           []SpellingError      `json:"errors"`
	Language         string               `json:"language"`
	ProcessingTime   float64              `json:"processingTime"`
	ConfidenceScore  *float64             `json:"confidenceScore,omitempty"`
}

func (r *SpellingResult) Normalize(req ServiceRequest) {
	if r.Suggestions == nil {
		r.Suggestions = []SpellingSuggestion{}
	}
	for i := range r.Suggestions {
		if r.Suggestions[i].SuggestedWords == nil {
			r.Suggestions[i].SuggestedWords = []string{}
		}
	}
	if r.Errors == nil {
		r.Errors = []SpellingError{}
	}
	if r.Language == "" && req != nil {
		r.Language = req.Language()
	}
}

// Correction is one before/after edit with its reasoning
type Correction struct {
	Before      string `json:"before"`
	After       string `json:"after"`
	Explanation string `json:"explanation"`
}

// EnhancementResult is returned by /writing-enhancement
type EnhancementResult struct {
	Text                          string       `json:"text"`
	NormalizedText                string       `json:"normalized_text"`
	AdvancedGrammarText           string       `json:"advanced_grammar_text"`
	ClarityReadabilityText        string       `json:"clarity_readability_text"`
	CorrectedStyleText            string       `json:"corrected_style_text"`
	NormalizeCorrections          []Correction `json:"normalize_corrections"`
	AdvancedGrammarCorrections    []Correction `json:"advanced_grammar_corrections"`
	ClarityReadabilityCorrections []Correction `json:"clarity_readability_corrections"`
	StylisticCorrections          []Correction `json:"stylistic_corrections"`
}

func (r *EnhancementResult) Normalize(req ServiceRequest) {
	r.NormalizeCorrections = nonNil(r.NormalizeCorrections)
	r.AdvancedGrammarCorrections = nonNil(r.AdvancedGrammarCorrections)
	r.ClarityReadabilityCorrections = nonNil(r.ClarityReadabilityCorrections)
	r.StylisticCorrections = nonNil(r.StylisticCorrections)
	if tr, ok := req.(*TextRequest); ok && r.Text == "" {
		r.Text = tr.Text
	}
}

// LogicalRelation classifies how a sentence relates to the previous one
type LogicalRelation struct {
	Sentence   string  `json:"sentence"`
	Relation   string  `json:"relation"`
	Confidence float64 `json:"confidence"`
}

// ConnectorSuggestion proposes a connector before the sentence at Position
type ConnectorSuggestion struct {
	Connector    string `json:"connector"`
	Position     int    `json:"position"`
	RelationType string `json:"relation_type"`
}

// FluencyCorrection replaces the character range [StartIndex, EndIndex)
type FluencyCorrection struct {
	StartIndex  int    `json:"start_index"`
	EndIndex    int    `json:"end_index"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

// ConnectorsResult is returned by /addition-of-connectors
type ConnectorsResult struct {
	Text                 string                `json:"text"`
	Lang                 string                `json:"lang"`
	LogicalRelations     []LogicalRelation     `json:"logical_relations"`
	ConnectorSuggestions []ConnectorSuggestion `json:"connector_suggestions"`
	TextWithConnectors   string                `json:"text_with_connectors"`
	FluencyCorrections   []FluencyCorrection   `json:"fluency_corrections"`
	FinalText            string                `json:"final_text"`
}

func (r *ConnectorsResult) Normalize(req ServiceRequest) {
	r.LogicalRelations = nonNil(r.LogicalRelations)
	r.ConnectorSuggestions = nonNil(r.ConnectorSuggestions)
	r.FluencyCorrections = nonNil(r.FluencyCorrections)
	if tr, ok := req.(*TextRequest); ok {
		if r.Text == "" {
			r.Text = tr.Text
		}
		if r.Lang == "" {
			r.Lang = tr.Lang
		}
	}
}

// ToneAnalysis describes the current tone of one sentence
type ToneAnalysis struct {
	Sentence     string `json:"sentence"`
	CurrentTone  string `json:"current_tone"`
	ChangeNeeded bool   `json:"change_needed"`
	Reason       string `json:"reason"`
}

// ToneShiftSuggestion proposes a rewrite of one sentence
type ToneShiftSuggestion struct {
	Sentence      string `json:"sentence"`
	SuggestedTone string `json:"suggested_tone"`
	Suggestion    string `json:"suggestion"`
	Position      int    `json:"position"`
}

// ToneShiftImplementation is an applied rewrite and its review
type ToneShiftImplementation struct {
	OriginalSentence string `json:"original_sentence"`
	RevisedSentence  string `json:"revised_sentence"`
	FinalReview      string `json:"final_review"`
	ReviewNotes      string `json:"review_notes"`
}

// ToneShiftResult is returned by /textual-tone-shifts
type ToneShiftResult struct {
	Text                    string                    `json:"text"`
	Lang                    string                    `json:"lang"`
	TargetTone              string                    `json:"target_tone"`
	ToneAnalysis            []ToneAnalysis            `json:"tone_analysis"`
	ToneShiftSuggestions    []ToneShiftSuggestion     `json:"tone_shift_suggestions"`
	ToneShiftImplementation []ToneShiftImplementation `json:"tone_shift_implementation"`
	FinalText               string                    `json:"final_text"`
	FinalReview             string                    `json:"final_review"`
	ReviewNotes             string                    `json:"review_notes"`
	FinalCheck              string                    `json:"final_check"`
}

func (r *ToneShiftResult) Normalize(req ServiceRequest) {
	r.ToneAnalysis = nonNil(r.ToneAnalysis)
	r.ToneShiftSuggestions = nonNil(r.ToneShiftSuggestions)
	r.ToneShiftImplementation = nonNil(r.ToneShiftImplementation)
	if tr, ok := req.(*ToneShiftRequest); ok {
		if r.Text == "" {
			r.Text = tr.Text
		}
		if r.Lang == "" {
			r.Lang = tr.Lang
		}
		if r.TargetTone == "" {
			r.TargetTone = tr.TargetTone
		}
	}
}

// SentenceAnalysis compares one original sentence with its counterpart
type SentenceAnalysis struct {
	SentenceOriginal       string  `json:"sentence_original"`
	SentenceComparison     string  `json:"sentence_comparison"`
	LikelihoodOfPlagiarism float64 `json:"likelihood_of_plagiarism"`
	FlaggedForReview       bool    `json:"flagged_for_review"`
}

// PlagiarismSuggestion advises how to avoid plagiarism for a sentence pair
type PlagiarismSuggestion struct {
	SentenceOriginal   string `json:"sentence_original"`
	SentenceComparison string `json:"sentence_comparison"`
	Suggestion         string `json:"suggestion"`
}

// PlagiarismCorrection is a rewritten sentence with the reason for it
type PlagiarismCorrection struct {
	OriginalSentence    string `json:"original_sentence"`
	CorrectedSentence   string `json:"corrected_sentence"`
	ReasonForCorrection string `json:"reason_for_correction"`
}

// FinalPlagiarismCheck is the closing verdict of a plagiarism check
type FinalPlagiarismCheck struct {
	FinalText   string `json:"final_text"`
	ReviewNotes string `json:"review_notes"`
	FinalCheck  string `json:"final_check"`
}

// Plagiarism verdicts carried in PlagiarismResult.IsPlagiarized
const (
	VerdictPlagiarized = "yes"
	VerdictClean       = "no"
)

// PlagiarismResult is returned by /plagiarism-check. PlagiarismLevel is a
// percentage; likelihoods in TextAnalysis are fractions.
type PlagiarismResult struct {
	IsPlagiarized                  string                 `json:"is_plagiarized"`
	PlagiarismLevel                float64                `json:"plagiarism_level"`
	OriginalText                   string                 `json:"original_text"`
	ComparisonText                 string                 `json:"comparison_text"`
	Lang                           string                 `json:"lang"`
	TextAnalysis                   []SentenceAnalysis     `json:"text_analysis"`
	PlagiarismSuspicionSuggestions []PlagiarismSuggestion `json:"plagiarism_suspicion_suggestions"`
	PlagiarismCorrections          []PlagiarismCorrection `json:"plagiarism_corrections"`
	FinalPlagiarismCheck           *FinalPlagiarismCheck  `json:"final_plagiarism_check,omitempty"`
}

func (r *PlagiarismResult) Normalize(req ServiceRequest) {
	r.TextAnalysis = nonNil(r.TextAnalysis)
	r.PlagiarismSuspicionSuggestions = nonNil(r.PlagiarismSuspicionSuggestions)
	r.PlagiarismCorrections = nonNil(r.PlagiarismCorrections)
	if pr, ok := req.(*PlagiarismRequest); ok {
		if r.OriginalText == "" {
			r.OriginalText = pr.OriginalText
		}
		if r.ComparisonText == "" {
			r.ComparisonText = pr.ComparisonText
		}
		if r.Lang == "" {
			r.Lang = pr.Lang
		}
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
