package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ServiceRequest is the body posted to one of the writing endpoints.
type ServiceRequest interface {
	// Normalize lower-cases the language code and NFC-normalizes text fields.
	Normalize()
	Language() string
}

// SpellingRequest is sent to /check-spelling
type SpellingRequest struct {
	Lang    string `json:"lang" form:"lang" validate:"required,langcode"`
	Content string `json:"content" form:"content" validate:"notblank"`
}

func (r *SpellingRequest) Normalize() {
	r.Lang = normalizeLang(r.Lang)
	r.Content = norm.NFC.String(r.Content)
}

func (r *SpellingRequest) Language() string { return r.Lang }

// TextRequest is shared by writing enhancement and addition of connectors
type TextRequest struct {
	Lang string `json:"lang" form:"lang" validate:"required,langcode"`
	Text string `json:"text" form:"text" validate:"notblank"`
}

func (r *TextRequest) Normalize() {
	r.Lang = normalizeLang(r.Lang)
	r.Text = norm.NFC.String(r.Text)
}

func (r *TextRequest) Language() string { return r.Lang }

// ToneShiftRequest is sent to /textual-tone-shifts
type ToneShiftRequest struct {
	Lang       string `json:"lang" form:"lang" validate:"required,langcode"`
	Text       string `json:"text" form:"text" validate:"notblank"`
	TargetTone string `json:"target_tone" form:"target_tone" validate:"notblank"`
}

func (r *ToneShiftRequest) Normalize() {
	r.Lang = normalizeLang(r.Lang)
	r.Text = norm.NFC.String(r.Text)
	r.TargetTone = strings.TrimSpace(norm.NFC.String(r.TargetTone))
}

func (r *ToneShiftRequest) Language() string { return r.Lang }

// PlagiarismRequest is sent to /plagiarism-check
type PlagiarismRequest struct {
	OriginalText   string `json:"original_text" form:"original_text" validate:"notblank"`
	ComparisonText string `json:"comparison_text" form:"comparison_text" validate:"notblank"`
	Lang           string `json:"lang" form:"lang" validate:"required,langcode"`
}

func (r *PlagiarismRequest) Normalize() {
	r.Lang = normalizeLang(r.Lang)
	r.OriginalText = norm.NFC.String(r.OriginalText)
	r.ComparisonText = norm.NFC.String(r.ComparisonText)
}

func (r *PlagiarismRequest) Language() string { return r.Lang }

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
