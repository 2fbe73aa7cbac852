// Package textdiff measures how far a rewritten text moved from its source.
package textdiff

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arbovm/levenshtein"
	"github.com/codycollier/wer"
	"golang.org/x/text/unicode/norm"
)

// Both measures are quadratic in the input, so texts past these sizes are
// not compared.
const (
	MaxRunes = 5000
	MaxWords = 2000
)

// ErrTooLarge is returned by Compare when a text exceeds MaxRunes or MaxWords.
var ErrTooLarge = errors.New("text too large to compare")

// Stats describes the change between two texts.
type Stats struct {
	// EditDistance is the character level Levenshtein distance.
	EditDistance int
	// WordErrorRate is the word level error rate of after against before,
	// 0 when before has no words.
	WordErrorRate float64
	WordsBefore   int
	WordsAfter    int
}

// Changed reports whether the texts differ at all.
func (s Stats) Changed() bool {
	return s.EditDistance > 0
}

// Compare computes Stats. Both inputs are NFC-normalized first so that
// composed and decomposed accents compare equal.
func Compare(before, after string) (Stats, error) {
	if utf8.RuneCountInString(before) > MaxRunes || utf8.RuneCountInString(after) > MaxRunes {
		return Stats{}, ErrTooLarge
	}

	before = norm.NFC.String(before)
	after = norm.NFC.String(after)

	ref := Words(before)
	cand := Words(after)
	if len(ref) > MaxWords || len(cand) > MaxWords {
		return Stats{}, ErrTooLarge
	}

	stats := Stats{
		EditDistance: levenshtein.Distance(before, after),
		WordsBefore:  len(ref),
		WordsAfter:   len(cand),
	}
	if len(ref) > 0 {
		rate, _ := wer.WER(ref, cand)
		stats.WordErrorRate = rate
	}
	return stats, nil
}

// Words splits text into lower-cased words with surrounding punctuation
// removed.
func Words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if w != "" {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}
