package textdiff

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-writing-services/pkg/models"
)

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"hola", "qué", "tal"}, Words("¡Hola!  ¿Qué tal?"))
	assert.Empty(t, Words("  ... "))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		after    string
		distance int
		changed  bool
	}{
		{"identical", "This is a test.", "This is a test.", 0, false},
		{"two typos", "Ths is a tst.", "This is a test.", 2, true},
		{"composed vs decomposed", "Caf\u00e9", "Cafe\u0301", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compare(tt.before, tt.after)
			require.NoError(t, err)
			assert.Equal(t, tt.distance, s.EditDistance)
			assert.Equal(t, tt.changed, s.Changed())
		})
	}
}

func TestCompare_WordCounts(t *testing.T) {
	s, err := Compare("the cat sat", "the cat sat down")
	require.NoError(t, err)
	assert.Equal(t, 3, s.WordsBefore)
	assert.Equal(t, 4, s.WordsAfter)
	assert.Greater(t, s.WordErrorRate, 0.0)
}

func TestCompare_EmptyBefore(t *testing.T) {
	s, err := Compare("", "new text")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.WordErrorRate)
	assert.Equal(t, 8, s.EditDistance)
}

func TestSummarize(t *testing.T) {
	change := Summarize(&models.ConnectorsResult{Text: "A. B.", FinalText: "A. Además, B."})
	if assert.NotNil(t, change) {
		assert.Equal(t, 2, change.WordsBefore)
		assert.Equal(t, 3, change.WordsAfter)
		assert.Greater(t, change.EditDistance, 0)
	}

	assert.Nil(t, Summarize(&models.SpellingResult{Result: "x"}))
	assert.Nil(t, Summarize(&models.ToneShiftResult{Text: "x"}))
	assert.Nil(t, Summarize(nil))
}

func TestCompare_RejectsLargeTexts(t *testing.T) {
	small := "word"
	tests := []struct {
		name          string
		before, after string
	}{
		{"long before", strings.Repeat("a", MaxRunes+1), small},
		{"long after", small, strings.Repeat("a", MaxRunes+1)},
		{"many words", strings.Repeat("a ", MaxWords+1), small},
		{"100 KB echo", strings.Repeat("word ", 20000), strings.Repeat("wurd ", 20000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := Compare(tt.before, tt.after)
			assert.ErrorIs(t, err, ErrTooLarge)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestCompare_AtLimit(t *testing.T) {
	text := strings.Repeat("a", MaxRunes)
	s, err := Compare(text, text)
	require.NoError(t, err)
	assert.False(t, s.Changed())
}

func TestSummarize_SkipsLargeTexts(t *testing.T) {
	big := strings.Repeat("word ", 20000)
	start := time.Now()
	assert.Nil(t, Summarize(&models.EnhancementResult{Text: big, CorrectedStyleText: strings.ToUpper(big)}))
	assert.Less(t, time.Since(start), time.Second)
}
