package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "go-writing-services/internal/errors"
	"go-writing-services/pkg/models"
	"go-writing-services/pkg/validation"
)

func TestDefault_ServicesInOrder(t *testing.T) {
	reg := Default()

	var slugs []string
	for _, s := range reg.All() {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{SpellingCheck, WritingEnhancement, AdditionOfConnectors, TextualToneShifts, PlagiarismCheck}, slugs)
}

func TestDefault_ServicesAreComplete(t *testing.T) {
	for _, s := range Default().All() {
		t.Run(s.Slug, func(t *testing.T) {
			assert.NotEmpty(t, s.Endpoint)
			assert.NotEmpty(t, s.Heading)
			assert.NotEmpty(t, s.SubmitLabel)
			assert.NotEmpty(t, s.PendingLabel)
			assert.NotEmpty(t, s.SuccessMessage)
			assert.NotEmpty(t, s.FailureMessage)
			require.NotNil(t, s.View)

			req := s.NewRequest()
			require.NotNil(t, req)
			require.NotNil(t, s.NewResult())

			// Every field of the form must be checked by the request rules.
			errs := validation.ValidateRequest(req)
			for _, f := range s.Fields {
				assert.Contains(t, errs, f.Name, "field %s is not validated", f.Name)
			}
			assert.Len(t, errs, len(s.Fields))
		})
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	s, err := reg.Lookup(PlagiarismCheck)
	require.NoError(t, err)
	assert.Equal(t, "/plagiarism-check", s.Endpoint)
	assert.IsType(t, &models.PlagiarismRequest{}, s.NewRequest())

	_, err = reg.Lookup("grammar-check")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestNewRegistry_DuplicateReplaces(t *testing.T) {
	reg := NewRegistry(&Service{Slug: "a", Heading: "first"}, &Service{Slug: "b"}, &Service{Slug: "a", Heading: "second"})

	require.Len(t, reg.All(), 2)
	s, err := reg.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "second", s.Heading)
	assert.Equal(t, "second", reg.All()[0].Heading)
	assert.Equal(t, []string{"a", "b"}, reg.Slugs())
}

func TestLanguageOptions(t *testing.T) {
	opts := LanguageOptions()
	require.Len(t, opts, 6)
	assert.Equal(t, Option{Value: "en", Label: "English"}, opts[0])
	assert.Equal(t, Option{Value: "pt", Label: "Portuguese"}, opts[5])
}

func TestInfo(t *testing.T) {
	s, _ := Default().Lookup(TextualToneShifts)
	info := s.Info(true)

	assert.True(t, info.Mocked)
	assert.Equal(t, "Textual Tone Shifts", info.Title)
	require.Len(t, info.Fields, 3)
	assert.Equal(t, "target_tone", info.Fields[2].Name)
	assert.Equal(t, "input", info.Fields[2].Kind)
}
