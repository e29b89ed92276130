package sliperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ExtractionError{Filename: "slip.jpg", Err: cause}

	assert.Contains(t, err.Error(), "slip.jpg")
	assert.ErrorIs(t, err, cause)
}

func TestReplyParseError(t *testing.T) {
	cause := errors.New("invalid character 'I'")
	err := &ReplyParseError{Filename: "slip.jpg", Snippet: "I cannot read this", Err: cause}

	assert.Contains(t, err.Error(), "slip.jpg")
	assert.Contains(t, err.Error(), "I cannot read this")
	assert.ErrorIs(t, err, cause)

	noSnippet := &ReplyParseError{Filename: "slip.jpg", Err: cause}
	assert.NotContains(t, noSnippet.Error(), "snippet")
}

func TestReplyParseErrorMatchesWithErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("processing image: %w",
		&ReplyParseError{Filename: "slip.jpg", Err: errors.New("bad json")})

	var parseErr *ReplyParseError
	require.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "slip.jpg", parseErr.Filename)
}

func TestMissingCredentialError(t *testing.T) {
	err := &MissingCredentialError{Variable: "GEMINI_API_KEY"}
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
