package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateText(t *testing.T) {
	tv := NewTextValidator()
	tv.MaxTextLength = 10

	assert.NoError(t, tv.ValidateText(""))
	assert.NoError(t, tv.ValidateText("short"))
	assert.ErrorIs(t, tv.ValidateText(strings.Repeat("a", 11)), ErrTextTooLong)
}

func TestValidateWords(t *testing.T) {
	dv := NewDictionaryValidator()
	dv.MaxWords = 2
	dv.MaxWordLength = 5

	assert.NoError(t, dv.ValidateWords(nil))
	assert.NoError(t, dv.ValidateWords([]string{"a", "b"}))
	assert.ErrorIs(t, dv.ValidateWords([]string{"a", "b", "c"}), ErrTooManyWords)
	assert.ErrorIs(t, dv.ValidateWords([]string{"toolong"}), ErrWordTooLong)
}
