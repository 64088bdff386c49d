package validation

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrTextTooLong  = errors.New("text exceeds maximum length")
	ErrTooManyWords = errors.New("dictionary exceeds maximum word count")
	ErrWordTooLong  = errors.New("dictionary word exceeds maximum length")
)

// TextValidator caps how much text a single analyze request may carry.
// An empty text is valid and yields an empty result.
type TextValidator struct {
	MaxTextLength int
}

func NewTextValidator() *TextValidator {
	return &TextValidator{
		MaxTextLength: 1 << 20,
	}
}

func (tv *TextValidator) ValidateText(text string) error {
	if utf8.RuneCountInString(text) > tv.MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

type DictionaryValidator struct {
	MaxWords      int
	MaxWordLength int
}

func NewDictionaryValidator() *DictionaryValidator {
	return &DictionaryValidator{
		MaxWords:      200000,
		MaxWordLength: 64,
	}
}

func (dv *DictionaryValidator) ValidateWords(words []string) error {
	if len(words) > dv.MaxWords {
		return ErrTooManyWords
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) > dv.MaxWordLength {
			return ErrWordTooLong
		}
	}
	return nil
}
