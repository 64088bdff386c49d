package tokenizer

import (
	"regexp"
	"strings"
)

// DefaultPattern matches maximal runs of letters and digits, so any run
// of non-alphanumeric characters acts as a separator.
const DefaultPattern = `[\p{L}\p{N}]+`

type Tokenizer struct {
	pattern  *regexp.Regexp
	caseFold bool
}

// New compiles the token boundary pattern. With caseFold every produced
// token is lower-cased; otherwise tokens keep their exact case.
func New(pattern string, caseFold bool) (*Tokenizer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{
		pattern:  re,
		caseFold: caseFold,
	}, nil
}

func (t *Tokenizer) Tokenize(text string) []string {
	raw := t.pattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok == "" {
			continue
		}
		tokens = append(tokens, t.Normalize(tok))
	}
	return tokens
}

// Normalize applies the case policy to a single word. Dictionary words
// must pass through here too, so both sides of a comparison follow the
// same policy.
func (t *Tokenizer) Normalize(word string) string {
	if t.caseFold {
		return strings.ToLower(word)
	}
	return word
}
