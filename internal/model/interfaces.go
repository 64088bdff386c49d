package model

// Tokenizer defines the minimal interface required by the suggestion
// engine.
type Tokenizer interface {
	Tokenize(string) []string
	Normalize(string) string
}

type Repository interface {
	SaveWords([]string) error
	LoadWords() ([]string, error)
	Contains(string) (bool, error)
	CandidatesByNGram(string, int) ([]string, error)
	Close() error
}
