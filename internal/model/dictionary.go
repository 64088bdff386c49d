package model

// Dictionary is a read-only word set that remembers insertion order, so
// scans over it stay reproducible between runs.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, 0, len(words)),
		set:   make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, exists := d.set[w]; exists {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

func (d *Dictionary) Contains(word string) bool {
	_, exists := d.set[word]
	return exists
}

func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// DefaultEnglishWords is the built-in fallback used when no dictionary
// file is supplied.
func DefaultEnglishWords() []string {
	return []string{"hello", "this", "is", "a", "test", "program", "which", "silly", "as", "well", "easy"}
}
