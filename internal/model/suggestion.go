package model

// Suggestion pairs a dictionary candidate with its distance from the
// analyzed word.
type Suggestion struct {
	Word     string  `json:"word"`
	Distance int     `json:"distance"`
	Score    float64 `json:"score"`
}

// Report holds the ranked suggestions for one unknown word.
type Report struct {
	Word        string       `json:"word"`
	Suggestions []Suggestion `json:"suggestions"`
}

// AnalysisResult keeps reports in first-occurrence order of the unknown
// words. Re-running the same analysis yields an identical ordering.
type AnalysisResult []Report

func (ar AnalysisResult) Lookup(word string) ([]Suggestion, bool) {
	for _, r := range ar {
		if r.Word == word {
			return r.Suggestions, true
		}
	}
	return nil, false
}
