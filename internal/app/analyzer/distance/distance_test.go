package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	for _, s := range []string{"", "a", "easy", "program", "héllo", "какой-то текст"} {
		assert.Equal(t, 0, calc.Distance(s, s), "distance(%q, %q)", s, s)
	}
}

func TestDistanceEmptyStrings(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	assert.Equal(t, 0, calc.Distance("", ""))
	assert.Equal(t, 4, calc.Distance("", "easy"))
	assert.Equal(t, 4, calc.Distance("easy", ""))
}

func TestDistanceSymmetry(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	pairs := [][2]string{
		{"easy", "esay"},
		{"si", "is"},
		{"kitten", "sitting"},
		{"", "abc"},
		{"ab", "ba"},
		{"program", "progam"},
	}
	for _, p := range pairs {
		assert.Equal(t, calc.Distance(p[0], p[1]), calc.Distance(p[1], p[0]), "symmetry for %q and %q", p[0], p[1])
	}
}

func TestDistanceTransposition(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	// plain Levenshtein would give 2 here
	assert.Equal(t, 1, calc.Distance("ab", "ba"))
	assert.Equal(t, 1, calc.Distance("si", "is"))
	assert.Equal(t, 1, calc.Distance("esay", "easy"))
	assert.Equal(t, 1, calc.Distance("eays", "easy"))
}

func TestDistanceKnownValues(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"eaasy", "easy", 1},
		{"progam", "program", 1},
		{"flaw", "lawn", 2},
		// adjacent transpositions only, so this stays 3
		{"ca", "abc", 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, calc.Distance(c.a, c.b), "distance(%q, %q)", c.a, c.b)
	}
}

func TestDistanceUnicodeRunes(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	assert.Equal(t, 1, calc.Distance("héllo", "hello"))
	assert.Equal(t, 1, calc.Distance("aé", "éa"))
}

func TestDistanceCustomCosts(t *testing.T) {
	calc := NewCalculator(Costs{Insert: 1, Delete: 1, Substitute: 2, Transpose: 1})
	// substitution now costs as much as a delete plus an insert
	assert.Equal(t, 2, calc.Distance("a", "b"))
	assert.Equal(t, 1, calc.Distance("si", "is"))
	assert.Equal(t, 4, calc.Distance("", "easy"))
}

func TestDistanceMaxBound(t *testing.T) {
	costs := DefaultCosts()
	calc := NewCalculator(costs)
	pairs := [][2]string{
		{"esay", "easy"},
		{"esaay", "easy"},
		{"si", "is"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		bound := max(len(p[0]), len(p[1])) * costs.max()
		assert.LessOrEqual(t, calc.Distance(p[0], p[1]), bound)
	}
}

func TestDistanceTriangleBound(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	// substitution/insertion/deletion paths only; transpositions can
	// break the strict triangle inequality in corner cases
	triples := [][3]string{
		{"kitten", "sitten", "sitting"},
		{"abc", "abd", "abe"},
		{"", "a", "ab"},
		{"easy", "eas", "east"},
	}
	for _, tr := range triples {
		ac := calc.Distance(tr[0], tr[2])
		ab := calc.Distance(tr[0], tr[1])
		bc := calc.Distance(tr[1], tr[2])
		assert.LessOrEqual(t, ac, ab+bc, "triangle bound for %v", tr)
	}
}

func TestResemblance(t *testing.T) {
	calc := NewCalculator(DefaultCosts())
	assert.Equal(t, float64(1), calc.Resemblance("easy", "easy", 0))
	assert.Equal(t, float64(1), calc.Resemblance("", "", 0))
	assert.Equal(t, float64(0), calc.Resemblance("easy", "", 4))

	for _, p := range [][2]string{{"esay", "easy"}, {"esaay", "easy"}, {"si", "is"}} {
		dist := calc.Distance(p[0], p[1])
		score := calc.Resemblance(p[0], p[1], dist)
		assert.GreaterOrEqual(t, score, float64(0))
		assert.LessOrEqual(t, score, float64(1))
	}
}
