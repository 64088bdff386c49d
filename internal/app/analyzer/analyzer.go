package analyzer

import (
	"sort"

	"github.com/box1bs/quill/internal/app/analyzer/distance"
	"github.com/box1bs/quill/internal/model"
	"github.com/box1bs/quill/pkg/logger"
	"github.com/box1bs/quill/pkg/workerPool"
)

// ResemblanceThreshold is the default cut-off for strict mode. Words
// scoring below it are dropped from the suggestions.
const ResemblanceThreshold = 0.4

// minEntriesForPool keeps small dictionaries on the calling goroutine.
const minEntriesForPool = 256

type Config struct {
	Costs     distance.Costs
	Limit     int     // 0 keeps the full sorted sequence
	Strict    bool    // drop suggestions scoring below Threshold
	Threshold float64 // 0 falls back to ResemblanceThreshold
	Workers   int     // <= 1 scans the dictionary on the calling goroutine
}

type Engine struct {
	calc      *distance.Calculator
	tokenizer model.Tokenizer
	log       *logger.Logger
	limit     int
	strict    bool
	threshold float64
	workers   int
}

func NewEngine(tk model.Tokenizer, log *logger.Logger, cfg Config) *Engine {
	if cfg.Costs == (distance.Costs{}) {
		cfg.Costs = distance.DefaultCosts()
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = ResemblanceThreshold
	}
	return &Engine{
		calc:      distance.NewCalculator(cfg.Costs),
		tokenizer: tk,
		log:       log,
		limit:     cfg.Limit,
		strict:    cfg.Strict,
		threshold: cfg.Threshold,
		workers:   cfg.Workers,
	}
}

// Analyze tokenizes text and reports every word missing from the
// dictionary together with its ranked suggestions.
func (e *Engine) Analyze(text string, dict *model.Dictionary) model.AnalysisResult {
	return e.AnalyzeWords(e.tokenizer.Tokenize(text), dict)
}

// AnalyzeWords works on an already-tokenized sequence. Duplicate words
// are reported once, in first-occurrence order. An empty dictionary is
// valid and yields empty suggestion lists.
func (e *Engine) AnalyzeWords(words []string, dict *model.Dictionary) model.AnalysisResult {
	var pool *workerPool.WorkerPool
	if e.workers > 1 && dict.Len() >= minEntriesForPool {
		pool = workerPool.NewWorkerPool(e.workers, e.workers*4)
		defer pool.Stop()
	}

	result := model.AnalysisResult{}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		if dict.Contains(word) {
			continue
		}
		e.log.Write(logger.NewMessage(logger.ANALYZER_LAYER, logger.DEBUG, "word '%s' not in dictionary, scanning %d entries", word, dict.Len()))
		result = append(result, model.Report{
			Word:        word,
			Suggestions: e.scan(word, dict.Words(), pool),
		})
	}
	return result
}

// Suggest ranks every entry against a single word.
func (e *Engine) Suggest(word string, entries []string) []model.Suggestion {
	return e.scan(word, entries, nil)
}

// BestReplacement returns the closest dictionary word sharing at least
// one n-gram with the given word, scanning only the repository's
// candidate set instead of the whole dictionary. An empty string means
// no candidate was found.
func (e *Engine) BestReplacement(word string, repos model.Repository) (string, error) {
	conds, err := repos.CandidatesByNGram(word, 0)
	if err != nil {
		return "", err
	}
	sugs := e.scan(word, conds, nil)
	if len(sugs) == 0 {
		return "", nil
	}
	e.log.Write(logger.NewMessage(logger.ANALYZER_LAYER, logger.DEBUG, "word '%s' replaced with '%s'", word, sugs[0].Word))
	return sugs[0].Word, nil
}

func (e *Engine) scan(word string, entries []string, pool *workerPool.WorkerPool) []model.Suggestion {
	sugs := make([]model.Suggestion, len(entries))
	if pool == nil {
		for i, entry := range entries {
			sugs[i] = e.score(word, entry)
		}
	} else {
		// chunks write to disjoint ranges, the sort below restores a
		// deterministic order independent of completion order
		chunk := (len(entries) + e.workers - 1) / e.workers
		for start := 0; start < len(entries); start += chunk {
			start := start
			end := min(start+chunk, len(entries))
			pool.Submit(func() {
				for i := start; i < end; i++ {
					sugs[i] = e.score(word, entries[i])
				}
			})
		}
		pool.Wait()
	}

	sort.Slice(sugs, func(i, j int) bool {
		if sugs[i].Distance != sugs[j].Distance {
			return sugs[i].Distance < sugs[j].Distance
		}
		return sugs[i].Word < sugs[j].Word
	})

	if e.strict {
		kept := sugs[:0]
		for _, s := range sugs {
			if s.Score >= e.threshold {
				kept = append(kept, s)
			}
		}
		sugs = kept
	}
	if e.limit > 0 && len(sugs) > e.limit {
		sugs = sugs[:e.limit]
	}
	return sugs
}

func (e *Engine) score(word, entry string) model.Suggestion {
	dist := e.calc.Distance(word, entry)
	return model.Suggestion{
		Word:     entry,
		Distance: dist,
		Score:    e.calc.Resemblance(word, entry, dist),
	}
}
