package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/box1bs/quill/pkg/logger"
	"github.com/dgraph-io/badger/v3"
)

const chunkSize = 100

// IndexNGrams buffers dictionary words under each of their character
// n-grams, flushing a chunk to badger whenever it fills up.
func (dr *DictionaryRepository) IndexNGrams(words []string) error {
	for _, word := range words {
		for _, ng := range dr.extractNGrams(word, dr.ngramSize) {
			buf := dr.ngramBuffer[ng]
			buf = append(buf, word)
			if len(buf) >= chunkSize {
				if err := dr.flushChunk(ng, buf); err != nil {
					return err
				}
				buf = buf[:0]
			}
			dr.ngramBuffer[ng] = buf
		}
	}
	return nil
}

// CandidatesByNGram returns every indexed word sharing at least one
// n-gram with the given word, deduplicated.
func (dr *DictionaryRepository) CandidatesByNGram(word string, n int) ([]string, error) {
	if n <= 0 {
		n = dr.ngramSize
	}
	result := []string{}
	alreadyInc := map[string]struct{}{}

	for _, ngram := range dr.extractNGrams(word, n) {
		prefix := []byte("ng:" + ngram + ":")
		if err := dr.DB.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				val, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				var words []string
				if err := json.Unmarshal(val, &words); err != nil {
					return err
				}
				for _, w := range words {
					if _, ex := alreadyInc[w]; ex {
						continue
					}
					alreadyInc[w] = struct{}{}
					result = append(result, w)
				}
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (dr *DictionaryRepository) extractNGrams(word string, n int) []string {
	runes := []rune(strings.ToLower(word))
	out := []string{}
	alIn := map[string]struct{}{}
	if len(runes) < n {
		return nil
	}
	for i := 0; i <= len(runes)-n; i++ {
		ng := string(runes[i : i+n])
		if _, ex := alIn[ng]; ex {
			continue
		}
		alIn[ng] = struct{}{}
		out = append(out, ng)
	}
	return out
}

func (dr *DictionaryRepository) flushChunk(ng string, buffer []string) error {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	dr.counts[ng]++
	chunkID := dr.counts[ng]

	key := fmt.Appendf(nil, "ng:%s:%04d", ng, chunkID)
	val, _ := json.Marshal(buffer)

	if err := dr.DB.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	}); err != nil {
		dr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.CRITICAL_ERROR, "error flushing chunk %s, with error %v", ng, err))
		return err
	}
	return nil
}

// FlushAll writes out every partially filled chunk. The buffer is reset
// either way, the first write error is reported to the caller.
func (dr *DictionaryRepository) FlushAll() error {
	var firstErr error
	for ng, buf := range dr.ngramBuffer {
		if len(buf) == 0 {
			continue
		}
		if err := dr.flushChunk(ng, buf); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	dr.ngramBuffer = make(map[string][]string)
	return firstErr
}
