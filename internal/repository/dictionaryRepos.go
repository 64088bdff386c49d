package repository

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/box1bs/quill/pkg/logger"
	"github.com/dgraph-io/badger/v3"
)

const WordKeyFormat = "word:%s"

type DictionaryRepository struct {
	DB          *badger.DB
	log         *logger.Logger
	mu          *sync.Mutex
	ngramBuffer map[string][]string
	counts      map[string]int
	ngramSize   int
}

func NewDictionaryRepository(path string, ngramSize int, log *logger.Logger) (*DictionaryRepository, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, err
	}
	return &DictionaryRepository{
		DB:          db,
		log:         log,
		mu:          new(sync.Mutex),
		ngramBuffer: make(map[string][]string),
		counts:      make(map[string]int),
		ngramSize:   ngramSize,
	}, nil
}

// SaveWords persists the word list and refreshes the n-gram candidate
// index. The insertion index is stored as the value so LoadWords can
// restore the original order. A save replaces whatever a previous save
// persisted, this is a whole-list load, not a merge.
func (dr *DictionaryRepository) SaveWords(words []string) error {
	if err := dr.DB.DropPrefix([]byte("word:"), []byte("ng:")); err != nil {
		return err
	}
	dr.mu.Lock()
	dr.ngramBuffer = make(map[string][]string)
	dr.counts = make(map[string]int)
	dr.mu.Unlock()

	wb := dr.DB.NewWriteBatch()
	defer wb.Cancel()

	const maxWordsInTXN = 1000
	itNum := 0

	for i, word := range words {
		if word == "" {
			continue
		}
		key := fmt.Appendf(nil, WordKeyFormat, word)
		if err := wb.Set(key, fmt.Append(nil, i)); err != nil {
			return err
		}
		itNum++

		if itNum >= maxWordsInTXN {
			if err := wb.Flush(); err != nil {
				return err
			}
			itNum = 0
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}

	if err := dr.IndexNGrams(words); err != nil {
		dr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.CRITICAL_ERROR, "error indexing ngrams: %v", err))
		return err
	}
	return dr.FlushAll()
}

func (dr *DictionaryRepository) LoadWords() ([]string, error) {
	type indexedWord struct {
		word string
		idx  int
	}
	loaded := []indexedWord{}

	prefix := []byte("word:")
	if err := dr.DB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			word := string(item.Key()[len(prefix):])
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(string(val))
			if err != nil {
				return err
			}
			loaded = append(loaded, indexedWord{word: word, idx: idx})
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].idx < loaded[j].idx
	})
	words := make([]string, 0, len(loaded))
	for _, iw := range loaded {
		words = append(words, iw.word)
	}
	return words, nil
}

func (dr *DictionaryRepository) Contains(word string) (bool, error) {
	err := dr.DB.View(func(txn *badger.Txn) error {
		_, err := txn.Get(fmt.Appendf(nil, WordKeyFormat, word))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (dr *DictionaryRepository) Close() error {
	if err := dr.FlushAll(); err != nil {
		dr.DB.Close()
		return err
	}
	return dr.DB.Close()
}
