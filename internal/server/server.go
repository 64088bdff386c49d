package srv

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/box1bs/quill/internal/app/analyzer"
	"github.com/box1bs/quill/internal/metrics"
	"github.com/box1bs/quill/internal/model"
	"github.com/box1bs/quill/internal/server/validation"
	"github.com/box1bs/quill/pkg/logger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultDictionaryId addresses the dictionary loaded at startup, so
// clients can analyze without uploading one first.
const DefaultDictionaryId = "default"

type server struct {
	dictsMutex    sync.RWMutex
	dicts         map[string]*dictInfo
	engine        *analyzer.Engine
	tokenizer     model.Tokenizer
	logger        *logger.Logger
	repos         model.Repository
	textValidator *validation.TextValidator
	dictValidator *validation.DictionaryValidator
}

type dictInfo struct {
	id       string
	dict     *model.Dictionary
	loadedAt time.Time
}

func NewQuillServer(engine *analyzer.Engine, tk model.Tokenizer, logger *logger.Logger, repos model.Repository, defaultDict *model.Dictionary) *server {
	s := &server{
		dicts:         make(map[string]*dictInfo),
		engine:        engine,
		tokenizer:     tk,
		logger:        logger,
		repos:         repos,
		textValidator: validation.NewTextValidator(),
		dictValidator: validation.NewDictionaryValidator(),
	}
	if defaultDict != nil {
		s.dicts[DefaultDictionaryId] = &dictInfo{
			id:       DefaultDictionaryId,
			dict:     defaultDict,
			loadedAt: time.Now(),
		}
	}
	return s
}

type LoadDictionaryRequest struct {
	Words   []string `json:"words"`
	Persist bool     `json:"persist"`
}

type LoadDictionaryResponse struct {
	DictId    string `json:"dict_id"`
	WordCount int    `json:"word_count"`
}

type AnalyzeRequest struct {
	DictId         string `json:"dict_id"`
	Text           string `json:"text"`
	MaxSuggestions int    `json:"max_suggestions"`
}

type AnalyzeResponse struct {
	Reports model.AnalysisResult `json:"reports"`
}

type StatusResponse struct {
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
}

func (s *server) writeResponse(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (s *server) loadDictionaryHandler(w http.ResponseWriter, r *http.Request) {
	var req LoadDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.dictValidator.ValidateWords(req.Words); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	normalized := make([]string, 0, len(req.Words))
	for _, word := range req.Words {
		normalized = append(normalized, s.tokenizer.Normalize(word))
	}
	dict := model.NewDictionary(normalized)

	dictID := uuid.New().String()
	s.dictsMutex.Lock()
	s.dicts[dictID] = &dictInfo{
		id:       dictID,
		dict:     dict,
		loadedAt: time.Now(),
	}
	s.dictsMutex.Unlock()

	if req.Persist && s.repos != nil {
		if err := s.repos.SaveWords(dict.Words()); err != nil {
			s.logger.Write(logger.NewMessage(logger.SERVER_LAYER, logger.ERROR, "error persisting dictionary %s: %v", dictID, err))
		}
	}

	metrics.SetDictionaryWords("uploaded", dict.Len())
	s.logger.Write(logger.NewMessage(logger.SERVER_LAYER, logger.INFO, "dictionary %s loaded with %d words", dictID, dict.Len()))
	s.writeResponse(w, LoadDictionaryResponse{DictId: dictID, WordCount: dict.Len()})
}

func (s *server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.textValidator.ValidateText(req.Text); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dictID := req.DictId
	if dictID == "" {
		dictID = DefaultDictionaryId
	}
	s.dictsMutex.RLock()
	info, exists := s.dicts[dictID]
	s.dictsMutex.RUnlock()
	if !exists {
		http.Error(w, "Dictionary isn't loaded", http.StatusNotFound)
		return
	}

	start := time.Now()
	reports := s.engine.Analyze(req.Text, info.dict)
	if req.MaxSuggestions > 0 {
		for i := range reports {
			if len(reports[i].Suggestions) > req.MaxSuggestions {
				reports[i].Suggestions = reports[i].Suggestions[:req.MaxSuggestions]
			}
		}
	}

	metrics.IncAnalyses()
	metrics.AddWordsFlagged(len(reports))
	metrics.ObserveAnalyzeDuration(time.Since(start))

	s.writeResponse(w, AnalyzeResponse{Reports: reports})
}

type SuggestResponse struct {
	Word        string `json:"word"`
	Replacement string `json:"replacement"`
}

// suggestHandler serves single-word lookups against the persisted
// dictionary, narrowed by the n-gram candidate index.
func (s *server) suggestHandler(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		http.Error(w, "Empty param word", http.StatusBadRequest)
		return
	}
	if s.repos == nil {
		http.Error(w, "Repository isn't configured", http.StatusServiceUnavailable)
		return
	}

	replacement, err := s.engine.BestReplacement(s.tokenizer.Normalize(word), s.repos)
	if err != nil {
		s.logger.Write(logger.NewMessage(logger.SERVER_LAYER, logger.ERROR, "error suggesting replacement for '%s': %v", word, err))
		http.Error(w, "Failed to suggest replacement", http.StatusInternalServerError)
		return
	}
	s.writeResponse(w, SuggestResponse{Word: word, Replacement: replacement})
}

func (s *server) dictionaryStatusHandler(w http.ResponseWriter, r *http.Request) {
	dictID := r.URL.Query().Get("dict_id")
	if dictID == "" {
		http.Error(w, "Empty param dict_id", http.StatusBadRequest)
		return
	}
	s.dictsMutex.RLock()
	info, exists := s.dicts[dictID]
	s.dictsMutex.RUnlock()
	if !exists {
		s.writeResponse(w, StatusResponse{Status: "not_found"})
		return
	}
	s.writeResponse(w, StatusResponse{Status: "loaded", WordCount: info.dict.Len()})
}

func StartServer(port int, engine *analyzer.Engine, tk model.Tokenizer, logger *logger.Logger, repos model.Repository, defaultDict *model.Dictionary) error {
	s := NewQuillServer(engine, tk, logger, repos, defaultDict)
	metrics.Register()
	if defaultDict != nil {
		metrics.SetDictionaryWords(DefaultDictionaryId, defaultDict.Len())
	}

	http.HandleFunc("POST /dictionary", s.loadDictionaryHandler)
	http.HandleFunc("POST /analyze", s.analyzeHandler)
	http.HandleFunc("GET /dictionary/status", s.dictionaryStatusHandler)
	http.HandleFunc("GET /suggest", s.suggestHandler)
	http.Handle("GET /metrics", promhttp.Handler())
	http.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("REST API started at %d\n", port)
	return http.ListenAndServe(addr, nil)
}
