package srv

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/box1bs/quill/internal/app/analyzer"
	"github.com/box1bs/quill/internal/app/tokenizer"
	"github.com/box1bs/quill/internal/model"
	"github.com/box1bs/quill/internal/repository"
	"github.com/box1bs/quill/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	tk, err := tokenizer.New(tokenizer.DefaultPattern, true)
	require.NoError(t, err)
	log := logger.NewLogger(io.Discard, io.Discard, 1000)
	t.Cleanup(log.Close)
	engine := analyzer.NewEngine(tk, log, analyzer.Config{})
	defaultDict := model.NewDictionary([]string{"hello", "world"})
	return NewQuillServer(engine, tk, log, nil, defaultDict)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAnalyzeHandler(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.analyzeHandler, "/analyze", AnalyzeRequest{Text: "helo world"})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, "helo", resp.Reports[0].Word)
	require.NotEmpty(t, resp.Reports[0].Suggestions)
	assert.Equal(t, "hello", resp.Reports[0].Suggestions[0].Word)
}

func TestAnalyzeHandlerMaxSuggestions(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.analyzeHandler, "/analyze", AnalyzeRequest{Text: "helo", MaxSuggestions: 1})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Reports, 1)
	assert.Len(t, resp.Reports[0].Suggestions, 1)
}

func TestAnalyzeHandlerUnknownDictionary(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.analyzeHandler, "/analyze", AnalyzeRequest{DictId: "missing", Text: "helo"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAnalyzeHandlerBadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	s.analyzeHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoadDictionaryHandler(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.loadDictionaryHandler, "/dictionary", LoadDictionaryRequest{Words: []string{"Foo", "bar", "bar"}})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp LoadDictionaryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.DictId)
	assert.Equal(t, 2, resp.WordCount)

	// loaded dictionary is case-folded and usable for analysis
	arr := postJSON(t, s.analyzeHandler, "/analyze", AnalyzeRequest{DictId: resp.DictId, Text: "foo baz"})
	require.Equal(t, http.StatusOK, arr.Code)
	var analysis AnalyzeResponse
	require.NoError(t, json.NewDecoder(arr.Body).Decode(&analysis))
	require.Len(t, analysis.Reports, 1)
	assert.Equal(t, "baz", analysis.Reports[0].Word)
}

func TestSuggestHandler(t *testing.T) {
	tk, err := tokenizer.New(tokenizer.DefaultPattern, true)
	require.NoError(t, err)
	log := logger.NewLogger(io.Discard, io.Discard, 1000)
	t.Cleanup(log.Close)
	repos, err := repository.NewDictionaryRepository(t.TempDir(), 2, log)
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })
	require.NoError(t, repos.SaveWords([]string{"hello", "world"}))

	engine := analyzer.NewEngine(tk, log, analyzer.Config{})
	s := NewQuillServer(engine, tk, log, repos, model.NewDictionary([]string{"hello", "world"}))

	req := httptest.NewRequest(http.MethodGet, "/suggest?word=helo", nil)
	rr := httptest.NewRecorder()
	s.suggestHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp SuggestResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "helo", resp.Word)
	assert.Equal(t, "hello", resp.Replacement)
}

func TestSuggestHandlerNoRepository(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/suggest?word=helo", nil)
	rr := httptest.NewRecorder()
	s.suggestHandler(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestDictionaryStatusHandler(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/status?dict_id="+DefaultDictionaryId, nil)
	rr := httptest.NewRecorder()
	s.dictionaryStatusHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp StatusResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "loaded", resp.Status)
	assert.Equal(t, 2, resp.WordCount)
}

func TestDictionaryStatusHandlerNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/status?dict_id=missing", nil)
	rr := httptest.NewRecorder()
	s.dictionaryStatusHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp StatusResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Status)
}

func TestDictionaryStatusHandlerEmptyParam(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/status", nil)
	rr := httptest.NewRecorder()
	s.dictionaryStatusHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
