package configs

import (
	"encoding/json"
	"os"

	"github.com/box1bs/quill/internal/app/analyzer/distance"
	"github.com/box1bs/quill/internal/app/tokenizer"
)

type ConfigData struct {
	TokenPattern    string `json:"token_pattern" validate:"required"`
	CaseFold        bool   `json:"case_fold"`
	InsertCost      int    `json:"insert_cost" validate:"min=1,max=10"`
	DeleteCost      int    `json:"delete_cost" validate:"min=1,max=10"`
	SubstituteCost  int    `json:"substitute_cost" validate:"min=1,max=10"`
	TransposeCost   int    `json:"transpose_cost" validate:"min=1,max=10"`
	SuggestionLimit int    `json:"suggestion_limit" validate:"max=1000"`
	Strict          bool   `json:"strict"`
	WorkersCount    int    `json:"worker_count" validate:"min=1,max=256"`
	NGramSize       int    `json:"ngram_size" validate:"min=2,max=5"`
}

func DefaultConfiguration() *ConfigData {
	return &ConfigData{
		TokenPattern:    tokenizer.DefaultPattern,
		CaseFold:        false,
		InsertCost:      1,
		DeleteCost:      1,
		SubstituteCost:  1,
		TransposeCost:   1,
		SuggestionLimit: 0,
		Strict:          false,
		WorkersCount:    1,
		NGramSize:       2,
	}
}

func (cfg *ConfigData) Costs() distance.Costs {
	return distance.Costs{
		Insert:     cfg.InsertCost,
		Delete:     cfg.DeleteCost,
		Substitute: cfg.SubstituteCost,
		Transpose:  cfg.TransposeCost,
	}
}

func (cfg *ConfigData) Validate() error {
	return New("validate").Validate(*cfg)
}

func UploadLocalConfiguration(fileName string) (*ConfigData, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg ConfigData
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, err
}
