package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/box1bs/quill/configs"
	"github.com/box1bs/quill/internal/app/analyzer"
	"github.com/box1bs/quill/internal/app/tokenizer"
	"github.com/box1bs/quill/internal/model"
	"github.com/box1bs/quill/internal/repository"
	srv "github.com/box1bs/quill/internal/server"
	"github.com/box1bs/quill/pkg/htmltext"
	"github.com/box1bs/quill/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	var (
		configFile = flag.String("config", "configs/analyzer_config.json", "Path to configuration file")
		text       = flag.String("t", "", "Input text to be analyzed")
		textFile   = flag.String("f", "", "Input file path containing text to be analyzed")
		dictFile   = flag.String("d", "", "Input file path of dictionary to be used with analyzer. Each new word should be on new line")
		httpPort   = flag.Int("srv-port", 50051, "REST server port")
		runServer  = flag.Bool("serve", false, "Run the REST server instead of one-shot analysis")
	)
	flag.Parse()

	godotenv.Load()
	badgerPath := os.Getenv("QUILL_BADGER_PATH")
	if badgerPath == "" {
		badgerPath = "data/badger"
	}
	if p := os.Getenv("QUILL_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			*httpPort = port
		}
	}

	cfg, err := configs.UploadLocalConfiguration(*configFile)
	if err != nil {
		cfg = configs.DefaultConfiguration()
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	al := logger.NewLogger(os.Stdout, os.Stderr, 1000)
	defer al.Close()

	tk, err := tokenizer.New(cfg.TokenPattern, cfg.CaseFold)
	if err != nil {
		panic(err)
	}

	dr, err := repository.NewDictionaryRepository(badgerPath, cfg.NGramSize, al)
	if err != nil {
		panic(err)
	}
	defer dr.Close()

	engine := analyzer.NewEngine(tk, al, analyzer.Config{
		Costs:   cfg.Costs(),
		Limit:   cfg.SuggestionLimit,
		Strict:  cfg.Strict,
		Workers: cfg.WorkersCount,
	})

	dict, err := loadDictionary(*dictFile, tk, dr)
	if err != nil {
		panic(err)
	}

	if *runServer {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error)
		go func() {
			errChan <- srv.StartServer(*httpPort, engine, tk, al, dr, dict)
		}()

		select {
		case <-stop:
			log.Println("Shutting down...")
			return
		case err := <-errChan:
			log.Printf("Error: %v\n", err)
			return
		}
	}

	runCliMode(*text, *textFile, dict, engine)
}

// loadDictionary prefers an explicit word list file, then the persisted
// dictionary, then the built-in fallback.
func loadDictionary(path string, tk *tokenizer.Tokenizer, dr *repository.DictionaryRepository) (*model.Dictionary, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		words := []string{}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			words = append(words, tk.Normalize(line))
		}
		if err := dr.SaveWords(words); err != nil {
			return nil, err
		}
		return model.NewDictionary(words), nil
	}

	if words, err := dr.LoadWords(); err == nil && len(words) > 0 {
		return model.NewDictionary(words), nil
	}

	fallback := []string{}
	for _, w := range model.DefaultEnglishWords() {
		fallback = append(fallback, tk.Normalize(w))
	}
	return model.NewDictionary(fallback), nil
}

func runCliMode(text, textFile string, dict *model.Dictionary, engine *analyzer.Engine) {
	// literal text takes precedence over the file path
	if text == "" {
		if textFile == "" {
			fmt.Println("No input text, pass -t or -f")
			flag.Usage()
			os.Exit(1)
		}
		file, err := os.Open(textFile)
		if err != nil {
			fmt.Printf("Filepath is not valid: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		if strings.HasSuffix(textFile, ".html") || strings.HasSuffix(textFile, ".htm") {
			text, err = htmltext.ExtractText(file)
		} else {
			var data []byte
			data, err = io.ReadAll(file)
			text = string(data)
		}
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			os.Exit(1)
		}
	}

	Present(engine.Analyze(text, dict))
}

func Present(result model.AnalysisResult) {
	for _, report := range result {
		if len(report.Suggestions) == 0 {
			continue
		}
		words := make([]string, 0, len(report.Suggestions))
		for _, s := range report.Suggestions {
			words = append(words, s.Word)
		}
		fmt.Printf("%s => %s\n", report.Word, strings.Join(words, ","))
	}
}
