package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/numvision/ocr-number-gate/agent"
	"github.com/numvision/ocr-number-gate/internal/ai"
	"github.com/numvision/ocr-number-gate/internal/logging"
	"github.com/numvision/ocr-number-gate/internal/models"
	"github.com/numvision/ocr-number-gate/internal/ocr"
	"github.com/numvision/ocr-number-gate/internal/recognizer"
)

// Exit codes, so scripts can branch on the gate's verdict.
const (
	exitDetected    = 0
	exitNoDetection = 1
	exitUsage       = 2
)

func main() {
	var (
		configPath  = flag.String("config", "", "config file path (default $NUMGATE_CONFIG, then config.yaml)")
		imagePath   = flag.String("image", "", "image file to analyze (required)")
		recognition = flag.String("recognition", "", "recognition to run (default from config)")
		params      = flag.String("params", "", "recognition params as a JSON object (default from config)")
		task        = flag.String("task", "cli", "task name shown in logs")
	)
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintf(os.Stderr, "usage: numgate -image <file> [-recognition %s] [-params '{...}'] [-config <file>]\n",
			strings.Join(agent.Names(), "|"))
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		logging.Warnf("no .env file loaded: %v", err)
	}

	// Load configuration
	path := *configPath
	if path == "" {
		path = os.Getenv("NUMGATE_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}
	config, err := loadConfig(path)
	if err != nil {
		logging.Errorf("load config: %v", err)
		os.Exit(exitUsage)
	}
	logging.SetLevel(config.Log.Level)

	// Build the recognizer registry
	registry, err := buildRegistry(config)
	if err != nil {
		logging.Errorf("build recognizers: %v", err)
		os.Exit(exitUsage)
	}
	logging.Infof("recognizers ready: %s", strings.Join(registry.Names(), ", "))

	name := *recognition
	if name == "" {
		name = config.Gate.Recognition
	}
	if name == "" {
		name = agent.NameGreaterThanZero
	}
	payload := *params
	if payload == "" {
		payload = config.Gate.Params
	}

	rec, err := agent.New(name, ocr.NewRunner(registry))
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(exitUsage)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		logging.Errorf("read image: %v", err)
		os.Exit(exitUsage)
	}

	// Run the recognition once; the verdict is the exit status
	res, ok := rec.Analyze(context.Background(), agent.AnalyzeArg{
		TaskName:        *task,
		RecognitionName: name,
		Image:           image,
		Params:          json.RawMessage(payload),
	})
	if !ok {
		os.Exit(exitNoDetection)
	}
	fmt.Println(res.Detail)
	os.Exit(exitDetected)
}

// defaultConfig covers the no-config-file case: one local Tesseract
// recognizer under the name analyses fall back to, running the report-only
// recognition, which works without parameters.
func defaultConfig() *models.Config {
	return &models.Config{
		Log: models.LogConfig{Level: logging.LevelInfo},
		Recognizers: map[string]models.RecognizerConfig{
			recognizer.DefaultRecognizerName: {Engine: "tesseract"},
		},
		Gate: models.GateConfig{Recognition: agent.NameGreaterThanZero},
	}
}

func loadConfig(path string) (*models.Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logging.Infof("config %s not found, using built-in defaults", path)
	} else if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables if present
	if level := os.Getenv("NUMGATE_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		fillAPIKeys(config, "openai", apiKey)
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		fillAPIKeys(config, "gemini", apiKey)
	}

	return config, nil
}

// fillAPIKeys hands the environment's key to every recognizer of the given
// engine kind that does not set its own.
func fillAPIKeys(config *models.Config, engine, apiKey string) {
	for name, rc := range config.Recognizers {
		if rc.Engine == engine && rc.APIKey == "" {
			rc.APIKey = apiKey
			config.Recognizers[name] = rc
		}
	}
}

func buildRegistry(config *models.Config) (*ocr.Registry, error) {
	registry := ocr.NewRegistry()
	for name, rc := range config.Recognizers {
		engine, err := newEngine(rc)
		if err != nil {
			return nil, fmt.Errorf("recognizer %q: %w", name, err)
		}
		if err := registry.Register(name, engine); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// newEngine builds the OCR engine a recognizer entry selects. An empty engine
// field means local Tesseract.
func newEngine(rc models.RecognizerConfig) (ocr.Engine, error) {
	switch rc.Engine {
	case "", "tesseract":
		return &ocr.TesseractEngine{Language: rc.Language, Whitelist: rc.Whitelist}, nil
	case "openai":
		return ai.NewOpenAIEngine(rc.APIKey, rc.Model, rc.BaseURL)
	case "gemini":
		return ai.NewGeminiEngine(rc.APIKey, rc.Model)
	default:
		return nil, fmt.Errorf("unknown engine %q (have: tesseract, openai, gemini)", rc.Engine)
	}
}
