package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/docimprove/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load a local dotenv first so env-backed flag defaults see it.
	_ = app.LoadEnvFiles(".env")

	var (
		urlList         string
		configPath      string
		outputDir       string
		llmBaseURL      string
		llmModel        string
		llmKey          string
		maxTokens       int
		maxContentChars int
		languageHint    string
		detectLanguage  bool
		fetchTimeout    time.Duration
		enablePDF       bool
		verbose         bool
	)

	flag.StringVar(&urlList, "urls", "", "Comma-separated list of documentation URLs to process")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&outputDir, "out.dir", os.Getenv("OUTPUT_DIR"), "Directory for improved documents (must exist)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.IntVar(&maxTokens, "max.tokens", 2000, "Maximum output tokens per model completion")
	flag.IntVar(&maxContentChars, "max.contentChars", 5000, "Maximum characters of content embedded in a prompt")
	flag.StringVar(&languageHint, "lang", os.Getenv("LANGUAGE"), "Optional language hint, e.g. 'en' or 'fi'")
	flag.BoolVar(&detectLanguage, "detect.lang", false, "Detect content language per document when no hint is set")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 15*time.Second, "Per-request timeout for document fetches")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render each improved document to PDF")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		OutputDir:       outputDir,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		MaxOutputTokens: maxTokens,
		MaxContentChars: maxContentChars,
		LanguageHint:    languageHint,
		DetectLanguage:  detectLanguage,
		FetchTimeout:    fetchTimeout,
		EnablePDF:       enablePDF,
		Verbose:         verbose,
	}
	if s := strings.TrimSpace(urlList); s != "" {
		for _, p := range strings.Split(s, ",") {
			if u := strings.TrimSpace(p); u != "" {
				cfg.URLs = append(cfg.URLs, u)
			}
		}
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("failed to load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if err := app.ValidateConfig(&cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
