package app

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/docimprove/internal/analyze"
	"github.com/hyperifyio/docimprove/internal/extract"
	"github.com/hyperifyio/docimprove/internal/fetch"
	"github.com/hyperifyio/docimprove/internal/langdetect"
	"github.com/hyperifyio/docimprove/internal/llm"
	"github.com/hyperifyio/docimprove/internal/metrics"
	"github.com/hyperifyio/docimprove/internal/persist"
	"github.com/hyperifyio/docimprove/internal/readability"
)

// App owns the configured model client and drives the pipeline.
type App struct {
	cfg Config
	ai  llm.Client
}

const userAgent = "docimprove/1.0 (+https://github.com/hyperifyio/docimprove)"

func New(ctx context.Context, cfg Config) (*App, error) {
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	transportCfg.HTTPClient = newOutboundHTTPClient()
	client := openai.NewClientWithConfig(transportCfg)

	a := &App{cfg: cfg, ai: &llm.OpenAIProvider{Inner: client}}

	// Quick connectivity check by listing models. Preflight is best-effort:
	// downstream completion calls surface real errors per URL.
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if lister, ok := a.ai.(llm.ModelLister); ok {
		if models, err := lister.ListModels(ctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) == 0 {
			log.Warn().Msg("LLM returned zero models")
		} else {
			log.Info().Int("count", len(models.Models)).Msg("LLM models available")
		}
	}

	return a, nil
}

// Run processes every configured URL in order, aggregates the readability
// error metric, and persists the improved documents. A failed URL is logged
// and skipped; it contributes to no accumulator. Run itself only fails on
// wiring problems, never on per-URL errors.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.URLs) == 0 {
		return errors.New("no URLs configured")
	}

	fetcher := &fetch.Client{
		HTTPClient:        newOutboundHTTPClient(),
		UserAgent:         userAgent,
		PerRequestTimeout: a.cfg.FetchTimeout,
		RedirectMaxHops:   5,
	}
	completer := &llm.Completer{
		Client:    a.ai,
		Model:     a.cfg.LLMModel,
		MaxTokens: a.cfg.MaxOutputTokens,
	}
	analyzer := &analyze.Analyzer{
		Completer:       completer,
		MaxContentChars: a.cfg.MaxContentChars,
		LanguageHint:    a.cfg.LanguageHint,
	}
	var detector *langdetect.Detector
	if a.cfg.DetectLanguage && a.cfg.LanguageHint == "" {
		detector = &langdetect.Detector{}
	}

	originalScores := make([]float64, 0, len(a.cfg.URLs))
	improvedScores := make([]float64, 0, len(a.cfg.URLs))
	improvedDocs := make([]string, 0, len(a.cfg.URLs))

	for _, url := range a.cfg.URLs {
		res, err := processURL(ctx, fetcher, analyzer, detector, url)
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("processing failed; skipping URL")
			continue
		}
		originalScores = append(originalScores, res.originalScore)
		improvedScores = append(improvedScores, res.improvedScore)
		improvedDocs = append(improvedDocs, res.doc)
	}

	log.Info().Floats64("scores", originalScores).Msg("original readability scores")
	log.Info().Floats64("scores", improvedScores).Msg("improved readability scores")
	mse, err := metrics.MeanSquaredError(originalScores, improvedScores)
	if err != nil {
		log.Warn().Err(err).Msg("readability error metric undefined")
	} else {
		log.Info().Float64("mse", mse).Msg("mean squared error between score sequences")
	}

	saver := &persist.Saver{Dir: a.cfg.OutputDir}
	for i, doc := range improvedDocs {
		saver.Save(persist.DocumentName(i+1), doc)
		if a.cfg.EnablePDF {
			writeDocPDF(doc, saver.PathFor(persist.PDFName(i+1)))
		}
	}
	return nil
}

// urlResult carries everything a successfully processed URL contributes to
// the three accumulator sequences.
type urlResult struct {
	originalScore float64
	improvedScore float64
	doc           string
}

// sourceGetter abstracts the minimal fetch method used for tests.
type sourceGetter interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// processURL runs the per-URL portion of the pipeline and returns either a
// complete result or an error; there is no partial contribution. The
// improved score is computed over the improvement text only, not the
// composed document — a documented quirk of the scoring scheme.
func processURL(ctx context.Context, f sourceGetter, an *analyze.Analyzer, det *langdetect.Detector, url string) (urlResult, error) {
	body, contentType, err := f.Get(ctx, url)
	if err != nil {
		return urlResult{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	log.Info().Str("url", url).Msg("fetched content")

	content := string(body)
	if isHTMLContentType(contentType) {
		content = extract.FromHTML(body).Text
	}

	if det != nil {
		if lang, ok := det.Detect(content); ok {
			scoped := *an
			scoped.LanguageHint = lang
			an = &scoped
			log.Debug().Str("url", url).Str("language", lang).Msg("detected content language")
		}
	}

	originalScore := readability.Score(content)

	improvement, err := an.Improve(ctx, content)
	if err != nil {
		return urlResult{}, fmt.Errorf("improve %s: %w", url, err)
	}
	visuals, err := an.SuggestVisuals(ctx, content)
	if err != nil {
		return urlResult{}, fmt.Errorf("suggest visuals %s: %w", url, err)
	}

	return urlResult{
		originalScore: originalScore,
		improvedScore: readability.Score(improvement),
		doc:           analyze.ComposeEnhanced(improvement, visuals),
	}, nil
}

func isHTMLContentType(ct string) bool {
	mediaType := ct
	if parsed, _, err := mime.ParseMediaType(ct); err == nil {
		mediaType = parsed
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
