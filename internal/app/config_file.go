package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flags.
type FileConfig struct {
	URLs []string `yaml:"urls" json:"urls"`

	Output struct {
		Dir       string `yaml:"dir" json:"dir"`
		EnablePDF bool   `yaml:"enablePDF" json:"enablePDF"`
	} `yaml:"output" json:"output"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Max struct {
		OutputTokens int `yaml:"outputTokens" json:"outputTokens"`
		ContentChars int `yaml:"contentChars" json:"contentChars"`
	} `yaml:"max" json:"max"`

	Language       string `yaml:"language" json:"language"`
	DetectLanguage bool   `yaml:"detectLanguage" json:"detectLanguage"`

	Fetch struct {
		// Timeout is a Go duration string, e.g. "15s".
		Timeout string `yaml:"timeout" json:"timeout"`
	} `yaml:"fetch" json:"fetch"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets the file supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const (
		maxOutputTokensDefault = 2000
		maxContentCharsDefault = 5000
		fetchTimeoutDefault    = 15 * time.Second
	)

	if len(cfg.URLs) == 0 && len(fc.URLs) > 0 {
		cfg.URLs = append([]string{}, fc.URLs...)
	}
	if cfg.OutputDir == "" && fc.Output.Dir != "" {
		cfg.OutputDir = fc.Output.Dir
	}
	if !cfg.EnablePDF && fc.Output.EnablePDF {
		cfg.EnablePDF = true
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if (cfg.MaxOutputTokens == 0 || cfg.MaxOutputTokens == maxOutputTokensDefault) && fc.Max.OutputTokens > 0 {
		cfg.MaxOutputTokens = fc.Max.OutputTokens
	}
	if (cfg.MaxContentChars == 0 || cfg.MaxContentChars == maxContentCharsDefault) && fc.Max.ContentChars > 0 {
		cfg.MaxContentChars = fc.Max.ContentChars
	}

	if cfg.LanguageHint == "" && fc.Language != "" {
		cfg.LanguageHint = fc.Language
	}
	if !cfg.DetectLanguage && fc.DetectLanguage {
		cfg.DetectLanguage = true
	}

	if cfg.FetchTimeout == 0 || cfg.FetchTimeout == fetchTimeoutDefault {
		if d, err := time.ParseDuration(strings.TrimSpace(fc.Fetch.Timeout)); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
// The language hint, when present, is canonicalized to a BCP 47 tag.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}
	if len(cfg.URLs) == 0 {
		return errors.New("config: at least one URL is required")
	}
	for _, u := range cfg.URLs {
		if strings.TrimSpace(u) == "" {
			return errors.New("config: empty URL in list")
		}
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	if cfg.MaxOutputTokens < 0 || cfg.MaxContentChars < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if hint := strings.TrimSpace(cfg.LanguageHint); hint != "" {
		tag, err := language.Parse(hint)
		if err != nil {
			return fmt.Errorf("config: invalid language hint %q: %w", hint, err)
		}
		cfg.LanguageHint = tag.String()
	}
	return nil
}
