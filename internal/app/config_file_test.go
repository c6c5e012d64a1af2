package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTemp(t, "config.yaml", `
urls:
  - https://example.com/a.md
  - https://example.com/b.md
output:
  dir: out
  enablePDF: true
llm:
  base: http://localhost:8081/v1
  model: test-model
  key: secret
max:
  outputTokens: 1024
  contentChars: 4000
language: en
fetch:
  timeout: 20s
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fc.URLs) != 2 || fc.URLs[0] != "https://example.com/a.md" {
		t.Fatalf("unexpected urls: %v", fc.URLs)
	}
	if fc.LLM.Model != "test-model" || fc.Max.OutputTokens != 1024 {
		t.Fatalf("unexpected llm/max: %+v", fc)
	}
	if !fc.Output.EnablePDF || fc.Output.Dir != "out" {
		t.Fatalf("unexpected output: %+v", fc.Output)
	}
	if fc.Fetch.Timeout != "20s" {
		t.Fatalf("unexpected timeout: %v", fc.Fetch.Timeout)
	}

	cfg := Config{FetchTimeout: 15 * time.Second}
	ApplyFileConfig(&cfg, fc)
	if cfg.FetchTimeout != 20*time.Second {
		t.Fatalf("expected parsed timeout, got %v", cfg.FetchTimeout)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTemp(t, "config.json", `{"urls":["https://example.com/x"],"llm":{"model":"m"}}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fc.URLs) != 1 || fc.LLM.Model != "m" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{LLMModel: "from-flag", MaxOutputTokens: 2000}
	var fc FileConfig
	fc.URLs = []string{"https://example.com/a"}
	fc.LLM.Model = "from-file"
	fc.Max.OutputTokens = 512

	ApplyFileConfig(&cfg, fc)

	if cfg.LLMModel != "from-flag" {
		t.Fatalf("explicit flag value should win, got %q", cfg.LLMModel)
	}
	// 2000 is the flag default, so the file may override it.
	if cfg.MaxOutputTokens != 512 {
		t.Fatalf("file should override default, got %d", cfg.MaxOutputTokens)
	}
	if len(cfg.URLs) != 1 {
		t.Fatalf("file should supply urls, got %v", cfg.URLs)
	}
}

func TestValidateConfig(t *testing.T) {
	base := func() Config {
		return Config{URLs: []string{"https://example.com/a"}, LLMModel: "m"}
	}

	cfg := base()
	if err := ValidateConfig(&cfg); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg = base()
	cfg.URLs = nil
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatalf("expected error for empty URL list")
	}

	cfg = base()
	cfg.LLMModel = " "
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatalf("expected error for missing model")
	}

	cfg = base()
	cfg.MaxContentChars = -1
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestValidateConfig_LanguageHint(t *testing.T) {
	cfg := Config{URLs: []string{"https://example.com/a"}, LLMModel: "m", LanguageHint: "FI"}
	if err := ValidateConfig(&cfg); err != nil {
		t.Fatalf("valid hint rejected: %v", err)
	}
	if cfg.LanguageHint != "fi" {
		t.Fatalf("expected canonicalized hint, got %q", cfg.LanguageHint)
	}

	cfg = Config{URLs: []string{"https://example.com/a"}, LLMModel: "m", LanguageHint: "not-a-language-tag!!"}
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatalf("expected error for invalid language hint")
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_API_KEY", "env-key")

	cfg := Config{LLMModel: "explicit"}
	ApplyEnvToConfig(&cfg)

	if cfg.LLMModel != "explicit" {
		t.Fatalf("explicit value should win over env, got %q", cfg.LLMModel)
	}
	if cfg.LLMAPIKey != "env-key" {
		t.Fatalf("env should fill unset key, got %q", cfg.LLMAPIKey)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	path := writeTemp(t, ".env", "# comment\nDOCIMPROVE_TEST_KEY=\"quoted value\"\nmalformed line\n")
	if err := LoadEnvFiles(path, "does-not-exist.env"); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("DOCIMPROVE_TEST_KEY"); got != "quoted value" {
		t.Fatalf("expected quoted value, got %q", got)
	}
	t.Cleanup(func() { _ = os.Unsetenv("DOCIMPROVE_TEST_KEY") })
}
