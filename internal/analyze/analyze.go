package analyze

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// DefaultMaxContentChars caps how much document content is embedded in a
// prompt when no limit is configured.
const DefaultMaxContentChars = 5000

// Completer is the single prompt-completion capability the analyzers need.
// *llm.Completer satisfies it; tests inject fakes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Analyzer builds the documentation-improvement and visual-suggestion
// prompts and delegates them to the model. Model output is returned raw,
// without validation or post-processing.
type Analyzer struct {
	Completer       Completer
	MaxContentChars int
	// LanguageHint, when non-empty, asks the model to respond in that
	// language. It applies to both prompts.
	LanguageHint string
}

// Improve asks the model for clarity, structure, and example improvements to
// the given documentation content.
func (a *Analyzer) Improve(ctx context.Context, content string) (string, error) {
	prompt := a.buildPrompt(
		"Analyze the following documentation and suggest improvements:",
		content,
		"Provide recommendations for improved clarity, structure, and examples.",
	)
	return a.Completer.Complete(ctx, prompt)
}

// SuggestVisuals asks the model for diagram, chart, or other visual
// suggestions based on the given documentation content.
func (a *Analyzer) SuggestVisuals(ctx context.Context, content string) (string, error) {
	prompt := a.buildPrompt(
		"Based on the following documentation, suggest diagrams, charts, or visuals:",
		content,
		"",
	)
	return a.Completer.Complete(ctx, prompt)
}

func (a *Analyzer) buildPrompt(lead, content, trailer string) string {
	max := a.MaxContentChars
	if max <= 0 {
		max = DefaultMaxContentChars
	}
	excerpt := Truncate(content, max)
	if len(excerpt) < len(content) {
		// The model is not told about the cut; at least make it observable.
		log.Debug().
			Int("contentChars", utf8.RuneCountInString(content)).
			Int("promptChars", max).
			Msg("content truncated before prompting")
	}

	var sb strings.Builder
	sb.WriteString(lead)
	sb.WriteString("\n```markdown\n")
	sb.WriteString(excerpt)
	sb.WriteString("\n```\n")
	if trailer != "" {
		sb.WriteString(trailer)
		sb.WriteString("\n")
	}
	if hint := strings.TrimSpace(a.LanguageHint); hint != "" {
		sb.WriteString("Respond in language: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Truncate returns the first max characters (runes) of s, or s unchanged
// when it is at or under the limit.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// ComposeEnhanced joins the improvement text and the visual suggestions into
// the fixed two-section markdown document that gets persisted.
func ComposeEnhanced(improvement, visuals string) string {
	return fmt.Sprintf("# Improved Documentation\n\n%s\n\n# Visual Suggestions\n\n%s", improvement, visuals)
}
