package budget

import "testing"

func TestEstimateTokensFromChars(t *testing.T) {
	if got := EstimateTokensFromChars(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := EstimateTokensFromChars(1); got != 1 {
		t.Fatalf("expected ceil to 1, got %d", got)
	}
	if got := EstimateTokensFromChars(8); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestModelContextTokens(t *testing.T) {
	if got := ModelContextTokens("claude-2"); got != 100_000 {
		t.Fatalf("known model: expected 100000, got %d", got)
	}
	if got := ModelContextTokens("mystery-model"); got != 8192 {
		t.Fatalf("unknown model: expected 8192, got %d", got)
	}
	if got := ModelContextTokens("acme-128k"); got != 128_000 {
		t.Fatalf("suffix heuristic: expected 128000, got %d", got)
	}
}

func TestFitsInContext(t *testing.T) {
	if !FitsInContext("gpt-4o", 2000, 1000) {
		t.Fatalf("small prompt should fit")
	}
	if FitsInContext("llama-3", 2000, 7000) {
		t.Fatalf("oversized prompt should not fit")
	}
}

func TestRemainingContextNeverNegative(t *testing.T) {
	if got := RemainingContext("llama-3", 8192, 8192); got != 0 {
		t.Fatalf("expected clamped 0, got %d", got)
	}
}
