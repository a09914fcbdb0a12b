package config

import (
	"math"
	"testing"
)

func TestLookupPricing_ExactMatch(t *testing.T) {
	p := LookupPricing("claude-3-5-sonnet-20241022")
	if p.InputPerMTok != 3.00 || p.OutputPerMTok != 15.00 {
		t.Errorf("sonnet pricing = %+v, want 3.00/15.00", p)
	}
}

func TestLookupPricing_UnknownFallsBackToDefault(t *testing.T) {
	def := LookupPricing(DefaultModelKey)

	for _, m := range []string{"", "gpt-9", "claude-3-5-sonnet"} {
		if got := LookupPricing(m); got != def {
			t.Errorf("LookupPricing(%q) = %+v, want default entry %+v", m, got, def)
		}
	}
}

func TestLookupPricing_NoPrefixMatching(t *testing.T) {
	// A truncated identifier must not match the dated table entry; it
	// resolves to the default tier instead.
	got := LookupPricing("claude-3-5-haiku")
	if got == LookupPricing("claude-3-5-haiku-20241022") {
		t.Error("prefix matched a dated entry; lookup must be exact")
	}
	if got != LookupPricing(DefaultModelKey) {
		t.Errorf("truncated id = %+v, want default entry", got)
	}
}

func TestCalculateCost_KnownModel(t *testing.T) {
	// 1M input tokens at $3.00/MTok, nothing else.
	got := CalculateCost("claude-3-5-sonnet-20241022", 1_000_000, 0, 0, 0)
	if got != 3.00 {
		t.Errorf("cost = %v, want 3.00", got)
	}
}

func TestCalculateCost_AllTokenKinds(t *testing.T) {
	// 500K input + 100K output on sonnet: 1.5 + 1.5
	got := CalculateCost("claude-3-5-sonnet-20241022", 500_000, 100_000, 0, 0)
	if math.Abs(got-3.00) > 1e-12 {
		t.Errorf("cost = %v, want 3.00", got)
	}

	// Each kind priced at its own rate.
	got = CalculateCost("claude-3-5-sonnet-20241022", 1_000_000, 1_000_000, 1_000_000, 1_000_000)
	want := 3.00 + 15.00 + 3.75 + 0.30
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cost = %v, want %v", got, want)
	}
}

func TestCalculateCost_UnknownModelEqualsDefault(t *testing.T) {
	unknown := CalculateCost("some-future-model", 250_000, 80_000, 10_000, 900_000)
	def := CalculateCost(DefaultModelKey, 250_000, 80_000, 10_000, 900_000)
	if unknown != def {
		t.Errorf("unknown model cost = %v, default cost = %v, want equal", unknown, def)
	}
}

func TestCalculateCost_ZeroTokens(t *testing.T) {
	if got := CalculateCost("claude-3-5-sonnet-20241022", 0, 0, 0, 0); got != 0 {
		t.Errorf("zero-token cost = %v, want 0", got)
	}
}

func TestApplyPricingOverrides(t *testing.T) {
	const m = "test-override-model"
	defer delete(pricingTable, m)

	in := 9.99
	ApplyPricingOverrides(map[string]ModelPricingOverride{
		m: {InputPerMTok: &in},
	})

	p := LookupPricing(m)
	if p.InputPerMTok != 9.99 {
		t.Errorf("InputPerMTok = %v, want 9.99", p.InputPerMTok)
	}
	// Fields not set in the override keep the fallback-tier values.
	if p.OutputPerMTok != LookupPricing(DefaultModelKey).OutputPerMTok {
		t.Errorf("OutputPerMTok = %v, want default tier rate", p.OutputPerMTok)
	}
}
