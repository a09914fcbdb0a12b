package config

// ModelPricing holds per-million-token prices for a model.
type ModelPricing struct {
	InputPerMTok      float64
	OutputPerMTok     float64
	CacheWritePerMTok float64
	CacheReadPerMTok  float64
}

// DefaultModelKey is the pricing table's fallback entry. Lookups for
// model identifiers absent from the table resolve to this entry.
const DefaultModelKey = "default"

// pricingTable maps exact model identifiers to pricing. Lookup is exact
// string equality only — no prefix or fuzzy matching — so dated variants
// are listed individually.
//
// Unknown models silently cost at the "default" (Sonnet) tier. That is a
// deliberate choice carried over from the original analysis behavior, not
// a bug; it can under- or over-count models priced at other tiers.
var pricingTable = map[string]ModelPricing{
	"claude-opus-4-20250514": {
		InputPerMTok: 15.00, OutputPerMTok: 75.00,
		CacheWritePerMTok: 18.75, CacheReadPerMTok: 1.50,
	},
	"claude-opus-4-1-20250805": {
		InputPerMTok: 15.00, OutputPerMTok: 75.00,
		CacheWritePerMTok: 18.75, CacheReadPerMTok: 1.50,
	},
	"claude-3-opus-20240229": {
		InputPerMTok: 15.00, OutputPerMTok: 75.00,
		CacheWritePerMTok: 18.75, CacheReadPerMTok: 1.50,
	},
	"claude-sonnet-4-20250514": {
		InputPerMTok: 3.00, OutputPerMTok: 15.00,
		CacheWritePerMTok: 3.75, CacheReadPerMTok: 0.30,
	},
	"claude-3-7-sonnet-20250219": {
		InputPerMTok: 3.00, OutputPerMTok: 15.00,
		CacheWritePerMTok: 3.75, CacheReadPerMTok: 0.30,
	},
	"claude-3-5-sonnet-20241022": {
		InputPerMTok: 3.00, OutputPerMTok: 15.00,
		CacheWritePerMTok: 3.75, CacheReadPerMTok: 0.30,
	},
	"claude-3-5-sonnet-20240620": {
		InputPerMTok: 3.00, OutputPerMTok: 15.00,
		CacheWritePerMTok: 3.75, CacheReadPerMTok: 0.30,
	},
	"claude-3-5-haiku-20241022": {
		InputPerMTok: 0.80, OutputPerMTok: 4.00,
		CacheWritePerMTok: 1.00, CacheReadPerMTok: 0.08,
	},
	"claude-3-haiku-20240307": {
		InputPerMTok: 0.25, OutputPerMTok: 1.25,
		CacheWritePerMTok: 0.30, CacheReadPerMTok: 0.03,
	},
	DefaultModelKey: {
		InputPerMTok: 3.00, OutputPerMTok: 15.00,
		CacheWritePerMTok: 3.75, CacheReadPerMTok: 0.30,
	},
}

// LookupPricing returns the pricing for a model identifier, falling back
// to the default entry for empty or unrecognized identifiers. It never
// fails: unknown models are costed at the fallback tier.
func LookupPricing(model string) ModelPricing {
	if p, ok := pricingTable[model]; ok {
		return p
	}
	return pricingTable[DefaultModelKey]
}

// CalculateCost computes the cost in USD for one assistant turn.
func CalculateCost(model string, inputTokens, outputTokens, cacheWrite, cacheRead int64) float64 {
	p := LookupPricing(model)

	cost := float64(inputTokens) * p.InputPerMTok / 1_000_000
	cost += float64(outputTokens) * p.OutputPerMTok / 1_000_000
	cost += float64(cacheWrite) * p.CacheWritePerMTok / 1_000_000
	cost += float64(cacheRead) * p.CacheReadPerMTok / 1_000_000

	return cost
}

// ApplyPricingOverrides merges user-configured rates into the table.
// Only the fields set in an override replace the defaults. Called once
// at startup, before any lookup; the table is immutable afterwards.
func ApplyPricingOverrides(overrides map[string]ModelPricingOverride) {
	for model, ov := range overrides {
		p := LookupPricing(model)
		if ov.InputPerMTok != nil {
			p.InputPerMTok = *ov.InputPerMTok
		}
		if ov.OutputPerMTok != nil {
			p.OutputPerMTok = *ov.OutputPerMTok
		}
		if ov.CacheWritePerMTok != nil {
			p.CacheWritePerMTok = *ov.CacheWritePerMTok
		}
		if ov.CacheReadPerMTok != nil {
			p.CacheReadPerMTok = *ov.CacheReadPerMTok
		}
		pricingTable[model] = p
	}
}
