package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ScoringWeights names the Jaro-Winkler and Levenshtein weights from the
// configuration table. Tier 3's selection is strictly distance-first with a
// Jaro-Winkler tie-break (see editdistance_matcher.go); these weights are
// carried on MatcherCfg for config-surface compatibility but are not blended
// into a single score anywhere in the cascade.
type ScoringWeights struct {
	JaroWinklerWeight float64 `yaml:"jaro_winkler_weight" json:"jaro_winkler_weight"`
	LevenshteinWeight float64 `yaml:"levenshtein_weight" json:"levenshtein_weight"`
}

// MatcherCfg holds every tunable named by the configuration table: the
// acceptance threshold for Tier 2, the bound and minimum phrase length for
// Tier 3, the sliding-window size for Tier 1, and the per-query wall-clock
// budget.
type MatcherCfg struct {
	LCSThreshold        float64 `yaml:"lcs_threshold" json:"lcs_threshold"`
	EditMaxDistance     int     `yaml:"edit_max_distance" json:"edit_max_distance"`
	EditMinPhraseChars  int     `yaml:"edit_min_phrase_chars" json:"edit_min_phrase_chars"`
	TrieWindowMaxTokens int     `yaml:"trie_window_max_tokens" json:"trie_window_max_tokens"`
	BudgetMS            int     `yaml:"budget_ms" json:"budget_ms"`

	Scoring ScoringWeights `yaml:"scoring" json:"scoring"`

	// QueryCacheSize bounds the optional LRU wrapper in internal/querycache.
	// Zero disables the cache entirely.
	QueryCacheSize int `yaml:"query_cache_size" json:"query_cache_size"`
}

// Default returns the hardcoded defaults from the configuration table; Load
// starts from these and overlays a YAML file and environment variables on
// top, never failing hard when no override is present.
func Default() MatcherCfg {
	return MatcherCfg{
		LCSThreshold:        0.4,
		EditMaxDistance:     2,
		EditMinPhraseChars:  4,
		TrieWindowMaxTokens: 6,
		BudgetMS:            100,
		Scoring: ScoringWeights{
			JaroWinklerWeight: 0.7,
			LevenshteinWeight: 0.3,
		},
		QueryCacheSize: 2048,
	}
}

var C = Default()

// Load reads path as YAML into C, falling back silently to defaults when the
// file does not exist, then applies environment overrides via viper.
func Load(path string) error {
	C = Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if uerr := yaml.Unmarshal(b, &C); uerr != nil {
				return uerr
			}
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	applyEnvOverrides()
	return nil
}

func applyEnvOverrides() {
	viper.SetEnvPrefix("VNADDR")
	viper.AutomaticEnv()

	if viper.IsSet("LCS_THRESHOLD") {
		C.LCSThreshold = viper.GetFloat64("LCS_THRESHOLD")
	}
	if viper.IsSet("EDIT_MAX_DISTANCE") {
		C.EditMaxDistance = viper.GetInt("EDIT_MAX_DISTANCE")
	}
	if viper.IsSet("EDIT_MIN_PHRASE_CHARS") {
		C.EditMinPhraseChars = viper.GetInt("EDIT_MIN_PHRASE_CHARS")
	}
	if viper.IsSet("TRIE_WINDOW_MAX_TOKENS") {
		C.TrieWindowMaxTokens = viper.GetInt("TRIE_WINDOW_MAX_TOKENS")
	}
	if viper.IsSet("BUDGET_MS") {
		C.BudgetMS = viper.GetInt("BUDGET_MS")
	}
	if viper.IsSet("QUERY_CACHE_SIZE") {
		C.QueryCacheSize = viper.GetInt("QUERY_CACHE_SIZE")
	}
}

// Budget returns BudgetMS as a time.Duration for use with context.WithTimeout.
func (c MatcherCfg) Budget() time.Duration {
	return time.Duration(c.BudgetMS) * time.Millisecond
}
