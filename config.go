package trieql

// Config controls the ambient behavior of a Trie: the literal prefilter,
// the compiled-pattern cache, and the worker pool backing
// PatternAllConcurrent. Apart from MaxPatternLength, which rejects long
// patterns outright, it does not affect query semantics — any two Configs
// produce identical results for the same trie and an accepted query, only
// at different cost.
//
// Example:
//
//	config := trieql.DefaultConfig()
//	config.EnablePrefilter = false // always run the full matcher
//	t, err := trieql.NewWithConfig(config)
type Config struct {
	// EnablePrefilter gates the Aho-Corasick literal-fragment prefilter
	// (internal/literalscan). When false, Pattern always falls through to
	// the full matcher.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal fragment worth building a
	// prefilter automaton for. Shorter fragments have too little
	// selectivity to be worth the automaton build cost.
	// Default: 2
	MinLiteralLen int

	// PatternCacheSize bounds the number of compiled patterns
	// ([]pattern.Token) kept in the xxhash-keyed cache.
	// Default: 256
	PatternCacheSize int

	// MaxPatternLength rejects pattern strings longer than this before
	// parsing, returning an *ArgumentError.
	// Default: 4096
	MaxPatternLength int

	// WorkerPoolSize sizes the ants.Pool backing PatternAllConcurrent.
	// Default: 4
	WorkerPoolSize int
}

// DefaultConfig returns the configuration New uses: prefilter enabled
// with a conservative minimum literal length, a modestly sized pattern
// cache, and a small worker pool.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		MinLiteralLen:    2,
		PatternCacheSize: 256,
		MaxPatternLength: 4096,
		WorkerPoolSize:   4,
	}
}

// Validate checks that c's fields are within acceptable ranges.
func (c Config) Validate() error {
	if c.MinLiteralLen < 1 || c.MinLiteralLen > 255 {
		return &ConfigError{Field: "MinLiteralLen", Message: "must be between 1 and 255"}
	}
	if c.PatternCacheSize < 0 || c.PatternCacheSize > 1_000_000 {
		return &ConfigError{Field: "PatternCacheSize", Message: "must be between 0 and 1,000,000"}
	}
	if c.MaxPatternLength < 1 || c.MaxPatternLength > 1_000_000 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be between 1 and 1,000,000"}
	}
	if c.WorkerPoolSize < 1 || c.WorkerPoolSize > 10_000 {
		return &ConfigError{Field: "WorkerPoolSize", Message: "must be between 1 and 10,000"}
	}
	return nil
}
