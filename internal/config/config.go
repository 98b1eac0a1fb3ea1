package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Report   ReportConfig   `toml:"report"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ReportConfig contains report generation defaults. Scoring bands are fixed
// in code; only presentation choices are configurable.
type ReportConfig struct {
	Title       string `toml:"title"`
	TopN        int    `toml:"top_n"`
	TopNChoices []int  `toml:"top_n_choices"`
	MinScore    int    `toml:"min_score"`
}

// TopNAllowed reports whether n is one of the configured leaderboard sizes.
// An empty choice list allows any positive n.
func (r ReportConfig) TopNAllowed(n int) bool {
	if len(r.TopNChoices) == 0 {
		return n > 0
	}
	for _, choice := range r.TopNChoices {
		if n == choice {
			return true
		}
	}
	return false
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/leadintel/leadintel.db",
		},
		Report: ReportConfig{
			Title:       "Off-Plan Campaign Intelligence",
			TopN:        25,
			TopNChoices: []int{10, 25, 50, 100},
			MinScore:    60,
		},
	}
}
