package config

import "os"

// Config holds everything the app reads from the environment.
type Config struct {
	// APIBaseURL is the pokedata API domain, without a trailing slash.
	APIBaseURL string
	// PortfolioBaseURL is the public base used to derive shareable links.
	PortfolioBaseURL string
	// DBPath is the duckdb collection file.
	DBPath string
	// Theme selects one of the named palettes (light, dark, miami, ...).
	Theme string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		APIBaseURL:       getenv("GRADEIT_API_URL", "https://api.gradeit.app"),
		PortfolioBaseURL: getenv("GRADEIT_PORTFOLIO_BASE", "https://gradeit.app"),
		DBPath:           getenv("GRADEIT_DB", "gradeit.db"),
		Theme:            getenv("GRADEIT_THEME", "dark"),
	}
}
