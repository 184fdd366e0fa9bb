package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GRADEIT_API_URL", "")
	t.Setenv("GRADEIT_PORTFOLIO_BASE", "")
	t.Setenv("GRADEIT_DB", "")
	t.Setenv("GRADEIT_THEME", "")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.gradeit.app" {
		t.Errorf("Unexpected API base: %s", cfg.APIBaseURL)
	}
	if cfg.PortfolioBaseURL != "https://gradeit.app" {
		t.Errorf("Unexpected portfolio base: %s", cfg.PortfolioBaseURL)
	}
	if cfg.DBPath != "gradeit.db" {
		t.Errorf("Unexpected DB path: %s", cfg.DBPath)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Unexpected theme: %s", cfg.Theme)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GRADEIT_API_URL", "http://localhost:8080")
	t.Setenv("GRADEIT_THEME", "miami")

	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("Expected env override, got %s", cfg.APIBaseURL)
	}
	if cfg.Theme != "miami" {
		t.Errorf("Expected env override, got %s", cfg.Theme)
	}
}
