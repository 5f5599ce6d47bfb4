package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.AppName != "job-search-api" {
		t.Errorf("unexpected app name %q", cfg.App.AppName)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("unexpected environment %q", cfg.App.Environment)
	}
	if cfg.App.HTTPPort != "4000" {
		t.Errorf("unexpected port %q", cfg.App.HTTPPort)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_NAME", "jobsrv")
	t.Setenv("PORT", " 8080 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.AppName != "jobsrv" {
		t.Errorf("unexpected app name %q", cfg.App.AppName)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Errorf("unexpected port %q", cfg.App.HTTPPort)
	}
}
