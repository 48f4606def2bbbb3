package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.MaxQuestions != 10 {
		t.Fatalf("expected default max questions 10, got %d", cfg.MaxQuestions)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origins: %v", cfg.AllowedOrigins)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("VIVA_HOST", "127.0.0.1")
	t.Setenv("VIVA_PORT", "9001")
	t.Setenv("VIVA_MAX_QUESTIONS", "5")
	t.Setenv("VIVA_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("VIVA_DB", "/tmp/viva.db")

	cfg := FromEnv()
	if cfg.Addr() != "127.0.0.1:9001" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
	if cfg.MaxQuestions != 5 {
		t.Fatalf("expected max questions 5, got %d", cfg.MaxQuestions)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.DBPath != "/tmp/viva.db" {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestFromEnv_IgnoresInvalid(t *testing.T) {
	t.Setenv("VIVA_PORT", "not-a-port")
	t.Setenv("VIVA_MAX_QUESTIONS", "-3")

	cfg := FromEnv()
	if cfg.Port != 8000 {
		t.Fatalf("invalid port must keep default, got %d", cfg.Port)
	}
	if cfg.MaxQuestions != 10 {
		t.Fatalf("invalid max questions must keep default, got %d", cfg.MaxQuestions)
	}
}
