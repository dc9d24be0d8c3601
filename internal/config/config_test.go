package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("UPLOAD_DIR", "uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected port 5000, got %s", cfg.Port)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("Expected 24h ttl, got %v", cfg.JWTTTL)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("Expected uploads dir, got %s", cfg.UploadDir)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")

	if _, err := Load(); err == nil {
		t.Errorf("Expected error for invalid JWT_TTL")
	}
}
