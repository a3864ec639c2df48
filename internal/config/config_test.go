package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIToken, "test-token")
	t.Setenv(EnvInboxProjectID, "inbox123")
	t.Setenv(EnvBaseURL, "http://localhost:8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIToken != "test-token" {
		t.Errorf("APIToken = %q, want %q", cfg.APIToken, "test-token")
	}
	if cfg.InboxProjectID != "inbox123" {
		t.Errorf("InboxProjectID = %q, want %q", cfg.InboxProjectID, "inbox123")
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:8080")
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv(EnvAPIToken, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when token is missing")
	}
	if !strings.Contains(err.Error(), EnvAPIToken) {
		t.Errorf("error %q should name the missing variable", err.Error())
	}
}

func TestLoadOptionalFieldsDefaultEmpty(t *testing.T) {
	t.Setenv(EnvAPIToken, "tok")
	t.Setenv(EnvInboxProjectID, "")
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InboxProjectID != "" || cfg.BaseURL != "" {
		t.Errorf("optional fields should default to empty, got %+v", cfg)
	}
}
