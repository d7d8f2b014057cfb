package config

import "testing"

func TestWebhookURL(t *testing.T) {
	cfg := DefaultConfig()

	cfg.General.Environment = EnvDevelopment
	if got := WebhookURL(cfg); got != cfg.Webhook.DevelopmentURL {
		t.Errorf("development WebhookURL = %q", got)
	}

	cfg.General.Environment = EnvProduction
	if got := WebhookURL(cfg); got != cfg.Webhook.ProductionURL {
		t.Errorf("production WebhookURL = %q", got)
	}

	// Anything unrecognized must not silently hit the dev endpoint.
	cfg.General.Environment = "staging"
	if got := WebhookURL(cfg); got != cfg.Webhook.ProductionURL {
		t.Errorf("unknown environment WebhookURL = %q, want production", got)
	}
}

func TestGetIntakeSecret_EnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Webhook.IntakeSecret = "from-config"

	if got := GetIntakeSecret(cfg); got != "from-config" {
		t.Errorf("GetIntakeSecret = %q, want config value", got)
	}

	t.Setenv("GUIDEPOST_INTAKE_SECRET", "from-env")
	if got := GetIntakeSecret(cfg); got != "from-env" {
		t.Errorf("GetIntakeSecret = %q, want env override", got)
	}
}

func TestDraftDBPath(t *testing.T) {
	cfg := DefaultConfig()
	if got := DraftDBPath(cfg, "/fallback/drafts.db"); got != "/fallback/drafts.db" {
		t.Errorf("DraftDBPath = %q, want fallback", got)
	}

	cfg.General.DraftDB = "/custom/drafts.db"
	if got := DraftDBPath(cfg, "/fallback/drafts.db"); got != "/custom/drafts.db" {
		t.Errorf("DraftDBPath = %q, want configured path", got)
	}
}
