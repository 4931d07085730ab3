package config

import "testing"

func TestLoadSMTPSettingsAfterEnvChange(t *testing.T) {
	// Settings must reflect env vars set after process start, the way
	// godotenv populates them from .env inside main.
	t.Setenv("SMTP_HOST", "smtp.example.org")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_FROM", "NGO ERP <no-reply@example.org>")
	t.Setenv("SMTP_SKIP_TLS_VERIFY", "")

	cfg := loadSMTPSettings()
	if cfg.Host != "smtp.example.org" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Port != 2525 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.From != "NGO ERP <no-reply@example.org>" {
		t.Errorf("From = %q", cfg.From)
	}
	if cfg.SkipTLSVerify {
		t.Error("SkipTLSVerify set without SMTP_SKIP_TLS_VERIFY=1")
	}

	t.Setenv("SMTP_HOST", "relay.example.org")
	if cfg := loadSMTPSettings(); cfg.Host != "relay.example.org" {
		t.Errorf("Host after change = %q", cfg.Host)
	}
}

func TestLoadSMTPSettingsDefaults(t *testing.T) {
	t.Setenv("SMTP_PORT", "")
	if cfg := loadSMTPSettings(); cfg.Port != 587 {
		t.Errorf("default Port = %d, want 587", cfg.Port)
	}
}

func TestSendMailUnconfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")

	err := SendMail([]string{"ops@example.org"}, "subject", "<p>body</p>")
	if err == nil {
		t.Fatal("expected configuration error")
	}

	// No recipients is a no-op, not an error.
	if err := SendMail(nil, "subject", "<p>body</p>"); err != nil {
		t.Errorf("no recipients: %v", err)
	}
}
