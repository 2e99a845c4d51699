package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.NotifyOrder != NotifyCommitBeforeSend {
		t.Fatalf("expected default notify order, got %q", cfg.NotifyOrder)
	}
	if cfg.BaseURL == "" || cfg.OperatorEmail == "" {
		t.Fatalf("expected non-empty defaults, got %+v", cfg)
	}
}

func TestLoadNotifyOrder(t *testing.T) {
	t.Setenv("NOTIFY_ORDER", NotifySendBeforeCommit)
	if cfg := Load(); cfg.NotifyOrder != NotifySendBeforeCommit {
		t.Fatalf("expected send-before-commit, got %q", cfg.NotifyOrder)
	}

	t.Setenv("NOTIFY_ORDER", "whenever")
	if cfg := Load(); cfg.NotifyOrder != NotifyCommitBeforeSend {
		t.Fatalf("expected unrecognized order to fall back, got %q", cfg.NotifyOrder)
	}
}

func TestLoadDBPoolSettings(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	cfg := Load()
	if cfg.DBMaxOpenConns != 25 {
		t.Fatalf("expected 25 open conns, got %d", cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns != Default().DBMaxIdleConns {
		t.Fatalf("expected bad value to keep default, got %d", cfg.DBMaxIdleConns)
	}
}
