package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PageSize != 10 {
		t.Errorf("Load() PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.ServerAddr != ":3000" {
		t.Errorf("Load() ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.OIDCOwnerClaim != "owner_id" {
		t.Errorf("Load() OIDCOwnerClaim = %q, want %q", cfg.OIDCOwnerClaim, "owner_id")
	}
	if cfg.LogRetention != 0 {
		t.Errorf("Load() LogRetention = %v, want 0", cfg.LogRetention)
	}
}

func TestLoad_PageSizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "25", false},
		{"one", "1", false},
		{"zero", "0", true},
		{"negative", "-5", true},
		{"not a number", "ten", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PAGE_SIZE", tt.value)
			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_LogRetention(t *testing.T) {
	t.Setenv("LOG_RETENTION", "720h")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogRetention.Hours() != 720 {
		t.Errorf("Load() LogRetention = %v, want 720h", cfg.LogRetention)
	}

	t.Setenv("LOG_RETENTION", "-1h")
	if _, err := Load(); err == nil {
		t.Error("Load() with negative retention expected error")
	}
}
