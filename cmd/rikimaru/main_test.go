package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_LogLevelFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIKIMARU_LOG_LEVEL", "")

	oldPath, oldLevel := configPath, logLevel
	t.Cleanup(func() {
		configPath, logLevel = oldPath, oldLevel
	})
	configPath = path

	tests := []struct {
		name    string
		flag    string
		want    string
		wantErr bool
	}{
		{"no flag keeps file level", "", "warn", false},
		{"flag overrides", "debug", "debug", false},
		{"unknown level rejected", "loud", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel = tt.flag
			cfg, err := loadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("loadConfig() = %+v, want error", cfg.Log)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if cfg.Log.Level != tt.want {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.want)
			}
		})
	}
}
