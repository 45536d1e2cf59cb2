package config

import (
	"os"
	"path/filepath"
	"steamhack/constants"
	"steamhack/types"
	"testing"
)

func TestNewConfigManager(t *testing.T) {
	cm := NewConfigManager()
	if cm.ConfigPath == "" {
		t.Error("Expected ConfigPath to be set")
	}
	if filepath.Base(cm.ConfigPath) != constants.ConfigFile {
		t.Errorf("Expected config file name %s, got %s", constants.ConfigFile, cm.ConfigPath)
	}
	if cm.Config == nil {
		t.Error("Expected Config to be initialized")
	}
}

func TestLoadWrittenConfig(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.json")
	cm := &ConfigManager{
		ConfigPath: configPath,
		Config:     &types.AppConfig{},
	}

	// 1. Test writing
	testConfig := types.AppConfig{
		DataDir:           "/data",
		InstallDir:        "/install",
		SearchPlaceholder: "Rechercher un jeu...",
		BannerWidth:       640,
		BannerHeight:      300,
		SkipDeleteConfirm: true,
	}

	*cm.Config = testConfig
	if err := cm.write(); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// 2. Test loading
	cm2 := &ConfigManager{
		ConfigPath: configPath,
		Config:     &types.AppConfig{},
	}
	if err := cm2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cm2.Config.SearchPlaceholder != testConfig.SearchPlaceholder {
		t.Errorf("Expected placeholder %s, got %s", testConfig.SearchPlaceholder, cm2.Config.SearchPlaceholder)
	}
	if w, h := cm2.GetBannerSize(); w != 640 || h != 300 {
		t.Errorf("Expected banner size 640x300, got %dx%d", w, h)
	}
	if cm2.GetDataDir() != "/data" {
		t.Errorf("Expected data dir /data, got %s", cm2.GetDataDir())
	}
	if cm2.GetConfirmDelete() {
		t.Error("Expected delete confirmation to be turned off by the file")
	}
}

func TestLoad_FillsMissingSettings(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"install_dir": "/opt/steamhack"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cm := &ConfigManager{ConfigPath: configPath, Config: &types.AppConfig{}}
	if err := cm.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := cm.GetConfig()
	if cfg.InstallDir != "/opt/steamhack" {
		t.Errorf("Expected install dir to be kept, got %s", cfg.InstallDir)
	}
	if cfg.DataDir != tmpDir {
		t.Errorf("Expected data dir %s, got %s", tmpDir, cfg.DataDir)
	}
	if cfg.SearchPlaceholder != constants.DefaultSearchPlaceholder {
		t.Errorf("Expected default placeholder, got %q", cfg.SearchPlaceholder)
	}
	if cfg.BannerWidth != constants.DefaultBannerWidth || cfg.BannerHeight != constants.DefaultBannerHeight {
		t.Errorf("Expected default banner size, got %dx%d", cfg.BannerWidth, cfg.BannerHeight)
	}
}

func TestLoad_ConfirmDeleteDefaultsToOn(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"empty object", `{}`, false},
		{"other settings only", `{"search_placeholder": "x"}`, false},
		{"invalid json", `{broken`, true},
		{"partial then invalid", `{"skip_delete_confirm": true, "banner_width": }`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(configPath, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}

			cm := &ConfigManager{ConfigPath: configPath, Config: &types.AppConfig{}}
			err := cm.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !cm.GetConfirmDelete() {
				t.Errorf("Expected delete confirmation to stay on for %s", tt.body)
			}
		})
	}
}

func TestLoad_InvalidJSONUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	os.WriteFile(configPath, []byte("{not json"), 0o644)

	cm := &ConfigManager{ConfigPath: configPath, Config: &types.AppConfig{}}
	if err := cm.Load(); err == nil {
		t.Error("Expected parse error for invalid config")
	}
	if cm.GetSearchPlaceholder() != constants.DefaultSearchPlaceholder {
		t.Errorf("Expected default placeholder, got %q", cm.GetSearchPlaceholder())
	}
	if w, h := cm.GetBannerSize(); w != constants.DefaultBannerWidth || h != constants.DefaultBannerHeight {
		t.Errorf("Expected default banner size, got %dx%d", w, h)
	}
}

func TestCreateDefault(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "subdir", "config.json")
	cm := &ConfigManager{
		ConfigPath: configPath,
		Config:     &types.AppConfig{},
	}

	if err := cm.Load(); err != nil {
		t.Fatalf("Load should not fail when file is missing (it should create default): %v", err)
	}

	if !cm.GetConfirmDelete() {
		t.Error("Expected delete confirmation to be on by default")
	}
	if cm.GetDataDir() != filepath.Join(tmpDir, "subdir") {
		t.Errorf("Expected data dir next to the config file, got %s", cm.GetDataDir())
	}

	// Verify file was actually written to disk
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Default config file was not written to disk")
	}
}

func TestGetConfigThreadSafety(t *testing.T) {
	cm := &ConfigManager{
		Config: &types.AppConfig{SearchPlaceholder: "initial"},
	}

	// Simple check that it returns a copy
	cfg := cm.GetConfig()
	cfg.SearchPlaceholder = "modified"

	if cm.Config.SearchPlaceholder != "initial" {
		t.Error("GetConfig should return a copy, not a pointer to the internal struct")
	}
}

func TestGetDefaultDataDir(t *testing.T) {
	path, err := GetDefaultDataDir()
	if err != nil {
		t.Skipf("no user cache dir on this machine: %v", err)
	}
	if filepath.Base(path) != constants.AppDir {
		t.Errorf("Expected path ending in %s, got %s", constants.AppDir, path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %s", path)
	}
}

func TestGetInstallDir_Fallback(t *testing.T) {
	cm := &ConfigManager{Config: &types.AppConfig{}}
	if cm.GetInstallDir() != GetDefaultInstallDir() {
		t.Errorf("Expected executable folder when install dir is unset")
	}
}
