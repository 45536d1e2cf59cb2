package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"steamhack/constants"
	"steamhack/types"
	"sync"
)

// ConfigManager handles loading/saving
type ConfigManager struct {
	Config     *types.AppConfig
	ConfigPath string
	Mu         sync.RWMutex // Thread-safety for UI reads/writes
}

// NewConfigManager initializes the manager and determines the file path
func NewConfigManager() *ConfigManager {
	dataDir, err := GetDefaultDataDir()
	if err != nil {
		// Fallback to executable dir if no per-user folder is available
		dataDir = GetDefaultInstallDir()
	}
	return &ConfigManager{
		ConfigPath: filepath.Join(dataDir, constants.ConfigFile),
		Config:     &types.AppConfig{},
	}
}

// Load reads the config from disk
func (cm *ConfigManager) Load() error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()

	// 1. Check if file exists
	if _, err := os.Stat(cm.ConfigPath); os.IsNotExist(err) {
		return cm.createDefault()
	}

	// 2. Read bytes
	data, err := os.ReadFile(cm.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Unmarshal; an unreadable file leaves every setting at its default
	if err := json.Unmarshal(data, cm.Config); err != nil {
		*cm.Config = types.AppConfig{}
		applyDefaults(cm.Config, filepath.Dir(cm.ConfigPath))
		return fmt.Errorf("failed to parse config json: %w", err)
	}

	// 4. Older files may miss newer settings
	applyDefaults(cm.Config, filepath.Dir(cm.ConfigPath))

	return nil
}

// GetConfig returns a copy of the current config (Thread-Safe)
func (cm *ConfigManager) GetConfig() types.AppConfig {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return *cm.Config
}

// GetDataDir returns the per-user folder holding games.json and the artwork cache.
func (cm *ConfigManager) GetDataDir() string {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	if cm.Config.DataDir == "" {
		return filepath.Dir(cm.ConfigPath)
	}
	return cm.Config.DataDir
}

// GetInstallDir returns the folder holding the bundled default artwork.
func (cm *ConfigManager) GetInstallDir() string {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	if cm.Config.InstallDir == "" {
		return GetDefaultInstallDir()
	}
	return cm.Config.InstallDir
}

// GetSearchPlaceholder returns the sentinel text meaning "no filter".
func (cm *ConfigManager) GetSearchPlaceholder() string {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return cm.Config.SearchPlaceholder
}

// GetBannerSize returns the bounding box for imported banners.
func (cm *ConfigManager) GetBannerSize() (uint, uint) {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return cm.Config.BannerWidth, cm.Config.BannerHeight
}

// GetConfirmDelete reports whether removing a game asks first.
func (cm *ConfigManager) GetConfirmDelete() bool {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return !cm.Config.SkipDeleteConfirm
}

// GetDefaultDataDir returns <LocalAppData>/SteamHack.
// os.UserCacheDir resolves to %LocalAppData% on Windows.
func GetDefaultDataDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user data directory: %w", err)
	}
	return filepath.Join(base, constants.AppDir), nil
}

// GetDefaultInstallDir returns the folder of the running executable.
func GetDefaultInstallDir() string {
	exePath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exePath)
}

// createDefault generates a config file if none exists
func (cm *ConfigManager) createDefault() error {
	defaultConfig := types.AppConfig{}
	applyDefaults(&defaultConfig, filepath.Dir(cm.ConfigPath))
	cm.Config = &defaultConfig

	fmt.Println("Config file not found. Creating default at:", cm.ConfigPath)

	return cm.write()
}

func (cm *ConfigManager) write() error {
	// Ensure directory exists
	dir := filepath.Dir(cm.ConfigPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.Config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cm.ConfigPath, data, 0o644)
}

func applyDefaults(cfg *types.AppConfig, dataDir string) {
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.InstallDir == "" {
		cfg.InstallDir = GetDefaultInstallDir()
	}
	if cfg.SearchPlaceholder == "" {
		cfg.SearchPlaceholder = constants.DefaultSearchPlaceholder
	}
	if cfg.BannerWidth == 0 {
		cfg.BannerWidth = constants.DefaultBannerWidth
	}
	if cfg.BannerHeight == 0 {
		cfg.BannerHeight = constants.DefaultBannerHeight
	}
}
