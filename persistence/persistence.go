package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"steamhack/constants"
	"steamhack/types"
	"steamhack/utils"
	"steamhack/utils/fileio"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ErrNoData is returned by Load when there is no saved library yet (missing or blank file).
var ErrNoData = errors.New("no saved games")

// ConfigProvider defines the configuration needed to locate games.json.
type ConfigProvider interface {
	GetDataDir() string
}

// Store reads and writes the game list to <data dir>/games.json.
type Store struct {
	fs     afero.Fs
	config ConfigProvider
}

// New creates a new Store.
func New(fs afero.Fs, cfg ConfigProvider) *Store {
	return &Store{
		fs:     fs,
		config: cfg,
	}
}

// DataFilePath returns the full path of games.json.
func (s *Store) DataFilePath() string {
	return filepath.Join(s.config.GetDataDir(), constants.DataFileName)
}

// EnsureDirs creates the data folder and its artwork subfolders if needed.
func (s *Store) EnsureDirs() error {
	dataDir := s.config.GetDataDir()
	return fileio.MkdirAll(s.fs, 0o755,
		dataDir,
		utils.ImageDir(dataDir, constants.IconDir),
		utils.ImageDir(dataDir, constants.BannerDir),
	)
}

// Load reads the saved games. A missing or blank file yields ErrNoData,
// a file that does not parse yields a decode error.
func (s *Store) Load() ([]types.SavedGame, error) {
	path := s.DataFilePath()

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrNoData
	}

	var saved []types.SavedGame
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return saved, nil
}

// Save overwrites games.json with the given games.
func (s *Store) Save(games []types.Game) error {
	saved := lo.Map(games, func(g types.Game, _ int) types.SavedGame {
		return ToSaved(g)
	})

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode games: %w", err)
	}

	path := s.DataFilePath()
	if err := fileio.MkdirAll(s.fs, 0o755, filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Backup copies games.json next to itself with a .bak suffix and returns the copy's path.
// It is used to keep a file that failed to parse before defaults replace it.
func (s *Store) Backup() (string, error) {
	src := s.DataFilePath()
	dst := src + constants.BackupSuffix
	if err := fileio.CopyFile(s.fs, src, dst); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", src, err)
	}
	return dst, nil
}

// ToSaved flattens a game to its on-disk form; artwork is kept as basenames.
func ToSaved(g types.Game) types.SavedGame {
	return types.SavedGame{
		Nom:        g.Name,
		IconFile:   baseName(g.IconPath),
		BannerFile: baseName(g.BannerPath),
		CheminExe:  g.ExePath,
	}
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
