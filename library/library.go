package library

import (
	"path/filepath"
	"steamhack/constants"
	"steamhack/types"
	"steamhack/utils"
	"steamhack/utils/fileio"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ConfigProvider defines the configuration needed for library management.
type ConfigProvider interface {
	GetDataDir() string
	GetInstallDir() string
}

// defaultGames seeds an empty library: {name, icon file, banner file}.
var defaultGames = [][3]string{
	{"Elden Ring", "elden_ring.ico", "elden_ring.ico"},
	{"Undertale", "undertale.ico", "undertale.ico"},
}

// Library is the ordered in-memory list of registered games.
// Records are stored by value; updates replace the stored copy.
type Library struct {
	fs     afero.Fs
	config ConfigProvider
	games  []types.Game
	newID  func() string
}

// New creates an empty Library resolving artwork on fs.
func New(fs afero.Fs, cfg ConfigProvider) *Library {
	return &Library{
		fs:     fs,
		config: cfg,
		newID:  uuid.NewString,
	}
}

// Add resolves the artwork references and appends a new game.
// Missing artwork leaves the corresponding path empty.
func (l *Library) Add(name, iconFile, bannerFile, exePath string) types.Game {
	game := types.Game{
		ID:         l.newID(),
		Name:       name,
		IconPath:   l.resolveImage(constants.IconDir, iconFile),
		BannerPath: l.resolveImage(constants.BannerDir, bannerFile),
		ExePath:    exePath,
	}
	l.games = append(l.games, game)
	return game
}

// Remove deletes the game with the given id. It reports whether something was removed.
func (l *Library) Remove(id string) bool {
	_, idx, ok := lo.FindIndexOf(l.games, func(g types.Game) bool { return g.ID == id })
	if !ok {
		return false
	}
	l.games = append(l.games[:idx], l.games[idx+1:]...)
	return true
}

// SetExecutablePath overwrites the executable of a game.
// The path is not checked here, only at launch time.
func (l *Library) SetExecutablePath(id, path string) (types.Game, bool) {
	return l.update(id, func(g *types.Game) { g.ExePath = path })
}

// SetBanner re-resolves the banner of a game from a file name.
func (l *Library) SetBanner(id, bannerFile string) (types.Game, bool) {
	resolved := l.resolveImage(constants.BannerDir, bannerFile)
	return l.update(id, func(g *types.Game) { g.BannerPath = resolved })
}

// LoadDefaults seeds the library with the bundled sample games.
func (l *Library) LoadDefaults() {
	for _, d := range defaultGames {
		l.Add(d[0], d[1], d[2], "")
	}
}

// Get returns the game with the given id.
func (l *Library) Get(id string) (types.Game, bool) {
	return lo.Find(l.games, func(g types.Game) bool { return g.ID == id })
}

// All returns a copy of every game, in insertion order.
func (l *Library) All() []types.Game {
	out := make([]types.Game, len(l.games))
	copy(out, l.games)
	return out
}

// Len returns the number of games.
func (l *Library) Len() int {
	return len(l.games)
}

// Reset drops every game.
func (l *Library) Reset() {
	l.games = nil
}

func (l *Library) update(id string, mutate func(g *types.Game)) (types.Game, bool) {
	_, idx, ok := lo.FindIndexOf(l.games, func(g types.Game) bool { return g.ID == id })
	if !ok {
		return types.Game{}, false
	}
	updated := l.games[idx]
	mutate(&updated)
	l.games[idx] = updated
	return updated, true
}

// resolveImage looks for file in the user image folder first, then in the install folder.
func (l *Library) resolveImage(kind, file string) string {
	if file == "" {
		return ""
	}
	// Persisted references are basenames; anything else is not ours to follow
	file = filepath.Base(file)

	candidates := []string{
		filepath.Join(utils.ImageDir(l.config.GetDataDir(), kind), file),
		filepath.Join(utils.ImageDir(l.config.GetInstallDir(), kind), file),
	}
	for _, path := range candidates {
		if fileio.Exists(l.fs, path) {
			return path
		}
	}
	return ""
}
