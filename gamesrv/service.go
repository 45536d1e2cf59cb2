package gamesrv

import (
	"errors"
	"fmt"
	"steamhack/banner"
	"steamhack/constants"
	"steamhack/launcher"
	"steamhack/library"
	"steamhack/persistence"
	"steamhack/types"
	"steamhack/utils"
	"sync"

	"github.com/samber/lo"
)

// Store defines the persistence of the game list.
type Store interface {
	EnsureDirs() error
	Load() ([]types.SavedGame, error)
	Save(games []types.Game) error
	Backup() (string, error)
}

// IconExtractor pulls the icon out of an executable.
type IconExtractor interface {
	Extract(exePath, gameName string) (string, error)
}

// BannerImporter stores a user picked picture as a game banner.
type BannerImporter interface {
	Import(srcPath, gameName string) (string, error)
}

// Launcher starts a game.
type Launcher interface {
	Launch(game types.Game) error
}

// ArtworkEncoder turns image files into something the frontend can display.
type ArtworkEncoder interface {
	DataURI(path string) (string, error)
}

// ConfigProvider defines the settings the service reads.
type ConfigProvider interface {
	GetSearchPlaceholder() string
	GetConfirmDelete() bool
}

// UIProvider defines the dialogs, logging and events the service needs.
type UIProvider interface {
	OpenFileDialog(title string, filters []string) (string, error)
	ShowMessage(title, message string)
	ShowError(title, message string)
	Confirm(title, message string) (bool, error)
	LogInfof(format string, args ...interface{})
	LogErrorf(format string, args ...interface{})
	EventsEmit(eventName string, args ...interface{})
}

// Deps groups the collaborators of a Service.
type Deps struct {
	Library  *library.Library
	Store    Store
	Icons    IconExtractor
	Banners  BannerImporter
	Launcher Launcher
	Artwork  ArtworkEncoder
	Config   ConfigProvider
	UI       UIProvider
}

// Service handles every user action on the game library.
// It owns the selection, the search text and the filtered view.
type Service struct {
	mu       sync.Mutex
	lib      *library.Library
	store    Store
	icons    IconExtractor
	banners  BannerImporter
	launcher Launcher
	artwork  ArtworkEncoder
	config   ConfigProvider
	ui       UIProvider

	search   string
	view     []types.Game
	selected string
}

// New creates a new Game service.
func New(d Deps) *Service {
	return &Service{
		lib:      d.Library,
		store:    d.Store,
		icons:    d.Icons,
		banners:  d.Banners,
		launcher: d.Launcher,
		artwork:  d.Artwork,
		config:   d.Config,
		ui:       d.UI,
	}
}

// Startup loads the saved library, falling back to the sample games.
func (s *Service) Startup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.EnsureDirs(); err != nil {
		s.ui.LogErrorf("Startup: %v", err)
		s.ui.ShowError("Storage error", err.Error())
	}

	s.lib.Reset()
	saved, err := s.store.Load()
	switch {
	case errors.Is(err, persistence.ErrNoData):
		s.ui.LogInfof("Startup: No saved games, loading defaults")
		s.lib.LoadDefaults()
	case err != nil:
		s.ui.LogErrorf("Startup: %v", err)
		msg := fmt.Sprintf("Error loading games: %s", err.Error())
		if backup, berr := s.store.Backup(); berr == nil {
			msg += fmt.Sprintf("\nThe unreadable file was kept as %s", backup)
		} else {
			s.ui.LogErrorf("Startup: %v", berr)
		}
		s.ui.ShowError("Loading error", msg)
		s.lib.LoadDefaults()
	default:
		for _, sg := range saved {
			s.lib.Add(sg.Nom, sg.IconFile, sg.BannerFile, sg.CheminExe)
		}
		s.ui.LogInfof("Startup: Loaded %d games", len(saved))
	}

	s.selected = ""
	s.rebuildView()
	s.changed()
}

// Shutdown writes the library to disk. Failures are reported, never returned.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(s.lib.All()); err != nil {
		s.ui.LogErrorf("Shutdown: %v", err)
		s.ui.ShowError("Saving error", fmt.Sprintf("Error saving games: %s", err.Error()))
		return
	}
	s.ui.LogInfof("Shutdown: Saved %d games", s.lib.Len())
}

// AddExecutable asks for an executable and registers it as a new game.
func (s *Service) AddExecutable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	exePath, err := s.ui.OpenFileDialog("Select a game executable", []string{constants.ExecutableFilter})
	if err != nil {
		s.ui.ShowError("Error", err.Error())
		return
	}
	if exePath == "" {
		return // cancelled
	}

	name := utils.GameNameFromExe(exePath)

	// A missing icon is not a reason to refuse the game
	iconFile, err := s.icons.Extract(exePath, name)
	if err != nil {
		s.ui.LogErrorf("AddExecutable: %v", err)
		s.ui.ShowError("Icon error", fmt.Sprintf("Could not extract the icon from the file.\nError: %s", err.Error()))
	}

	game := s.lib.Add(name, iconFile, banner.FileName(name), exePath)

	s.rebuildView()
	if !s.visible(game.ID) {
		// Show the new game even if the current search hides it
		s.search = ""
		s.rebuildView()
	}
	s.selected = game.ID
	s.changed()

	s.ui.ShowMessage("Game added", fmt.Sprintf("Game added: %s\nExecutable: %s", name, exePath))
}

// SetExecutable asks for a new executable for the selected game.
func (s *Service) SetExecutable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.selectedGame()
	if !ok {
		s.ui.ShowMessage("No game selected", "Please select a game.")
		return
	}

	exePath, err := s.ui.OpenFileDialog(fmt.Sprintf("Select the executable of %s", game.Name), []string{constants.ExecutableFilter})
	if err != nil {
		s.ui.ShowError("Error", err.Error())
		return
	}
	if exePath == "" {
		return
	}

	updated, _ := s.lib.SetExecutablePath(game.ID, exePath)
	s.rebuildView()
	s.changed()

	s.ui.ShowMessage("Executable selected", fmt.Sprintf("Executable selected for %s:\n%s", updated.Name, updated.ExePath))
}

// ImportBanner asks for a picture and uses it as the banner of the selected game.
func (s *Service) ImportBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.selectedGame()
	if !ok {
		s.ui.ShowMessage("No game selected", "Please select a game.")
		return
	}

	src, err := s.ui.OpenFileDialog(fmt.Sprintf("Select a banner for %s", game.Name), []string{constants.ImageFilter})
	if err != nil {
		s.ui.ShowError("Error", err.Error())
		return
	}
	if src == "" {
		return
	}

	bannerFile, err := s.banners.Import(src, game.Name)
	if err != nil {
		s.ui.LogErrorf("ImportBanner: %v", err)
		s.ui.ShowError("Banner error", fmt.Sprintf("Could not import the picture.\nError: %s", err.Error()))
		return
	}

	s.lib.SetBanner(game.ID, bannerFile)
	s.rebuildView()
	s.changed()
}

// Play launches the selected game.
func (s *Service) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.selectedGame()
	if !ok {
		s.ui.ShowMessage("No game selected", "Please select a game.")
		return
	}

	if err := s.launcher.Launch(game); err != nil {
		s.ui.LogErrorf("Play: %v", err)
		if errors.Is(err, launcher.ErrNoExecutable) {
			s.ui.ShowError("Cannot launch", "No executable selected for this game!")
			return
		}
		s.ui.ShowError("Cannot launch", fmt.Sprintf("Error launching game: %s", err.Error()))
	}
}

// Delete removes the selected game after confirmation.
func (s *Service) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.selectedGame()
	if !ok {
		s.ui.ShowMessage("No game selected", "Please select a game.")
		return
	}

	if s.config.GetConfirmDelete() {
		confirmed, err := s.ui.Confirm("Delete game", fmt.Sprintf("Remove %s from the library?", game.Name))
		if err != nil {
			s.ui.LogErrorf("Delete: %v", err)
			return
		}
		if !confirmed {
			return
		}
	}

	s.lib.Remove(game.ID)
	s.selected = ""
	s.rebuildView()
	s.changed()
	s.ui.LogInfof("Delete: Removed %s", game.Name)
}

// Select changes the selected game. An id that is not in the filtered list clears the selection.
func (s *Service) Select(id string) types.GameDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visible(id) {
		s.selected = id
	} else {
		s.selected = ""
	}
	return s.detail()
}

// Search filters the game list and returns the new list.
func (s *Service) Search(text string) []types.GameListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = text
	s.rebuildView()
	return s.items()
}

// Games returns the filtered game list.
func (s *Service) Games() []types.GameListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items()
}

// Detail returns the detail panel state for the selection.
func (s *Service) Detail() types.GameDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail()
}

// SearchText returns the current search text.
func (s *Service) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// RequestGame explains how to ask for a game to be added to the bundled list.
func (s *Service) RequestGame() {
	s.ui.ShowMessage("Request a game", "To request a new game, send a message on Discord to 'nonock.'")
}

func (s *Service) selectedGame() (types.Game, bool) {
	if s.selected == "" {
		return types.Game{}, false
	}
	return s.lib.Get(s.selected)
}

// rebuildView refilters the list. The selection never points at a hidden game.
func (s *Service) rebuildView() {
	s.view = library.Filter(s.lib.All(), s.search, s.config.GetSearchPlaceholder())
	if s.selected != "" && !s.visible(s.selected) {
		s.selected = ""
	}
}

func (s *Service) visible(id string) bool {
	return id != "" && lo.ContainsBy(s.view, func(g types.Game) bool { return g.ID == id })
}

func (s *Service) changed() {
	s.ui.EventsEmit(constants.EventLibraryChanged)
}

func (s *Service) items() []types.GameListItem {
	return lo.Map(s.view, func(g types.Game, _ int) types.GameListItem {
		icon, err := s.artwork.DataURI(g.IconPath)
		if err != nil {
			s.ui.LogErrorf("Games: icon of %s: %v", g.Name, err)
		}
		return types.GameListItem{
			ID:       g.ID,
			Name:     g.Name,
			Icon:     icon,
			HasExe:   g.ExePath != "",
			Selected: g.ID == s.selected,
		}
	})
}

func (s *Service) detail() types.GameDetail {
	game, ok := s.selectedGame()
	if !ok {
		return types.GameDetail{}
	}

	bannerURI, err := s.artwork.DataURI(game.BannerPath)
	if err != nil {
		s.ui.LogErrorf("Detail: banner of %s: %v", game.Name, err)
		bannerURI = ""
	}

	return types.GameDetail{
		Selected:      true,
		GameID:        game.ID,
		Name:          game.Name,
		ExePath:       game.ExePath,
		Banner:        bannerURI,
		BannerVisible: bannerURI != "",
		PlayVisible:   true,
		SelectExeText: true,
	}
}
