package main

import (
	"context"
	"fmt"

	"steamhack/artwork"
	"steamhack/banner"
	"steamhack/config"
	"steamhack/gamesrv"
	"steamhack/icons"
	"steamhack/launcher"
	"steamhack/library"
	"steamhack/persistence"
	"steamhack/types"

	"github.com/spf13/afero"
)

// UIProvider is everything the services need from the window.
type UIProvider interface {
	gamesrv.UIProvider
	launcher.UIProvider
}

// App struct
type App struct {
	ctx           context.Context
	configManager *config.ConfigManager
	ui            *wailsUI
	games         *gamesrv.Service
}

// NewApp creates a new App application struct backed by the real filesystem
func NewApp(cm *config.ConfigManager) (*App, error) {
	ui := &wailsUI{}
	games, err := newGameService(cm, afero.NewOsFs(), ui)
	if err != nil {
		return nil, err
	}
	return &App{
		configManager: cm,
		ui:            ui,
		games:         games,
	}, nil
}

func newGameService(cm *config.ConfigManager, fs afero.Fs, ui UIProvider) (*gamesrv.Service, error) {
	art, err := artwork.New(fs, artwork.DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to set up artwork: %w", err)
	}
	return gamesrv.New(gamesrv.Deps{
		Library:  library.New(fs, cm),
		Store:    persistence.New(fs, cm),
		Icons:    icons.New(fs, cm),
		Banners:  banner.New(fs, cm),
		Launcher: launcher.New(fs, ui),
		Artwork:  art,
		Config:   cm,
		UI:       ui,
	}), nil
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.ui.ctx = ctx
	a.games.Startup()
}

// beforeClose saves the library while the window can still show errors
func (a *App) beforeClose(ctx context.Context) bool {
	a.games.Shutdown()
	return false
}

// GetGames returns the filtered game list
func (a *App) GetGames() []types.GameListItem {
	return a.games.Games()
}

// GetDetail returns the detail panel state
func (a *App) GetDetail() types.GameDetail {
	return a.games.Detail()
}

// GetSearchPlaceholder returns the text shown in an empty search box
func (a *App) GetSearchPlaceholder() string {
	return a.configManager.GetSearchPlaceholder()
}

// GetSearchText returns the search text the list is filtered with
func (a *App) GetSearchText() string {
	return a.games.SearchText()
}

// SelectGame changes the selected game
func (a *App) SelectGame(id string) types.GameDetail {
	return a.games.Select(id)
}

// Search filters the game list
func (a *App) Search(text string) []types.GameListItem {
	return a.games.Search(text)
}

// AddExecutable registers a new game from an executable
func (a *App) AddExecutable() {
	a.games.AddExecutable()
}

// SetExecutable changes the executable of the selected game
func (a *App) SetExecutable() {
	a.games.SetExecutable()
}

// ImportBanner sets the banner of the selected game
func (a *App) ImportBanner() {
	a.games.ImportBanner()
}

// Play launches the selected game
func (a *App) Play() {
	a.games.Play()
}

// DeleteGame removes the selected game
func (a *App) DeleteGame() {
	a.games.Delete()
}

// RequestGame explains how to ask for a new bundled game
func (a *App) RequestGame() {
	a.games.RequestGame()
}
