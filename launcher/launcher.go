package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"steamhack/constants"
	"steamhack/types"
	"steamhack/utils/fileio"

	"github.com/spf13/afero"
)

// ErrNoExecutable is returned when a game has no executable or it is gone from disk.
var ErrNoExecutable = errors.New("no executable selected for this game")

// UIProvider defines logging and event emission.
type UIProvider interface {
	LogInfof(format string, args ...interface{})
	LogErrorf(format string, args ...interface{})
	EventsEmit(eventName string, args ...interface{})
}

// Launcher starts game executables.
type Launcher struct {
	fs    afero.Fs
	ui    UIProvider
	start func(cmd *exec.Cmd) error
	wait  func(cmd *exec.Cmd) error
}

// New creates a new Launcher checking executables on fs.
func New(fs afero.Fs, ui UIProvider) *Launcher {
	return &Launcher{
		fs:    fs,
		ui:    ui,
		start: (*exec.Cmd).Start,
		wait:  (*exec.Cmd).Wait,
	}
}

// Launch starts the game's executable from its own folder so it finds its relative assets.
// It does not wait for the game to exit.
func (l *Launcher) Launch(game types.Game) error {
	if game.ExePath == "" || !fileio.Exists(l.fs, game.ExePath) {
		return fmt.Errorf("%w: %s", ErrNoExecutable, game.Name)
	}

	cmd := buildCommand(game.ExePath)

	l.ui.LogInfof("Launch: Starting %s (%s) in %s", game.Name, game.ExePath, cmd.Dir)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to launch %s: %w", game.Name, err)
	}
	l.ui.EventsEmit(constants.EventGameStarted, game.ID)

	// Reap the child in the background so it never lingers as a zombie
	go func() {
		if err := l.wait(cmd); err != nil {
			l.ui.LogErrorf("Launch: %s exited with error: %v", game.Name, err)
		} else {
			l.ui.LogInfof("Launch: %s exited", game.Name)
		}
		l.ui.EventsEmit(constants.EventGameExited, game.ID)
	}()

	return nil
}

func buildCommand(exePath string) *exec.Cmd {
	cmd := exec.Command(exePath)
	cmd.Dir = filepath.Dir(exePath)
	detach(cmd)
	return cmd
}
