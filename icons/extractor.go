// Package icons pulls the application icon out of Windows executables.
//
// The executable's PE resource section is read directly, so extraction works
// the same on every OS the launcher runs on.
package icons

import (
	"io"
	"path/filepath"
	"steamhack/constants"
	"steamhack/utils"
	"steamhack/utils/fileio"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tc-hib/winres"
)

// ErrNoIcon is returned when an executable carries no icon group resource.
var ErrNoIcon = errors.New("executable has no icon")

// ConfigProvider defines the configuration needed to store extracted icons.
type ConfigProvider interface {
	GetDataDir() string
}

// Extractor writes executable icons into <data dir>/img/icon.
type Extractor struct {
	fs     afero.Fs
	config ConfigProvider
}

// New creates a new Extractor.
func New(fs afero.Fs, cfg ConfigProvider) *Extractor {
	return &Extractor{
		fs:     fs,
		config: cfg,
	}
}

// FileName returns the icon file name used for a game.
func FileName(gameName string) string {
	return utils.SafeFileName(gameName) + constants.IconExt
}

// IconPath returns where the icon of gameName is stored.
func (e *Extractor) IconPath(gameName string) string {
	return filepath.Join(utils.ImageDir(e.config.GetDataDir(), constants.IconDir), FileName(gameName))
}

// Extract saves the first icon of exePath as <gameName>.ico and returns that file name.
// On failure the file name is empty.
func (e *Extractor) Extract(exePath, gameName string) (string, error) {
	dir := utils.ImageDir(e.config.GetDataDir(), constants.IconDir)
	if err := e.fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating icon folder %s", dir)
	}

	f, err := e.fs.Open(exePath)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", exePath)
	}
	defer fileio.Close(f, nil, "close executable")

	icon, err := readIcon(f)
	if err != nil {
		return "", errors.Wrapf(err, "extracting icon from %s", filepath.Base(exePath))
	}

	if err := e.save(icon, gameName); err != nil {
		return "", err
	}
	return FileName(gameName), nil
}

func (e *Extractor) save(icon *winres.Icon, gameName string) error {
	path := e.IconPath(gameName)
	err := fileio.WriteFile(e.fs, path, func(w io.Writer) error {
		return icon.SaveICO(w)
	})
	return errors.Wrapf(err, "writing %s", path)
}

func readIcon(exe io.ReadSeeker) (*winres.Icon, error) {
	rs, err := winres.LoadFromEXE(exe)
	if err != nil {
		return nil, errors.Wrap(err, "reading resources")
	}
	return firstIcon(rs)
}

// firstIcon picks the first icon group, which is what Windows shows for the file.
func firstIcon(rs *winres.ResourceSet) (*winres.Icon, error) {
	var (
		groupID winres.Identifier
		langID  uint16
		found   bool
	)
	rs.WalkType(winres.RT_GROUP_ICON, func(resID winres.Identifier, lang uint16, _ []byte) bool {
		groupID, langID, found = resID, lang, true
		return false
	})
	if !found {
		return nil, ErrNoIcon
	}
	return rs.GetIconTranslation(groupID, langID)
}
