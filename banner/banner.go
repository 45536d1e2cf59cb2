package banner

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"steamhack/constants"
	"steamhack/utils"
	"steamhack/utils/fileio"

	"github.com/nfnt/resize"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ConfigProvider defines the configuration needed to import banners.
type ConfigProvider interface {
	GetDataDir() string
	GetBannerSize() (uint, uint)
}

// Importer copies user pictures into <data dir>/img/banner as JPEG.
type Importer struct {
	fs     afero.Fs
	config ConfigProvider
}

// New creates a new Importer.
func New(fs afero.Fs, cfg ConfigProvider) *Importer {
	return &Importer{
		fs:     fs,
		config: cfg,
	}
}

// FileName returns the banner file name used for a game.
func FileName(gameName string) string {
	return utils.SafeFileName(gameName) + constants.BannerSuffix
}

// Import decodes srcPath, shrinks it to the configured banner size and stores it
// as <gameName>_banner.jpg. It returns the stored file name.
func (i *Importer) Import(srcPath, gameName string) (string, error) {
	img, err := i.decode(srcPath)
	if err != nil {
		return "", err
	}

	// Thumbnail keeps the aspect ratio and never upscales
	if maxW, maxH := i.config.GetBannerSize(); maxW > 0 && maxH > 0 {
		img = resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)
	}

	dir := utils.ImageDir(i.config.GetDataDir(), constants.BannerDir)
	if err := i.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create banner folder: %w", err)
	}

	name := FileName(gameName)
	err = fileio.WriteFile(i.fs, filepath.Join(dir, name), func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	})
	if err != nil {
		return "", fmt.Errorf("failed to write banner: %w", err)
	}
	return name, nil
}

func (i *Importer) decode(srcPath string) (image.Image, error) {
	f, err := i.fs.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open picture: %w", err)
	}
	defer fileio.Close(f, nil, "close picture")

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(srcPath), err)
	}
	return img, nil
}
