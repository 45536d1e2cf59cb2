package artwork

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"github.com/wailsapp/mimetype"
)

// DefaultCacheSize is enough for the icons of a large personal library plus a few banners.
const DefaultCacheSize = 256

// Encoder turns local image files into data URIs the web view can display.
type Encoder struct {
	fs    afero.Fs
	cache *lru.Cache[string, string]
}

// New creates an Encoder keeping up to size encoded images.
func New(fs afero.Fs, size int) (*Encoder, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create artwork cache: %w", err)
	}
	return &Encoder{fs: fs, cache: cache}, nil
}

// DataURI returns the data:<mime>;base64,... form of the image at path.
// An empty path yields an empty string.
func (e *Encoder) DataURI(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	info, err := e.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat artwork: %w", err)
	}
	// A rewritten file (e.g. a re-extracted icon) gets a new key
	key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
	if uri, ok := e.cache.Get(key); ok {
		return uri, nil
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read artwork: %w", err)
	}

	mimeType := getMimeType(strings.ToLower(filepath.Ext(path)))
	if mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
	}

	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	e.cache.Add(key, uri)
	return uri, nil
}

func getMimeType(ext string) string {
	switch ext {
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
