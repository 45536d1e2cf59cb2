package utils

import (
	"path/filepath"
	"steamhack/constants"
	"strings"
)

// reservedChars cannot appear in a Windows file name.
const reservedChars = `<>:"/\|?*`

// SafeFileName turns a game name into something usable as a file name on every OS.
// Reserved and control characters become underscores, trailing dots and spaces are dropped.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(reservedChars, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	// Windows silently strips these, which would make two names collide
	p := strings.TrimRight(strings.TrimSpace(b.String()), ". ")
	if p == "" || p == "." || p == ".." {
		return "game"
	}
	return p
}

// ImageDir returns <base>/img/<kind> where kind is constants.IconDir or constants.BannerDir.
func ImageDir(base, kind string) string {
	return filepath.Join(base, constants.ImgDir, kind)
}

// GameNameFromExe derives the default game name from an executable path.
func GameNameFromExe(exePath string) string {
	base := filepath.Base(exePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
