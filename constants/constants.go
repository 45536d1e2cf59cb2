package constants

// OSWindows is the GOOS value of Windows
const OSWindows = "windows"

// Event Names
const (
	EventLibraryChanged = "library-changed"
	EventGameStarted    = "game-started"
	EventGameExited     = "game-exited"
)

// Path Components
const (
	AppDir       = "SteamHack"
	DataFileName = "games.json"
	BackupSuffix = ".bak"
	ConfigFile   = "config.json"
	ImgDir       = "img"
	IconDir      = "icon"
	BannerDir    = "banner"
)

// File name conventions
const (
	IconExt      = ".ico"
	BannerSuffix = "_banner.jpg"
)

// UI defaults
const (
	DefaultSearchPlaceholder = "Search for a game..."
	DefaultBannerWidth       = 920
	DefaultBannerHeight      = 430
)

// ExecutableFilter is the pattern offered by the executable picker
const ExecutableFilter = "*.exe"

// ImageFilter is the pattern offered by the banner picker
const ImageFilter = "*.jpg;*.jpeg;*.png;*.gif;*.bmp;*.webp"
