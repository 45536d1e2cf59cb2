package types

// AppConfig holds all application settings
type AppConfig struct {
	DataDir           string `json:"data_dir"`            // Per-user writable folder (games.json, extracted icons)
	InstallDir        string `json:"install_dir"`         // Folder holding the bundled default artwork
	SearchPlaceholder string `json:"search_placeholder"`  // Text shown in an empty search box, treated as "no filter"
	BannerWidth       uint   `json:"banner_width"`        // Max width of imported banners
	BannerHeight      uint   `json:"banner_height"`       // Max height of imported banners
	SkipDeleteConfirm bool   `json:"skip_delete_confirm"` // Remove games without asking first
}
