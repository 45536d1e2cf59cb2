package types

// Game is a registered game in the library
type Game struct {
	ID         string `json:"id"`          // Stable in-session handle, never persisted
	Name       string `json:"name"`        // Display name
	IconPath   string `json:"icon_path"`   // Resolved icon file, empty when none was found
	BannerPath string `json:"banner_path"` // Resolved banner file, empty when none was found
	ExePath    string `json:"exe_path"`    // Empty means "not yet located"
}

// SavedGame is the on-disk form of a Game inside games.json.
// Field names are part of the file format and must not change.
type SavedGame struct {
	Nom        string `json:"Nom"`
	IconFile   string `json:"IconFile"`
	BannerFile string `json:"BannerFile"`
	CheminExe  string `json:"CheminExe"`
}

// GameDetail is the state of the detail panel for the current selection
type GameDetail struct {
	Selected      bool   `json:"selected"`
	GameID        string `json:"game_id"`
	Name          string `json:"name"`
	ExePath       string `json:"exe_path"`
	Banner        string `json:"banner"` // data URI of the banner, empty when hidden
	BannerVisible bool   `json:"banner_visible"`
	PlayVisible   bool   `json:"play_visible"`
	SelectExeText bool   `json:"select_exe_visible"`
}

// GameListItem is one row of the game list shown by the frontend
type GameListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"` // data URI, empty when the game has no icon
	HasExe   bool   `json:"has_exe"`
	Selected bool   `json:"selected"`
}
