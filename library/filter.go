package library

import (
	"steamhack/types"
	"strings"

	"github.com/samber/lo"
)

// Filter returns the games whose name contains text, ignoring case.
// Blank text, or text equal to the search box placeholder, returns every game.
func Filter(games []types.Game, text, placeholder string) []types.Game {
	filter := strings.ToLower(text)
	if strings.TrimSpace(filter) == "" || (placeholder != "" && filter == strings.ToLower(placeholder)) {
		out := make([]types.Game, len(games))
		copy(out, games)
		return out
	}

	return lo.Filter(games, func(g types.Game, _ int) bool {
		return strings.Contains(strings.ToLower(g.Name), filter)
	})
}
