package engine

import "github.com/genricoloni/mediactl/internal/domain"

// ResolveActive returns the index of the first player whose stable id equals
// lastID. It returns 0 when nothing matches (first run, player closed) and
// when players is empty; callers check for an empty roster themselves.
func ResolveActive(players []domain.Player, lastID string) int {
	if lastID == "" {
		return 0
	}
	for i, p := range players {
		if p.StableID() == lastID {
			return i
		}
	}
	return 0
}
