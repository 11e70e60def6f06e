package topstats

import (
	"fmt"

	"github.com/amffhub/amfftool/internal/firestore"
)

// LsTopStats prints the published leaderboards for the selected divisions.
func LsTopStats(ctx *Context) error {
	divisions := ctx.Divisions
	if len(divisions) == 0 {
		divisions = firestore.Divisions
	}

	for _, division := range divisions {
		if !firestore.ValidDivision(division) {
			return fmt.Errorf("LsTopStats: division must be one of %v", firestore.Divisions)
		}
		for _, cat := range firestore.StatCategories {
			entries, err := firestore.GetLeaderboard(ctx, ctx.FirestoreClient, division, cat)
			if err != nil {
				return fmt.Errorf("LsTopStats: %w", err)
			}
			fmt.Printf("%s / %s\n", division, cat.Collection)
			for i, e := range entries {
				fmt.Printf("%2d. %s (%s): %d\n", i+1, e.Name, e.Team, e.Value)
			}
		}
	}
	return nil
}
