package editplayers

import (
	"fmt"
	"log"

	"github.com/amffhub/amfftool/internal/firestore"
)

// SetStats overwrites a player's season totals with ctx.Stats. The stats
// document lives under the player and shares the player's ID.
func SetStats(ctx *Context) error {
	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("SetStats: %w", err)
	}
	player, playerRef, err := firestore.GetPlayer(ctx, teamRef, ctx.ID)
	if err != nil {
		return fmt.Errorf("SetStats: %w", err)
	}

	statsRef := firestore.StatsRef(playerRef)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		log.Printf("%s (%s) -> %s", statsRef.Path, player.FullName(), ctx.Stats)
		return nil
	}

	if !ctx.Force {
		_, existing, err := firestore.GetPlayerStats(ctx, playerRef)
		if err != nil {
			return fmt.Errorf("SetStats: %w", err)
		}
		if existing {
			return fmt.Errorf("SetStats: stats for player %s already exist: use force flag to overwrite", ctx.ID)
		}
	}

	if _, err := statsRef.Set(ctx, &ctx.Stats); err != nil {
		return fmt.Errorf("SetStats: failed to write stats for player %s: %w", ctx.ID, err)
	}
	return nil
}
