package editmatches

import (
	"context"
	"fmt"
	"log"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
)

// SetRoster replaces one side's match-day squad. Every listed player must
// exist on the fielding team's roster. With ctx.BumpGames, each player's
// games total is incremented as well.
func SetRoster(ctx *Context) error {
	if ctx.Side != "home" && ctx.Side != "away" {
		return fmt.Errorf("SetRoster: side must be 'home' or 'away'")
	}
	if len(ctx.Roster) == 0 {
		return fmt.Errorf("SetRoster: at least one roster entry must be specified")
	}

	match, ref, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.ID)
	if err != nil {
		return fmt.Errorf("SetRoster: %w", err)
	}

	teamID := match.Home
	field := "roster_home"
	if ctx.Side == "away" {
		teamID = match.Away
		field = "roster_away"
	}
	if teamID == "" {
		return fmt.Errorf("SetRoster: the %s slot of match %s is not resolved yet", ctx.Side, ctx.ID)
	}

	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, teamID)
	if err != nil {
		return fmt.Errorf("SetRoster: %w", err)
	}

	playerRefs := make([]*fs.DocumentRef, len(ctx.Roster))
	for i, entry := range ctx.Roster {
		_, pref, err := firestore.GetPlayer(ctx, teamRef, entry.PlayerID)
		if err != nil {
			return fmt.Errorf("SetRoster: %w", err)
		}
		playerRefs[i] = pref
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		log.Printf("%s: %s to %d entries", ref.Path, field, len(ctx.Roster))
		if ctx.BumpGames {
			for _, pref := range playerRefs {
				log.Printf("%s: games +1", firestore.StatsRef(pref).Path)
			}
		}
		return nil
	}

	err = ctx.FirestoreClient.RunTransaction(ctx, func(c context.Context, t *fs.Transaction) error {
		if err := t.Update(ref, []fs.Update{{Path: field, Value: ctx.Roster}}); err != nil {
			return err
		}
		if !ctx.BumpGames {
			return nil
		}
		for _, pref := range playerRefs {
			if err := t.Set(firestore.StatsRef(pref), map[string]interface{}{"games": fs.Increment(1)}, fs.MergeAll); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("SetRoster: failed to write roster for match %s: %w", ctx.ID, err)
	}
	return nil
}
