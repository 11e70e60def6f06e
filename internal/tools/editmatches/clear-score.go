package editmatches

import (
	"context"
	"fmt"
	"log"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
)

// ClearScore removes the score field from a match, returning it to the
// unplayed state. Slots already propagated downstream are not unwound:
// re-propagation only ever fills slots, so stale fills must be edited by
// hand.
func ClearScore(ctx *Context) error {
	match, ref, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.ID)
	if err != nil {
		return fmt.Errorf("ClearScore: %w", err)
	}
	if match.Score == "" {
		log.Printf("Match %s has no score to clear", ctx.ID)
		return nil
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would make the following edits:")
		log.Printf("%s: score '%s' removed", ref.Path, match.Score)
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("ClearScore: clearing a recorded score is dangerous: use force flag to force clear")
	}

	err = ctx.FirestoreClient.RunTransaction(ctx, func(c context.Context, t *fs.Transaction) error {
		return t.Update(ref, []fs.Update{{Path: "score", Value: fs.Delete}})
	})
	if err != nil {
		return fmt.Errorf("ClearScore: failed to update match %s: %w", ctx.ID, err)
	}
	return nil
}
