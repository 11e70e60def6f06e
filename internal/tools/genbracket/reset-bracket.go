package genbracket

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
)

// ResetBracket deletes every match in the tournament bucket, league and
// playoff alike.
func ResetBracket(ctx *Context) error {
	if !firestore.ValidBucket(ctx.Tournament) {
		return fmt.Errorf("ResetBracket: tournament must be one of %v", firestore.Buckets)
	}

	col := firestore.GamesCollection(ctx.FirestoreClient, ctx.Tournament)
	refs, err := col.DocumentRefs(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("ResetBracket: failed to list matches: %w", err)
	}
	if len(refs) == 0 {
		log.Printf("Bucket %s is already empty", ctx.Tournament)
		return nil
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following:")
		for _, ref := range refs {
			log.Printf("%s", ref.Path)
		}
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete all %d matches in matches/%s/games?", len(refs), ctx.Tournament),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("ResetBracket: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	for _, ref := range refs {
		if _, err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("ResetBracket: failed to delete match %s: %w", ref.ID, err)
		}
	}
	log.Printf("Deleted %d matches from bucket %s", len(refs), ctx.Tournament)
	return nil
}
