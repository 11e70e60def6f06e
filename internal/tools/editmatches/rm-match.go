package editmatches

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
)

// RmMatch deletes a match document and its events subcollection.
func RmMatch(ctx *Context) error {
	match, ref, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.ID)
	if err != nil {
		return fmt.Errorf("RmMatch: %w", err)
	}
	_, eventRefs, err := firestore.GetEvents(ctx, ref)
	if err != nil {
		return fmt.Errorf("RmMatch: %w", err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following:")
		log.Printf("%s: %s", ref.Path, match)
		for _, er := range eventRefs {
			log.Printf("%s", er.Path)
		}
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete match '%s vs %s' (%s) and its %d events?", match.HomeName, match.AwayName, ctx.ID, len(eventRefs)),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("RmMatch: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	for _, er := range eventRefs {
		if _, err := er.Delete(ctx); err != nil {
			return fmt.Errorf("RmMatch: failed to delete event %s: %w", er.ID, err)
		}
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("RmMatch: failed to delete match %s: %w", ctx.ID, err)
	}
	return nil
}
