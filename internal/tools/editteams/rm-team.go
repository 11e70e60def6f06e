package editteams

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
)

// RmTeam deletes a team document. The roster subcollection is not touched:
// Firestore does not cascade deletes, so orphaned players must be removed
// separately.
func RmTeam(ctx *Context) error {
	team, ref, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.ID)
	if err != nil {
		return fmt.Errorf("RmTeam: %w", err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following:")
		log.Printf("%s: %s", ref.Path, team)
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete team '%s' (%s)? Players under it will be orphaned.", team.Name, ctx.ID),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("RmTeam: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("RmTeam: failed to delete team %s: %w", ctx.ID, err)
	}
	return nil
}
