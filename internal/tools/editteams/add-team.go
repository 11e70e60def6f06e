package editteams

import (
	"fmt"
	"log"

	"github.com/amffhub/amfftool/internal/firestore"
)

// AddTeam creates a team document. The document ID comes from ctx.ID; the
// team fields come from ctx.Team.
func AddTeam(ctx *Context) error {
	if ctx.ID == "" {
		return fmt.Errorf("AddTeam: team ID must be specified")
	}
	if ctx.Team.Name == "" {
		return fmt.Errorf("AddTeam: team name must be specified")
	}
	if !firestore.ValidDivision(ctx.Team.Division) {
		return fmt.Errorf("AddTeam: division must be one of %v", firestore.Divisions)
	}

	ref := ctx.FirestoreClient.Collection(firestore.TEAMS_COLLECTION).Doc(ctx.ID)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		log.Printf("%s -> %s", ref.Path, ctx.Team)
		return nil
	}

	var err error
	if ctx.Force {
		_, err = ref.Set(ctx, &ctx.Team)
	} else {
		_, err = ref.Create(ctx, &ctx.Team)
	}
	if err != nil {
		return fmt.Errorf("AddTeam: failed to write team %s: %w", ctx.ID, err)
	}
	return nil
}
