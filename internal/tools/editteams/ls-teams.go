package editteams

import (
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
)

func LsTeams(ctx *Context) error {
	var teams []firestore.Team
	var refs []*fs.DocumentRef
	var err error
	switch {
	case ctx.Tournament != "":
		teams, refs, err = firestore.GetTeamsByTournament(ctx, ctx.FirestoreClient, ctx.Tournament)
	case ctx.Team.Division != "":
		teams, refs, err = firestore.GetTeamsByDivision(ctx, ctx.FirestoreClient, ctx.Team.Division)
	default:
		teams, refs, err = firestore.GetTeams(ctx, ctx.FirestoreClient)
	}
	if err != nil {
		return fmt.Errorf("LsTeams: failed to get teams: %w", err)
	}

	for i, team := range teams {
		fmt.Printf("%s -> %s\n", refs[i].ID, team)
	}
	return nil
}
