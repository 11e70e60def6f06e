package editteams

import (
	"context"
	"fmt"
	"log"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
)

// EditTeam updates individual fields of a team document. Empty fields of
// ctx.Team are left untouched. With ctx.Append, the tournaments list is
// appended to rather than replaced.
func EditTeam(ctx *Context) error {
	newTeam := ctx.Team
	if newTeam.Name == "" && newTeam.Division == "" && newTeam.Logo == "" && len(newTeam.Tournaments) == 0 {
		return fmt.Errorf("EditTeam: at least one field to edit must be specified")
	}
	if newTeam.Division != "" && !firestore.ValidDivision(newTeam.Division) {
		return fmt.Errorf("EditTeam: division must be one of %v", firestore.Divisions)
	}

	team, ref, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.ID)
	if err != nil {
		return fmt.Errorf("EditTeam: %w", err)
	}

	tournaments := newTeam.Tournaments
	if ctx.Append {
		tournaments = appendDistinct(team.Tournaments, newTeam.Tournaments...)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would make the following edits:")
		log.Printf("%s: %s", ref.Path, team)
		if newTeam.Name != "" {
			log.Printf("Name to '%s'", newTeam.Name)
		}
		if newTeam.Division != "" {
			log.Printf("Division to '%s'", newTeam.Division)
		}
		if newTeam.Logo != "" {
			log.Printf("Logo to '%s'", newTeam.Logo)
		}
		if len(newTeam.Tournaments) != 0 {
			log.Printf("Tournaments to '%v'", tournaments)
		}
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("EditTeam: edit of teams is dangerous: use force flag to force edit")
	}

	err = ctx.FirestoreClient.RunTransaction(ctx, func(c context.Context, t *fs.Transaction) error {
		updates := make([]fs.Update, 0, 4)
		if newTeam.Name != "" {
			updates = append(updates, fs.Update{Path: "name", Value: newTeam.Name})
		}
		if newTeam.Division != "" {
			updates = append(updates, fs.Update{Path: "division", Value: newTeam.Division})
		}
		if newTeam.Logo != "" {
			updates = append(updates, fs.Update{Path: "logo", Value: newTeam.Logo})
		}
		if len(newTeam.Tournaments) != 0 {
			updates = append(updates, fs.Update{Path: "tournaments", Value: tournaments})
		}
		return t.Update(ref, updates)
	})
	if err != nil {
		return fmt.Errorf("EditTeam: failed to update team %s: %w", ctx.ID, err)
	}
	return nil
}

func appendDistinct(v []string, s ...string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(v)+len(s))
	for _, a := range v {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	for _, a := range s {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
