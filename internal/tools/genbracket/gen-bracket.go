package genbracket

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
	"github.com/schollz/progressbar/v3"
)

// GenBracket seeds the playoff bracket from the tournament's league table
// and writes the 30 placeholder matches. League matches in the bucket are
// left alone; existing playoff matches are overwritten.
func GenBracket(ctx *Context) error {
	if !firestore.ValidBucket(ctx.Tournament) {
		return fmt.Errorf("GenBracket: tournament must be one of %v", firestore.Buckets)
	}

	teams, teamRefs, err := firestore.GetTeamsByTournament(ctx, ctx.FirestoreClient, ctx.Tournament)
	if err != nil {
		return fmt.Errorf("GenBracket: failed to get teams: %w", err)
	}
	matches, _, err := firestore.GetMatches(ctx, ctx.FirestoreClient, ctx.Tournament)
	if err != nil {
		return fmt.Errorf("GenBracket: failed to get matches: %w", err)
	}

	lteams := make([]league.Team, len(teams))
	for i, t := range teams {
		lteams[i] = league.Team{ID: teamRefs[i].ID, Name: t.Name}
	}

	results := make([]league.Result, 0, len(matches))
	leagueSeen := false
	playoffSeen := 0
	for _, m := range matches {
		stage := m.Stage
		if stage == "" {
			stage = league.StageLeague
		}
		if stage != league.StageLeague {
			playoffSeen++
			continue
		}
		leagueSeen = true
		score, ok := m.Result()
		if !ok {
			continue
		}
		results = append(results, league.Result{Home: m.Home, Away: m.Away, Score: score})
	}
	if !leagueSeen {
		return fmt.Errorf("GenBracket: tournament %s has no league matches to seed from", ctx.Tournament)
	}

	table := league.Standings(lteams, results)
	seeding := make([]string, len(table))
	for i, row := range table {
		seeding[i] = row.ID
	}

	plans, err := league.PlayoffBracket(seeding)
	if err != nil {
		return fmt.Errorf("GenBracket: %w", err)
	}

	names := firestore.TeamNames(teams, teamRefs)
	col := firestore.GamesCollection(ctx.FirestoreClient, ctx.Tournament)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		for _, plan := range plans {
			log.Printf("%s -> %s", col.Doc(plan.ID).Path, planMatch(plan, names))
		}
		return nil
	}

	if playoffSeen > 0 && !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Bucket %s already holds %d playoff matches. Overwrite the bracket?", ctx.Tournament, playoffSeen),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("GenBracket: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	bar := progressbar.NewOptions(len(plans), progressbar.OptionSetVisibility(!ctx.NoProgress))
	for _, plan := range plans {
		m := planMatch(plan, names)
		if _, err := col.Doc(plan.ID).Set(ctx, &m); err != nil {
			return fmt.Errorf("GenBracket: failed to write match %s: %w", plan.ID, err)
		}
		bar.Add(1)
	}
	log.Printf("Generated %d bracket matches for tournament %s", len(plans), ctx.Tournament)
	return nil
}

func planMatch(plan league.MatchPlan, names map[string]string) firestore.Match {
	return firestore.Match{
		Stage:     plan.Stage,
		GameIndex: plan.GameIndex,
		Label:     plan.Label,
		Home:      plan.Home,
		Away:      plan.Away,
		HomeName:  names[plan.Home],
		AwayName:  names[plan.Away],
		HomeFrom:  plan.HomeFrom.String(),
		AwayFrom:  plan.AwayFrom.String(),
	}
}
