package standings

import (
	"fmt"
	"os"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ShowStandings prints the league table for a bucket. Division buckets rank
// the division's teams; tournament buckets rank the entrants over the
// tournament's league-stage matches.
func ShowStandings(ctx *Context) error {
	rows, err := computeStandings(ctx)
	if err != nil {
		return fmt.Errorf("ShowStandings: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"})
	for i, row := range rows {
		t.AppendRow(table.Row{i + 1, row.Name, row.Played, row.Win, row.Draw, row.Loss,
			row.GoalsFor, row.GoalsAgainst, row.GoalDiff(), row.Points})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func computeStandings(ctx *Context) ([]league.Row, error) {
	if !firestore.ValidBucket(ctx.Bucket) {
		return nil, fmt.Errorf("bucket must be one of %v", firestore.Buckets)
	}

	var teams []firestore.Team
	var teamRefs []*fs.DocumentRef
	var err error
	if firestore.ValidDivision(ctx.Bucket) {
		teams, teamRefs, err = firestore.GetTeamsByDivision(ctx, ctx.FirestoreClient, ctx.Bucket)
	} else {
		teams, teamRefs, err = firestore.GetTeamsByTournament(ctx, ctx.FirestoreClient, ctx.Bucket)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	matches, _, err := firestore.GetMatches(ctx, ctx.FirestoreClient, ctx.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	lteams := make([]league.Team, len(teams))
	for i, t := range teams {
		lteams[i] = league.Team{ID: teamRefs[i].ID, Name: t.Name}
	}
	results := make([]league.Result, 0, len(matches))
	for _, m := range matches {
		stage := m.Stage
		if stage == "" {
			stage = league.StageLeague
		}
		if stage != league.StageLeague {
			continue
		}
		score, ok := m.Result()
		if !ok {
			continue
		}
		results = append(results, league.Result{Home: m.Home, Away: m.Away, Score: score})
	}

	if ctx.HeadToHead {
		return league.StandingsHeadToHead(lteams, results), nil
	}
	return league.Standings(lteams, results), nil
}
