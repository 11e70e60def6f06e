package main

import (
	"github.com/alecthomas/kong"
)

type globalCmd struct {
	ProjectID string `help:"GCP project ID." env:"GCP_PROJECT" required:""`
}

var CLI struct {
	globalCmd

	Teams struct {
		Add        addTeamCmd    `cmd:"" help:"Add a team."`
		Edit       editTeamCmd   `cmd:"" help:"Edit a team."`
		Rm         rmTeamCmd     `cmd:"" help:"Remove a team."`
		Ls         lsTeamsCmd    `cmd:"" help:"List teams."`
		UploadLogo uploadLogoCmd `cmd:"" name:"upload-logo" help:"Upload a team crest and point the team at it."`
	} `cmd:""`

	Players struct {
		Add      addPlayerCmd    `cmd:"" help:"Add a player to a team's roster."`
		Edit     editPlayerCmd   `cmd:"" help:"Edit a roster player."`
		Rm       rmPlayerCmd     `cmd:"" help:"Remove a roster player."`
		Ls       lsPlayersCmd    `cmd:"" help:"List a team's roster."`
		Import   importRosterCmd `cmd:"" help:"Import a roster spreadsheet."`
		SetStats setStatsCmd     `cmd:"" name:"set-stats" help:"Overwrite a player's season totals."`
	} `cmd:""`

	Matches struct {
		Save       saveMatchCmd  `cmd:"" help:"Create or overwrite a match."`
		Rm         rmMatchCmd    `cmd:"" help:"Remove a match and its events."`
		Ls         lsMatchesCmd  `cmd:"" help:"List matches in a bucket."`
		ClearScore clearScoreCmd `cmd:"" name:"clear-score" help:"Remove a match's recorded score."`
		SetRoster  setRosterCmd  `cmd:"" name:"set-roster" help:"Replace one side's match-day squad."`
		Propagate  propagateCmd  `cmd:"" help:"Push decided outcomes into bracket slots."`
	} `cmd:""`

	Events struct {
		Add addEventCmd `cmd:"" help:"Add a timeline event to a match."`
		Rm  rmEventCmd  `cmd:"" help:"Remove a timeline event."`
		Ls  lsEventsCmd `cmd:"" help:"List a match's timeline."`
	} `cmd:""`

	Schedule struct {
		Gen genScheduleCmd `cmd:"" help:"Generate a league schedule for a tournament."`
	} `cmd:""`

	Bracket struct {
		Gen   genBracketCmd   `cmd:"" help:"Seed and write the playoff bracket."`
		Reset resetBracketCmd `cmd:"" help:"Delete every match in a tournament bucket."`
	} `cmd:""`

	Standings struct {
		Show   showStandingsCmd   `cmd:"" help:"Print a league table."`
		Export exportStandingsCmd `cmd:"" help:"Export a league table to an Excel workbook."`
	} `cmd:""`

	Topstats struct {
		Update updateTopStatsCmd `cmd:"" help:"Recompute the published leaderboards."`
		Ls     lsTopStatsCmd     `cmd:"" help:"Print the published leaderboards."`
	} `cmd:""`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
