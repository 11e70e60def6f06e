package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/tools/genbracket"
	"github.com/amffhub/amfftool/internal/tools/genschedule"
	"github.com/amffhub/amfftool/internal/tools/standings"
)

type genScheduleCmd struct {
	DryRun     bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool   `help:"Wipe the bucket and skip the entrant-count check without asking." xor:"Force,DryRun"`
	Tournament string `arg:"" help:"Tournament to schedule." required:""`
	Seed       string `help:"Seed phrase for a reproducible draw. Empty draws from the clock."`
	MaxRounds  int    `help:"Maximum number of match days to keep." default:"10"`
	StartDate  string `help:"First match day in YYYY-MM-DD form. Empty means tomorrow."`
	Kickoff    string `help:"Shared kickoff time in HH:MM form." default:"20:00"`
	NoProgress bool   `help:"Hide the progress bar."`
}

func (a *genScheduleCmd) Run(g *globalCmd) error {
	ctx := genschedule.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Tournament = a.Tournament
	ctx.Seed = a.Seed
	ctx.MaxRounds = a.MaxRounds
	ctx.StartDate = a.StartDate
	ctx.KickoffAt = a.Kickoff
	ctx.NoProgress = a.NoProgress
	return genschedule.GenSchedule(ctx)
}

type genBracketCmd struct {
	DryRun     bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool   `help:"Overwrite an existing bracket without asking." xor:"Force,DryRun"`
	Tournament string `arg:"" help:"Tournament to seed." required:""`
	NoProgress bool   `help:"Hide the progress bar."`
}

func (a *genBracketCmd) Run(g *globalCmd) error {
	ctx, err := newBracketContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Tournament = a.Tournament
	ctx.NoProgress = a.NoProgress
	return genbracket.GenBracket(ctx)
}

type resetBracketCmd struct {
	DryRun     bool   `help:"Print database deletes to log and exit without deleting." xor:"Force,DryRun"`
	Force      bool   `help:"Delete without asking for confirmation." xor:"Force,DryRun"`
	Tournament string `arg:"" help:"Tournament bucket to empty." required:""`
}

func (a *resetBracketCmd) Run(g *globalCmd) error {
	ctx, err := newBracketContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Tournament = a.Tournament
	return genbracket.ResetBracket(ctx)
}

type showStandingsCmd struct {
	Bucket     string `arg:"" help:"Division or tournament to rank." required:""`
	HeadToHead bool   `help:"Break equal-points groups by head-to-head mini-tables."`
}

func (a *showStandingsCmd) Run(g *globalCmd) error {
	ctx, err := newStandingsContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.HeadToHead = a.HeadToHead
	return standings.ShowStandings(ctx)
}

type exportStandingsCmd struct {
	DryRun     bool   `help:"Print writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool   `help:"Force overwriting the output file." xor:"Force,DryRun"`
	Bucket     string `arg:"" help:"Division or tournament to rank." required:""`
	Output     string `arg:"" help:"Output workbook. Can be either a local path or a Google Storage URL starting with 'gs://'." required:""`
	HeadToHead bool   `help:"Break equal-points groups by head-to-head mini-tables."`
}

func (a *exportStandingsCmd) Run(g *globalCmd) error {
	ctx, err := newStandingsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.HeadToHead = a.HeadToHead
	ctx.Output = a.Output
	return standings.ExportStandings(ctx)
}

func newBracketContext(g *globalCmd, dryRun, force bool) (*genbracket.Context, error) {
	ctx := genbracket.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

func newStandingsContext(g *globalCmd, dryRun, force bool) (*standings.Context, error) {
	ctx := standings.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
