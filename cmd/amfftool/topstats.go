package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/tools/topstats"
)

type updateTopStatsCmd struct {
	DryRun     bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool     `help:"Force rewriting the published leaderboards." xor:"Force,DryRun"`
	Division   []string `help:"Division to publish. Repeatable; empty publishes all."`
	Top        int      `help:"Number of entries per leaderboard." default:"6"`
	NoProgress bool     `help:"Hide the progress bar."`
}

func (a *updateTopStatsCmd) Run(g *globalCmd) error {
	ctx, err := newTopStatsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Divisions = a.Division
	ctx.TopN = a.Top
	ctx.NoProgress = a.NoProgress
	return topstats.UpdateTopStats(ctx)
}

type lsTopStatsCmd struct {
	Division []string `help:"Division to print. Repeatable; empty prints all."`
}

func (a *lsTopStatsCmd) Run(g *globalCmd) error {
	ctx, err := newTopStatsContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.Divisions = a.Division
	return topstats.LsTopStats(ctx)
}

func newTopStatsContext(g *globalCmd, dryRun, force bool) (*topstats.Context, error) {
	ctx := topstats.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
