package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/tools/editevents"
)

type addEventCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force  bool   `help:"Force overwriting data in database." xor:"Force,DryRun"`
	Bucket string `arg:"" help:"Bucket the match belongs to." required:""`
	Match  string `arg:"" help:"ID of match the event belongs to." required:""`
	Minute int    `help:"Match minute." required:""`
	Type   string `help:"Event type." required:""`
	Team   string `help:"Crediting side: home or away." required:""`
	Player string `help:"ID of the credited player on the team's roster."`
}

func (a *addEventCmd) Run(g *globalCmd) error {
	ctx, err := newEventsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.MatchID = a.Match
	ctx.Event = firestore.MatchEvent{
		Minute:   a.Minute,
		Type:     a.Type,
		TeamKey:  a.Team,
		PlayerID: a.Player,
	}
	return editevents.AddEvent(ctx)
}

type rmEventCmd struct {
	DryRun bool   `help:"Print database deletes to log and exit without deleting." xor:"Force,DryRun"`
	Force  bool   `help:"Delete without asking for confirmation." xor:"Force,DryRun"`
	Bucket string `arg:"" help:"Bucket the match belongs to." required:""`
	Match  string `arg:"" help:"ID of match the event belongs to." required:""`
	ID     string `arg:"" help:"ID of event to remove." required:""`
}

func (a *rmEventCmd) Run(g *globalCmd) error {
	ctx, err := newEventsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.MatchID = a.Match
	ctx.ID = a.ID
	return editevents.RmEvent(ctx)
}

type lsEventsCmd struct {
	Bucket string `arg:"" help:"Bucket the match belongs to." required:""`
	Match  string `arg:"" help:"ID of match whose timeline to list." required:""`
}

func (a *lsEventsCmd) Run(g *globalCmd) error {
	ctx, err := newEventsContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.MatchID = a.Match
	return editevents.LsEvents(ctx)
}

func newEventsContext(g *globalCmd, dryRun, force bool) (*editevents.Context, error) {
	ctx := editevents.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
