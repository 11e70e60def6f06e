package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/tools/editplayers"
)

type addPlayerCmd struct {
	DryRun   bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force    bool   `help:"Force overwriting data in database." xor:"Force,DryRun"`
	Team     string `arg:"" help:"ID of team the player joins." required:""`
	ID       string `help:"Document ID for the player. Empty assigns a random ID."`
	Name     string `help:"Player given name."`
	Surname  string `help:"Player family name."`
	Number   int    `help:"Shirt number."`
	Position string `help:"Position label."`
	Born     string `help:"Date of birth in YYYY-MM-DD form."`
	Photo    string `help:"Public URL of the player photo."`
}

func (a *addPlayerCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	ctx.ID = a.ID
	ctx.Player = firestore.Player{
		Name:     a.Name,
		Surname:  a.Surname,
		Number:   a.Number,
		Position: a.Position,
		Born:     a.Born,
		Photo:    a.Photo,
	}
	return editplayers.AddPlayer(ctx)
}

type editPlayerCmd struct {
	DryRun   bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force    bool   `help:"Force overwriting data in database." xor:"Force,DryRun"`
	Team     string `arg:"" help:"ID of team the player belongs to." required:""`
	ID       string `arg:"" help:"ID of player to edit." required:""`
	Name     string `help:"Player given name."`
	Surname  string `help:"Player family name."`
	Number   int    `help:"Shirt number."`
	Position string `help:"Position label."`
	Born     string `help:"Date of birth in YYYY-MM-DD form."`
	Photo    string `help:"Public URL of the player photo."`
}

func (a *editPlayerCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	ctx.ID = a.ID
	ctx.Player = firestore.Player{
		Name:     a.Name,
		Surname:  a.Surname,
		Number:   a.Number,
		Position: a.Position,
		Born:     a.Born,
		Photo:    a.Photo,
	}
	return editplayers.EditPlayer(ctx)
}

type rmPlayerCmd struct {
	DryRun bool   `help:"Print database deletes to log and exit without deleting." xor:"Force,DryRun"`
	Force  bool   `help:"Delete without asking for confirmation." xor:"Force,DryRun"`
	Team   string `arg:"" help:"ID of team the player belongs to." required:""`
	ID     string `arg:"" help:"ID of player to remove." required:""`
}

func (a *rmPlayerCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	ctx.ID = a.ID
	return editplayers.RmPlayer(ctx)
}

type lsPlayersCmd struct {
	Team string `arg:"" help:"ID of team whose roster to list." required:""`
}

func (a *lsPlayersCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	return editplayers.LsPlayers(ctx)
}

type importRosterCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force  bool   `help:"Import rows that parse even when others fail." xor:"Force,DryRun"`
	Team   string `arg:"" help:"ID of team the roster belongs to." required:""`
	File   string `arg:"" help:"Roster spreadsheet. Can be either a local path or a Google Storage URL starting with 'gs://'." required:""`
}

func (a *importRosterCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	ctx.RosterFile = a.File
	return editplayers.ImportRoster(ctx)
}

type setStatsCmd struct {
	DryRun  bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force   bool   `help:"Force overwriting existing totals." xor:"Force,DryRun"`
	Team    string `arg:"" help:"ID of team the player belongs to." required:""`
	ID      string `arg:"" help:"ID of player to set totals for." required:""`
	Games   int    `help:"Games played."`
	Goals   int    `help:"Goals scored."`
	Assists int    `help:"Assists made."`
	Yellow  int    `help:"Yellow cards received."`
	Red     int    `help:"Red cards received."`
}

func (a *setStatsCmd) Run(g *globalCmd) error {
	ctx, err := newPlayersContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.TeamID = a.Team
	ctx.ID = a.ID
	ctx.Stats = firestore.PlayerStats{
		Games:   a.Games,
		Goals:   a.Goals,
		Assists: a.Assists,
		Yellow:  a.Yellow,
		Red:     a.Red,
	}
	return editplayers.SetStats(ctx)
}

func newPlayersContext(g *globalCmd, dryRun, force bool) (*editplayers.Context, error) {
	ctx := editplayers.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
