package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/tools/editteams"
)

type addTeamCmd struct {
	DryRun     bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool     `help:"Force overwriting data in database." xor:"Force,DryRun"`
	ID         string   `arg:"" help:"ID of team to add." required:""`
	Name       string   `help:"Team display name." required:""`
	Division   string   `help:"Division the team plays in." required:""`
	Logo       string   `help:"Public URL of the team crest."`
	Tournament []string `help:"Tournament the team is entered in."`
}

func (a *addTeamCmd) Run(g *globalCmd) error {
	ctx, err := newTeamsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	ctx.Team = firestore.Team{
		Name:        a.Name,
		Division:    a.Division,
		Logo:        a.Logo,
		Tournaments: a.Tournament,
	}
	return editteams.AddTeam(ctx)
}

type editTeamCmd struct {
	DryRun     bool     `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force      bool     `help:"Force overwriting data in database." xor:"Force,DryRun"`
	ID         string   `arg:"" help:"ID of team to edit." required:""`
	Name       string   `help:"Team display name."`
	Division   string   `help:"Division the team plays in."`
	Logo       string   `help:"Public URL of the team crest."`
	Tournament []string `help:"Tournament the team is entered in."`
	Append     bool     `help:"Append tournaments to extant values."`
}

func (a *editTeamCmd) Run(g *globalCmd) error {
	ctx, err := newTeamsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	ctx.Team = firestore.Team{
		Name:        a.Name,
		Division:    a.Division,
		Logo:        a.Logo,
		Tournaments: a.Tournament,
	}
	ctx.Append = a.Append
	return editteams.EditTeam(ctx)
}

type rmTeamCmd struct {
	DryRun bool   `help:"Print database deletes to log and exit without deleting." xor:"Force,DryRun"`
	Force  bool   `help:"Delete without asking for confirmation." xor:"Force,DryRun"`
	ID     string `arg:"" help:"ID of team to remove." required:""`
}

func (a *rmTeamCmd) Run(g *globalCmd) error {
	ctx, err := newTeamsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	return editteams.RmTeam(ctx)
}

type lsTeamsCmd struct {
	Division   string `help:"List only teams in this division."`
	Tournament string `help:"List only teams entered in this tournament."`
}

func (a *lsTeamsCmd) Run(g *globalCmd) error {
	ctx, err := newTeamsContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.Team.Division = a.Division
	ctx.Tournament = a.Tournament
	return editteams.LsTeams(ctx)
}

type uploadLogoCmd struct {
	DryRun bool   `help:"Print uploads and writes to log and exit without writing." xor:"Force,DryRun"`
	Force  bool   `help:"Force overwriting data in database." xor:"Force,DryRun"`
	ID     string `arg:"" help:"ID of team the crest belongs to." required:""`
	File   string `arg:"" help:"Crest image. Can be either a local path or a Google Storage URL starting with 'gs://'." required:""`
	Bucket string `help:"Cloud Storage bucket public crests are served from." required:""`
}

func (a *uploadLogoCmd) Run(g *globalCmd) error {
	ctx, err := newTeamsContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.ID = a.ID
	ctx.LogoFile = a.File
	ctx.LogoBucket = a.Bucket
	return editteams.UploadLogo(ctx)
}

func newTeamsContext(g *globalCmd, dryRun, force bool) (*editteams.Context, error) {
	ctx := editteams.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
