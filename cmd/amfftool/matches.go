package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/tools/editmatches"
	"github.com/amffhub/amfftool/internal/tools/propagate"
)

type saveMatchCmd struct {
	DryRun       bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force        bool   `help:"Force overwriting an existing match." xor:"Force,DryRun"`
	Bucket       string `arg:"" help:"Bucket the match belongs to." required:""`
	ID           string `help:"Document ID for the match. Empty assigns a random ID."`
	Date         string `help:"Match date in YYYY-MM-DD form." required:""`
	Time         string `help:"Kickoff time in HH:MM form."`
	Round        int    `help:"League match day."`
	Stage        string `help:"Knockout stage token."`
	GameIndex    int    `help:"Order within the knockout stage."`
	Score        string `help:"Final score in H-A form."`
	Home         string `help:"Home team ID."`
	Away         string `help:"Away team ID."`
	HomeFrom     string `help:"Slot reference the home side advances from (W:<id> or L:<id>)."`
	AwayFrom     string `help:"Slot reference the away side advances from (W:<id> or L:<id>)."`
	Label        string `help:"Display label for bracket placeholders."`
	Note         string `help:"Free-form admin note."`
	HomeWildcard bool   `help:"Mark the home side as a wildcard entry."`
	AwayWildcard bool   `help:"Mark the away side as a wildcard entry."`
}

func (a *saveMatchCmd) Run(g *globalCmd) error {
	ctx, err := newMatchesContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.ID = a.ID
	ctx.Match = firestore.Match{
		Date:         a.Date,
		Time:         a.Time,
		Round:        a.Round,
		Stage:        a.Stage,
		GameIndex:    a.GameIndex,
		Score:        a.Score,
		Home:         a.Home,
		Away:         a.Away,
		HomeFrom:     a.HomeFrom,
		AwayFrom:     a.AwayFrom,
		Label:        a.Label,
		Note:         a.Note,
		HomeWildcard: a.HomeWildcard,
		AwayWildcard: a.AwayWildcard,
	}
	return editmatches.SaveMatch(ctx)
}

type rmMatchCmd struct {
	DryRun bool   `help:"Print database deletes to log and exit without deleting." xor:"Force,DryRun"`
	Force  bool   `help:"Delete without asking for confirmation." xor:"Force,DryRun"`
	Bucket string `arg:"" help:"Bucket the match belongs to." required:""`
	ID     string `arg:"" help:"ID of match to remove." required:""`
}

func (a *rmMatchCmd) Run(g *globalCmd) error {
	ctx, err := newMatchesContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.ID = a.ID
	return editmatches.RmMatch(ctx)
}

type lsMatchesCmd struct {
	Bucket string `arg:"" help:"Bucket to list." required:""`
}

func (a *lsMatchesCmd) Run(g *globalCmd) error {
	ctx, err := newMatchesContext(g, false, false)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	return editmatches.LsMatches(ctx)
}

type clearScoreCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force  bool   `help:"Force clearing a recorded score." xor:"Force,DryRun"`
	Bucket string `arg:"" help:"Bucket the match belongs to." required:""`
	ID     string `arg:"" help:"ID of match to clear." required:""`
}

func (a *clearScoreCmd) Run(g *globalCmd) error {
	ctx, err := newMatchesContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.ID = a.ID
	return editmatches.ClearScore(ctx)
}

// rosterEntryArg parses "playerID[:number[:flags]]" where flags may contain
// 'C' for captain and 'G' for goalkeeper.
type rosterEntryArg firestore.RosterEntry

// UnmarshalText implements the TextUnmarshaler interface
func (r *rosterEntryArg) UnmarshalText(text []byte) error {
	s := string(text)
	splits := strings.Split(s, ":")
	if len(splits) > 3 {
		return fmt.Errorf("too many fields for roster entry: expected <= 3, got %d", len(splits))
	}
	entry := firestore.RosterEntry{PlayerID: splits[0]}
	if entry.PlayerID == "" {
		return fmt.Errorf("roster entry needs a player ID")
	}
	if len(splits) > 1 && splits[1] != "" {
		n, err := strconv.Atoi(splits[1])
		if err != nil {
			return fmt.Errorf("bad shirt number '%s': %w", splits[1], err)
		}
		entry.Number = n
	}
	if len(splits) > 2 {
		for _, flag := range splits[2] {
			switch flag {
			case 'C':
				entry.Captain = true
			case 'G':
				entry.Goalkeeper = true
			default:
				return fmt.Errorf("unknown roster flag '%c'", flag)
			}
		}
	}
	*r = rosterEntryArg(entry)
	return nil
}

type setRosterCmd struct {
	DryRun    bool             `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force     bool             `help:"Force overwriting data in database." xor:"Force,DryRun"`
	Bucket    string           `arg:"" help:"Bucket the match belongs to." required:""`
	ID        string           `arg:"" help:"ID of match to set the squad for." required:""`
	Side      string           `arg:"" help:"Side to set: home or away." required:""`
	Player    []rosterEntryArg `arg:"" help:"Roster entries as playerID[:number[:flags]] with flags C and G." required:""`
	BumpGames bool             `help:"Increment each listed player's games total."`
}

func (a *setRosterCmd) Run(g *globalCmd) error {
	ctx, err := newMatchesContext(g, a.DryRun, a.Force)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.ID = a.ID
	ctx.Side = a.Side
	ctx.Roster = make([]firestore.RosterEntry, len(a.Player))
	for i, p := range a.Player {
		ctx.Roster[i] = firestore.RosterEntry(p)
	}
	ctx.BumpGames = a.BumpGames
	return editmatches.SetRoster(ctx)
}

type propagateCmd struct {
	DryRun bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force  bool   `help:"Force writing patches to database." xor:"Force,DryRun"`
	Bucket string `arg:"" help:"Bucket to propagate." required:""`
	ID     string `help:"Source match ID. Empty propagates every decided match."`
}

func (a *propagateCmd) Run(g *globalCmd) error {
	ctx := propagate.NewContext(context.Background())
	ctx.DryRun = a.DryRun
	ctx.Force = a.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Bucket = a.Bucket
	ctx.MatchID = a.ID
	return propagate.Propagate(ctx)
}

func newMatchesContext(g *globalCmd, dryRun, force bool) (*editmatches.Context, error) {
	ctx := editmatches.NewContext(context.Background())
	ctx.DryRun = dryRun
	ctx.Force = force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
