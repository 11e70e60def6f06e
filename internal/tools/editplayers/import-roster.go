package editplayers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/tealeg/xlsx"
)

// ImportRoster loads a roster spreadsheet and creates one player per row.
// The first sheet is read; the first row is treated as a header. Expected
// columns are name, surname, number, position and date of birth.
func ImportRoster(ctx *Context) error {
	if ctx.RosterFile == "" {
		return fmt.Errorf("ImportRoster: roster file must be specified")
	}

	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("ImportRoster: %w", err)
	}

	r, err := getFileOrGSReader(ctx, ctx.RosterFile)
	if err != nil {
		return fmt.Errorf("ImportRoster: failed to open roster file '%s': %w", ctx.RosterFile, err)
	}
	slurp, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("ImportRoster: failed to read roster file '%s': %w", ctx.RosterFile, err)
	}

	players, errs := parseRosterSheet(slurp)
	for _, err := range errs {
		log.Printf("Roster parse error: %v", err)
	}
	if len(errs) > 0 && !ctx.Force {
		return fmt.Errorf("ImportRoster: %d rows failed to parse: use force flag to import the rest anyway", len(errs))
	}
	if len(players) == 0 {
		return fmt.Errorf("ImportRoster: no players found in '%s'", ctx.RosterFile)
	}

	col := firestore.PlayersCollection(teamRef)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		for _, p := range players {
			log.Printf("%s/(new) -> %s", col.Path, p)
		}
		return nil
	}

	for _, p := range players {
		p := p
		ref, _, err := col.Add(ctx, &p)
		if err != nil {
			return fmt.Errorf("ImportRoster: failed to add player %s: %w", p.FullName(), err)
		}
		log.Printf("Added player %s -> %s", ref.ID, p.FullName())
	}
	log.Printf("Imported %d players to team %s", len(players), ctx.TeamID)
	return nil
}

func parseRosterSheet(slurp []byte) ([]firestore.Player, []error) {
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return nil, []error{err}
	}
	if len(xl.Sheets) == 0 {
		return nil, []error{fmt.Errorf("spreadsheet has no sheets")}
	}

	sheet := xl.Sheets[0]
	log.Printf("Reading sheet name: %s", sheet.Name)

	players := make([]firestore.Player, 0, len(sheet.Rows))

	// catch all the errors from all the rows and report them all rather than stopping after the first
	errors := make([]error, 0)

	for irow, row := range sheet.Rows {
		if irow == 0 {
			continue
		}
		cell := func(i int) string {
			if i >= len(row.Cells) {
				return ""
			}
			return strings.TrimSpace(row.Cells[i].Value)
		}

		p := firestore.Player{
			Name:     cell(0),
			Surname:  cell(1),
			Position: cell(3),
			Born:     cell(4),
		}
		if p.Name == "" && p.Surname == "" {
			continue
		}
		if ns := cell(2); ns != "" {
			n, err := strconv.Atoi(ns)
			if err != nil {
				errors = append(errors, fmt.Errorf("row %d: bad shirt number '%s': %w", irow+1, ns, err))
				continue
			}
			p.Number = n
		}
		players = append(players, p)
	}

	return players, errors
}

func getFileOrGSReader(ctx context.Context, f string) (io.ReadCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(strings.Trim(u.Path, "/"))
		r, err = obj.NewReader(ctx)
		if err != nil {
			return nil, err
		}

	case "file":
		fallthrough
	case "":
		r, err = os.Open(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return r, nil
}
