package standings

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"cloud.google.com/go/storage"
	excelize "github.com/xuri/excelize/v2"
)

// ExportStandings writes the league table to an Excel workbook. The output
// location may be a local path or a gs:// URL.
func ExportStandings(ctx *Context) error {
	if ctx.Output == "" {
		return fmt.Errorf("ExportStandings: output location must be specified")
	}

	rows, err := computeStandings(ctx)
	if err != nil {
		return fmt.Errorf("ExportStandings: %w", err)
	}

	outExcel := excelize.NewFile()
	sheetName := outExcel.GetSheetName(outExcel.GetActiveSheetIndex())
	header := []string{"#", "Team", "Played", "Won", "Drawn", "Lost", "GF", "GA", "GD", "Points"}
	for col, str := range header {
		index, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("ExportStandings: %w", err)
		}
		outExcel.SetCellStr(sheetName, index, str)
	}
	for i, row := range rows {
		values := []interface{}{i + 1, row.Name, row.Played, row.Win, row.Draw, row.Loss,
			row.GoalsFor, row.GoalsAgainst, row.GoalDiff(), row.Points}
		for col, v := range values {
			index, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("ExportStandings: %w", err)
			}
			if err := outExcel.SetCellValue(sheetName, index, v); err != nil {
				return fmt.Errorf("ExportStandings: %w", err)
			}
		}
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		log.Printf("%d standings rows for bucket %s -> %s", len(rows), ctx.Bucket, ctx.Output)
		return nil
	}

	w, err := openFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("ExportStandings: failed to open output '%s': %w", ctx.Output, err)
	}
	defer w.Close()

	if _, err := outExcel.WriteTo(w); err != nil {
		return fmt.Errorf("ExportStandings: failed to write workbook: %w", err)
	}
	log.Printf("Exported %d standings rows for bucket %s to %s", len(rows), ctx.Bucket, ctx.Output)
	return nil
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(u.Path)
		w = obj.NewWriter(ctx)

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return w, nil
}
