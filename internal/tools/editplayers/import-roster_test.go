package editplayers

import (
	"bytes"
	"testing"

	"github.com/tealeg/xlsx"
)

func rosterWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Roster")
	if err != nil {
		t.Fatal(err)
	}
	header := sheet.AddRow()
	for _, h := range []string{"Name", "Surname", "Number", "Position", "Born"} {
		header.AddCell().Value = h
	}
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, c := range cells {
			row.AddCell().Value = c
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseRosterSheet(t *testing.T) {
	slurp := rosterWorkbook(t, [][]string{
		{"Henrikh", "Mkhitaryan", "10", "MF", "1989-01-21"},
		{"Gevorg", "Ghazaryan", "", "FW", ""},
		{"", "", "", "", ""},
	})

	players, errs := parseRosterSheet(slurp)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2 (blank rows skipped)", len(players))
	}

	p := players[0]
	if p.Name != "Henrikh" || p.Surname != "Mkhitaryan" || p.Number != 10 || p.Position != "MF" || p.Born != "1989-01-21" {
		t.Errorf("first player = %+v", p)
	}
	if players[1].Number != 0 {
		t.Errorf("missing shirt number should stay zero, got %d", players[1].Number)
	}
}

func TestParseRosterSheetBadNumber(t *testing.T) {
	slurp := rosterWorkbook(t, [][]string{
		{"Henrikh", "Mkhitaryan", "ten", "MF", ""},
		{"Gevorg", "Ghazaryan", "9", "FW", ""},
	})

	players, errs := parseRosterSheet(slurp)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if len(players) != 1 || players[0].Name != "Gevorg" {
		t.Errorf("good rows must survive bad ones: %+v", players)
	}
}

func TestParseRosterSheetGarbage(t *testing.T) {
	if _, errs := parseRosterSheet([]byte("not a workbook")); len(errs) == 0 {
		t.Error("garbage input must report an error")
	}
}
