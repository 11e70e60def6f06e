package topstats

import (
	"testing"

	"github.com/amffhub/amfftool/internal/firestore"
)

func TestTopBy(t *testing.T) {
	items := []playerTotals{
		{playerID: "a", stats: firestore.PlayerStats{Goals: 3}},
		{playerID: "b", stats: firestore.PlayerStats{Goals: 9}},
		{playerID: "c", stats: firestore.PlayerStats{Goals: 9}},
		{playerID: "d", stats: firestore.PlayerStats{Goals: 1}},
		{playerID: "e", stats: firestore.PlayerStats{Goals: 5}},
	}

	top := topBy(items, 3, statValue("goals"))
	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	// b and c tie on 9: input order decides.
	if top[0].playerID != "b" || top[1].playerID != "c" || top[2].playerID != "e" {
		t.Errorf("top order = %s %s %s, want b c e", top[0].playerID, top[1].playerID, top[2].playerID)
	}

	// The input slice stays untouched.
	if items[0].playerID != "a" {
		t.Error("topBy must not reorder its input")
	}

	if got := topBy(items, 10, statValue("goals")); len(got) != len(items) {
		t.Errorf("over-asking returned %d entries, want %d", len(got), len(items))
	}
}

func TestStatValue(t *testing.T) {
	totals := playerTotals{stats: firestore.PlayerStats{Games: 10, Goals: 1, Assists: 2, Yellow: 3, Red: 4}}
	tests := []struct {
		field string
		want  int
	}{
		{field: "goals", want: 1},
		{field: "assists", want: 2},
		{field: "yellow", want: 3},
		{field: "red", want: 4},
		{field: "games", want: 0},
	}
	for _, tt := range tests {
		if got := statValue(tt.field)(totals); got != tt.want {
			t.Errorf("statValue(%q) = %d, want %d", tt.field, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		player firestore.Player
		want   string
	}{
		{name: "both", player: firestore.Player{Name: "Henrikh", Surname: "Mkhitaryan"}, want: "Henrikh Mkhitaryan"},
		{name: "surname only", player: firestore.Player{Surname: "Mkhitaryan"}, want: "Mkhitaryan"},
		{name: "name only", player: firestore.Player{Name: "Henrikh"}, want: "Henrikh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.player); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
