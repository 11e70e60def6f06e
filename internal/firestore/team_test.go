package firestore

import "testing"

func TestInTournament(t *testing.T) {
	team := Team{Name: "Ararat", Division: DIVISION_HIGH, Tournaments: []string{BUCKET_CUP, BUCKET_STRUCTURE}}
	if !team.InTournament(BUCKET_CUP) {
		t.Error("team entered in the cup must report so")
	}
	if team.InTournament(BUCKET_SUPERCUP) {
		t.Error("team not entered in the supercup must not report so")
	}
	if (Team{}).InTournament(BUCKET_CUP) {
		t.Error("team with no tournaments must not report any")
	}
}

func TestValidDivision(t *testing.T) {
	for _, d := range Divisions {
		if !ValidDivision(d) {
			t.Errorf("division %s must be valid", d)
		}
	}
	if ValidDivision(BUCKET_CUP) {
		t.Error("a tournament bucket is not a division")
	}
}

func TestPlayerFullName(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   string
	}{
		{name: "both", player: Player{Name: "Henrikh", Surname: "Mkhitaryan"}, want: "Mkhitaryan Henrikh"},
		{name: "surname only", player: Player{Surname: "Mkhitaryan"}, want: "Mkhitaryan"},
		{name: "name only", player: Player{Name: "Henrikh"}, want: "Henrikh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.player.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeaderboardEntryData(t *testing.T) {
	e := LeaderboardEntry{PlayerID: "p1", Name: "Henrikh Mkhitaryan", Team: "Ararat", Logo: "https://example.com/a.png", Value: 7}
	data := e.Data("goals")
	if data["name"] != "Henrikh Mkhitaryan" || data["team"] != "Ararat" || data["logo"] != "https://example.com/a.png" {
		t.Errorf("Data() display fields wrong: %v", data)
	}
	if data["goals"] != 7 {
		t.Errorf("Data() ranked field = %v, want 7", data["goals"])
	}
	if _, ok := data["assists"]; ok {
		t.Error("Data() must only carry the ranked category's field")
	}
}
