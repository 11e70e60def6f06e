package league

import (
	"errors"
	"fmt"
	"testing"
)

func seeding(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("seed-%02d", i+1)
	}
	return ids
}

func TestPlayoffBracketShape(t *testing.T) {
	plans, err := PlayoffBracket(seeding(24))
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 30 {
		t.Fatalf("got %d placeholders, want 30", len(plans))
	}

	counts := make(map[string]int)
	byID := make(map[string]MatchPlan)
	for _, p := range plans {
		counts[p.Stage]++
		byID[p.ID] = p
	}

	wantCounts := map[string]int{
		StagePlayIn:       8,
		StageRoundOf16:    8,
		StageQuarterfinal: 4,
		StageSemifinal:    2,
		StageFinal:        1,
		StageSmallQuarter: 4,
		StageSmallSemi:    2,
		StageSmallFinal:   1,
	}
	for stage, want := range wantCounts {
		if counts[stage] != want {
			t.Errorf("stage %s has %d matches, want %d", stage, counts[stage], want)
		}
	}

	// Play-in seeding: 9+i vs 24-i.
	for i := 0; i < 8; i++ {
		p := byID[fmt.Sprintf("playin-%d", i+1)]
		wantHome := fmt.Sprintf("seed-%02d", 9+i)
		wantAway := fmt.Sprintf("seed-%02d", 24-i)
		if p.Home != wantHome || p.Away != wantAway {
			t.Errorf("playin-%d = %s vs %s, want %s vs %s", i+1, p.Home, p.Away, wantHome, wantAway)
		}
		if !p.HomeFrom.IsZero() || !p.AwayFrom.IsZero() {
			t.Errorf("playin-%d must not carry slot references", i+1)
		}
	}

	// Round of 16: direct home seed, away drawn from play-ins in reverse
	// order so seed 1 meets the winner of playin-8.
	for i := 0; i < 8; i++ {
		p := byID[fmt.Sprintf("r16-%d", i+1)]
		if wantHome := fmt.Sprintf("seed-%02d", i+1); p.Home != wantHome {
			t.Errorf("r16-%d home = %s, want %s", i+1, p.Home, wantHome)
		}
		if p.Away != "" {
			t.Errorf("r16-%d away must be unresolved, got %s", i+1, p.Away)
		}
		want := SlotRef{Kind: WinnerOf, MatchID: fmt.Sprintf("playin-%d", 8-i)}
		if p.AwayFrom != want {
			t.Errorf("r16-%d awayFrom = %v, want %v", i+1, p.AwayFrom, want)
		}
	}

	// Halving pattern in the main bracket.
	for i := 0; i < 4; i++ {
		p := byID[fmt.Sprintf("qf-%d", i+1)]
		wantHome := SlotRef{Kind: WinnerOf, MatchID: fmt.Sprintf("r16-%d", i*2+1)}
		wantAway := SlotRef{Kind: WinnerOf, MatchID: fmt.Sprintf("r16-%d", i*2+2)}
		if p.HomeFrom != wantHome || p.AwayFrom != wantAway {
			t.Errorf("qf-%d draws %v/%v, want %v/%v", i+1, p.HomeFrom, p.AwayFrom, wantHome, wantAway)
		}
	}
	final := byID["final-1"]
	if final.HomeFrom.MatchID != "sf-1" || final.AwayFrom.MatchID != "sf-2" {
		t.Errorf("final draws %v/%v", final.HomeFrom, final.AwayFrom)
	}

	// Consolation bracket seeds from play-in losers.
	for i := 0; i < 4; i++ {
		p := byID[fmt.Sprintf("scqf-%d", i+1)]
		wantHome := SlotRef{Kind: LoserOf, MatchID: fmt.Sprintf("playin-%d", i*2+1)}
		wantAway := SlotRef{Kind: LoserOf, MatchID: fmt.Sprintf("playin-%d", i*2+2)}
		if p.HomeFrom != wantHome || p.AwayFrom != wantAway {
			t.Errorf("scqf-%d draws %v/%v, want %v/%v", i+1, p.HomeFrom, p.AwayFrom, wantHome, wantAway)
		}
	}
	small := byID["scfinal-1"]
	if small.HomeFrom != (SlotRef{Kind: WinnerOf, MatchID: "scsf-1"}) ||
		small.AwayFrom != (SlotRef{Kind: WinnerOf, MatchID: "scsf-2"}) {
		t.Errorf("small final draws %v/%v", small.HomeFrom, small.AwayFrom)
	}
}

func TestPlayoffBracketNotEnoughTeams(t *testing.T) {
	tests := []struct {
		name string
		n    int
		need int
	}{
		{name: "way short", n: 10, need: 16},
		{name: "just short of play-ins", n: 15, need: 16},
		{name: "incomplete seeding", n: 20, need: 24},
		{name: "one short", n: 23, need: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlayoffBracket(seeding(tt.n))
			var nete NotEnoughTeamsError
			if !errors.As(err, &nete) {
				t.Fatalf("error = %v, want NotEnoughTeamsError", err)
			}
			if nete.Have != tt.n || nete.Need != tt.need {
				t.Errorf("error = %+v, want Have=%d Need=%d", nete, tt.n, tt.need)
			}
		})
	}
}

func TestPlayoffBracketExtraSeedsIgnored(t *testing.T) {
	plans, err := PlayoffBracket(seeding(30))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range plans {
		for _, id := range []string{p.Home, p.Away} {
			if id > "seed-24" {
				t.Errorf("%s fields %s, ranks beyond 24 must not qualify", p.ID, id)
			}
		}
	}
}

func TestStageOrder(t *testing.T) {
	order := []string{
		StageLeague, StagePlayIn, StageRoundOf16, StageQuarterfinal,
		StageSemifinal, StageFinal, StageSmallQuarter, StageSmallSemi, StageSmallFinal,
	}
	for i := 1; i < len(order); i++ {
		if StageOrder(order[i-1]) >= StageOrder(order[i]) {
			t.Errorf("stage %s must order before %s", order[i-1], order[i])
		}
	}
	if StageOrder("mystery") <= StageOrder(StageSmallFinal) {
		t.Error("unknown stages must sort last")
	}
}
