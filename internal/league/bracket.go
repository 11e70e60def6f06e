package league

import "fmt"

// Stage tokens used by the structured 24-team tournament. League matches
// carry a round number as well; playoff matches are ordered by stage and
// game index.
const (
	StageLeague       = "league"
	StagePlayIn       = "playin"
	StageRoundOf16    = "r16"
	StageQuarterfinal = "qf"
	StageSemifinal    = "sf"
	StageFinal        = "final"
	StageSmallQuarter = "sc_qf"
	StageSmallSemi    = "sc_sf"
	StageSmallFinal   = "sc_final"
)

var stageOrder = map[string]int{
	StageLeague:       0,
	StagePlayIn:       1,
	StageRoundOf16:    2,
	StageQuarterfinal: 3,
	StageSemifinal:    4,
	StageFinal:        5,
	StageSmallQuarter: 6,
	StageSmallSemi:    7,
	StageSmallFinal:   8,
}

// StageOrder gives the display ordering of a stage token. Unknown stages
// sort last.
func StageOrder(stage string) int {
	if o, ok := stageOrder[stage]; ok {
		return o
	}
	return 99
}

// MatchPlan is one bracket placeholder to be created. Home and Away hold
// team ids when the participant is known directly; otherwise the
// corresponding SlotRef names the match whose outcome fills the slot.
type MatchPlan struct {
	ID        string
	Stage     string
	GameIndex int
	Label     string
	Home      string
	Away      string
	HomeFrom  SlotRef
	AwayFrom  SlotRef
}

// NotEnoughTeamsError is returned when a seeding list cannot fill the
// bracket.
type NotEnoughTeamsError struct {
	Have int
	Need int
}

func (e NotEnoughTeamsError) Error() string {
	return fmt.Sprintf("bracket needs %d seeded teams, have %d", e.Need, e.Have)
}

// PlayoffBracket wires the structured playoff from a ranked seeding list
// (best team first). The layout is fixed:
//
//   - seeds 9-24 meet in 8 play-in matches, seed 9+i against seed 24-i;
//   - seeds 1-8 enter the round of 16 directly as home teams, with the away
//     slot drawing play-in winners in reverse order so the top seed faces
//     the weakest surviving winner;
//   - quarterfinals, semifinals and the final pair consecutive winners of
//     the previous round;
//   - play-in losers drop into a consolation bracket (quarterfinal,
//     semifinal, final) wired by the same halving pattern.
//
// The result is exactly 30 placeholders. Every slot beyond the play-in
// round is a SlotRef, resolved later by result propagation.
func PlayoffBracket(seeding []string) ([]MatchPlan, error) {
	if len(seeding) < 16 {
		return nil, NotEnoughTeamsError{Have: len(seeding), Need: 16}
	}
	if len(seeding) < 24 {
		return nil, NotEnoughTeamsError{Have: len(seeding), Need: 24}
	}
	top8 := seeding[:8]
	rest := seeding[8:24]

	plans := make([]MatchPlan, 0, 30)

	playinIDs := make([]string, 8)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("playin-%d", i+1)
		playinIDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StagePlayIn,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("Play-in #%d", i+1),
			Home:      rest[i],
			Away:      rest[15-i],
		})
	}

	r16IDs := make([]string, 8)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("r16-%d", i+1)
		r16IDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StageRoundOf16,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("1/8 #%d", i+1),
			Home:      top8[i],
			AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: playinIDs[7-i]},
		})
	}

	qfIDs := make([]string, 4)
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("qf-%d", i+1)
		qfIDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StageQuarterfinal,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("1/4 #%d", i+1),
			HomeFrom:  SlotRef{Kind: WinnerOf, MatchID: r16IDs[i*2]},
			AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: r16IDs[i*2+1]},
		})
	}

	sfIDs := make([]string, 2)
	for i := 0; i < 2; i++ {
		id := fmt.Sprintf("sf-%d", i+1)
		sfIDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StageSemifinal,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("1/2 #%d", i+1),
			HomeFrom:  SlotRef{Kind: WinnerOf, MatchID: qfIDs[i*2]},
			AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: qfIDs[i*2+1]},
		})
	}

	plans = append(plans, MatchPlan{
		ID:        "final-1",
		Stage:     StageFinal,
		GameIndex: 1,
		Label:     "Final",
		HomeFrom:  SlotRef{Kind: WinnerOf, MatchID: sfIDs[0]},
		AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: sfIDs[1]},
	})

	scQfIDs := make([]string, 4)
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("scqf-%d", i+1)
		scQfIDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StageSmallQuarter,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("Small 1/4 #%d", i+1),
			HomeFrom:  SlotRef{Kind: LoserOf, MatchID: playinIDs[i*2]},
			AwayFrom:  SlotRef{Kind: LoserOf, MatchID: playinIDs[i*2+1]},
		})
	}

	scSfIDs := make([]string, 2)
	for i := 0; i < 2; i++ {
		id := fmt.Sprintf("scsf-%d", i+1)
		scSfIDs[i] = id
		plans = append(plans, MatchPlan{
			ID:        id,
			Stage:     StageSmallSemi,
			GameIndex: i + 1,
			Label:     fmt.Sprintf("Small 1/2 #%d", i+1),
			HomeFrom:  SlotRef{Kind: WinnerOf, MatchID: scQfIDs[i*2]},
			AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: scQfIDs[i*2+1]},
		})
	}

	plans = append(plans, MatchPlan{
		ID:        "scfinal-1",
		Stage:     StageSmallFinal,
		GameIndex: 1,
		Label:     "Small Final",
		HomeFrom:  SlotRef{Kind: WinnerOf, MatchID: scSfIDs[0]},
		AwayFrom:  SlotRef{Kind: WinnerOf, MatchID: scSfIDs[1]},
	})

	return plans, nil
}
