package league

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("team-%02d", i+1)
	}
	return ids
}

func TestRoundRobinProperties(t *testing.T) {
	for _, n := range []int{2, 4, 6, 10, 24} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rounds, err := RoundRobin(teamIDs(n))
			if err != nil {
				t.Fatalf("RoundRobin(%d teams): %v", n, err)
			}
			if len(rounds) != n-1 {
				t.Fatalf("got %d rounds, want %d", len(rounds), n-1)
			}

			seen := make(map[[2]string]int)
			for r, pairs := range rounds {
				if len(pairs) != n/2 {
					t.Errorf("round %d has %d pairs, want %d", r+1, len(pairs), n/2)
				}
				inRound := make(map[string]bool)
				for _, p := range pairs {
					if p.Home == p.Away {
						t.Errorf("round %d pairs %s with itself", r+1, p.Home)
					}
					if inRound[p.Home] || inRound[p.Away] {
						t.Errorf("round %d fields a team twice", r+1)
					}
					inRound[p.Home] = true
					inRound[p.Away] = true

					key := [2]string{p.Home, p.Away}
					if p.Away < p.Home {
						key = [2]string{p.Away, p.Home}
					}
					seen[key]++
				}
			}

			want := n * (n - 1) / 2
			if len(seen) != want {
				t.Errorf("got %d distinct pairings, want %d", len(seen), want)
			}
			for pair, count := range seen {
				if count != 1 {
					t.Errorf("pairing %v appears %d times, want 1", pair, count)
				}
			}
		})
	}
}

func TestRoundRobinOddCount(t *testing.T) {
	for _, n := range []int{1, 3, 7, 23} {
		rounds, err := RoundRobin(teamIDs(n))
		var odd OddTeamCountError
		if !errors.As(err, &odd) {
			t.Errorf("RoundRobin(%d teams) error = %v, want OddTeamCountError", n, err)
		}
		if rounds != nil {
			t.Errorf("RoundRobin(%d teams) produced a schedule despite the error", n)
		}
	}
}

func TestRoundRobinFourTeams(t *testing.T) {
	rounds, err := RoundRobin([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, want 3", len(rounds))
	}
	for r, pairs := range rounds {
		if len(pairs) != 2 {
			t.Errorf("round %d has %d pairs, want 2", r+1, len(pairs))
		}
	}
}

func TestRoundRobinVenueBalance(t *testing.T) {
	// With home and away alternating by round parity, no team may be at
	// home in every round of a six-team schedule.
	rounds, err := RoundRobin(teamIDs(6))
	if err != nil {
		t.Fatal(err)
	}
	home := make(map[string]int)
	for _, pairs := range rounds {
		for _, p := range pairs {
			home[p.Home]++
		}
	}
	for id, count := range home {
		if count == len(rounds) {
			t.Errorf("team %s is at home in all %d rounds", id, count)
		}
	}
}

func TestPickRounds(t *testing.T) {
	rounds, err := RoundRobin(teamIDs(24))
	if err != nil {
		t.Fatal(err)
	}

	picked := PickRounds(rand.New(rand.NewSource(42)), rounds, 10)
	if len(picked) != 10 {
		t.Fatalf("got %d rounds, want 10", len(picked))
	}

	// Without replacement: every picked round is a distinct original round.
	fingerprint := func(pairs []Pairing) string {
		s := ""
		for _, p := range pairs {
			s += p.Home + "/" + p.Away + ";"
		}
		return s
	}
	originals := make(map[string]bool, len(rounds))
	for _, r := range rounds {
		originals[fingerprint(r)] = true
	}
	dupes := make(map[string]bool)
	for _, r := range picked {
		fp := fingerprint(r)
		if !originals[fp] {
			t.Error("picked a round that is not part of the full schedule")
		}
		if dupes[fp] {
			t.Error("picked the same round twice")
		}
		dupes[fp] = true
	}

	// The same seed yields the same draw.
	again := PickRounds(rand.New(rand.NewSource(42)), rounds, 10)
	for i := range picked {
		if fingerprint(picked[i]) != fingerprint(again[i]) {
			t.Fatal("identical seeds produced different selections")
		}
	}

	if got := PickRounds(rand.New(rand.NewSource(1)), rounds, 100); len(got) != len(rounds) {
		t.Errorf("over-asking returned %d rounds, want %d", len(got), len(rounds))
	}
}

func TestShuffleTeamsPreservesMembers(t *testing.T) {
	ids := teamIDs(8)
	shuffled := ShuffleTeams(rand.New(rand.NewSource(7)), ids)
	if len(shuffled) != len(ids) {
		t.Fatalf("got %d ids, want %d", len(shuffled), len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range shuffled {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("team %s lost in shuffle", id)
		}
	}
}
