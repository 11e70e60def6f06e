package league

import (
	"fmt"
	"math/rand"
)

// Pairing is one fixture in a round: home team id against away team id.
type Pairing struct {
	Home string
	Away string
}

// OddTeamCountError is returned by RoundRobin when the team list cannot be
// paired off.
type OddTeamCountError int

func (e OddTeamCountError) Error() string {
	return fmt.Sprintf("round robin requires an even number of teams, got %d", int(e))
}

// RoundRobin builds a full single round-robin schedule with the circle
// method: the first team stays fixed while the rest rotate one position per
// round, and position i is paired with position n-1-i. The result has n-1
// rounds of n/2 pairings, every unordered pair of teams appearing exactly
// once. Home and away alternate by round parity to balance venue counts.
func RoundRobin(teamIDs []string) ([][]Pairing, error) {
	n := len(teamIDs)
	if n%2 != 0 {
		return nil, OddTeamCountError(n)
	}
	if n == 0 {
		return nil, nil
	}

	fixed := teamIDs[0]
	rest := make([]string, n-1)
	copy(rest, teamIDs[1:])

	rounds := make([][]Pairing, 0, n-1)
	for r := 0; r < n-1; r++ {
		lineup := make([]string, 0, n)
		lineup = append(lineup, fixed)
		lineup = append(lineup, rest...)

		pairs := make([]Pairing, 0, n/2)
		for i := 0; i < n/2; i++ {
			a, b := lineup[i], lineup[n-1-i]
			if r%2 == 0 {
				pairs = append(pairs, Pairing{Home: a, Away: b})
			} else {
				pairs = append(pairs, Pairing{Home: b, Away: a})
			}
		}
		rounds = append(rounds, pairs)

		// Rotate: last element moves to the front.
		last := rest[len(rest)-1]
		copy(rest[1:], rest[:len(rest)-1])
		rest[0] = last
	}
	return rounds, nil
}

// ShuffleTeams returns a copy of ids in uniform random order. The caller
// owns the rand source; a fixed seed makes the draw reproducible.
func ShuffleTeams(rng *rand.Rand, ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PickRounds selects up to max rounds from a full round-robin schedule,
// uniformly without replacement. Selection shuffles the whole round list,
// so reproducibility again depends entirely on the injected rand source.
func PickRounds(rng *rand.Rand, rounds [][]Pairing, max int) [][]Pairing {
	out := make([][]Pairing, len(rounds))
	copy(out, rounds)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if max > len(out) {
		max = len(out)
	}
	if max < 0 {
		max = 0
	}
	return out[:max]
}
