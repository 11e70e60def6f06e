package league

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Team is the slice of a team document the standings computation needs.
type Team struct {
	ID   string
	Name string
}

// Result is one finished match. Results are built from match documents by
// parsing the score string; matches without a parseable score never become
// a Result.
type Result struct {
	Home  string
	Away  string
	Score Score
}

// Row is one team's line in the standings table. Rows are derived on every
// read and never persisted.
type Row struct {
	ID           string
	Name         string
	Played       int
	Win          int
	Draw         int
	Loss         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// GoalDiff is the first tie-break after points.
func (r Row) GoalDiff() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Team names are Armenian; byte-wise comparison would order them wrong.
var nameCollator = collate.New(language.Armenian)

func compareNames(a, b string) int {
	return nameCollator.CompareString(a, b)
}

// Standings aggregates results into a ranked table. Results naming a team
// that is not in the team set are skipped: incomplete data is the steady
// state, not an error. Ordering is points desc, goal difference desc, goals
// for desc, then collated name asc, which makes the order total and stable
// across runs.
func Standings(teams []Team, results []Result) []Row {
	rows := accumulate(teams, results)
	sort.Slice(rows, func(i, j int) bool {
		return lessSeason(rows[i], rows[j])
	})
	return rows
}

// StandingsHeadToHead ranks like Standings, then re-sorts every maximal run
// of rows with identical points by a mini-table restricted to the matches
// among that run: head-to-head points, head-to-head goal difference,
// head-to-head goals for, then full-season goal difference, goals for, and
// name. The mini-table is rebuilt per tied group, never globally.
func StandingsHeadToHead(teams []Team, results []Result) []Row {
	rows := Standings(teams, results)

	out := make([]Row, 0, len(rows))
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].Points == rows[start].Points {
			end++
		}
		group := rows[start:end]
		if len(group) > 1 {
			sortGroupHeadToHead(group, results)
		}
		out = append(out, group...)
		start = end
	}
	return out
}

func accumulate(teams []Team, results []Result) []Row {
	byID := make(map[string]*Row, len(teams))
	rows := make([]Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{ID: t.ID, Name: t.Name}
		byID[t.ID] = &rows[i]
	}

	for _, res := range results {
		home, away := byID[res.Home], byID[res.Away]
		if home == nil || away == nil {
			continue
		}
		home.Played++
		away.Played++
		home.GoalsFor += res.Score.Home
		home.GoalsAgainst += res.Score.Away
		away.GoalsFor += res.Score.Away
		away.GoalsAgainst += res.Score.Home
		switch {
		case res.Score.Home > res.Score.Away:
			home.Win++
			home.Points += 3
			away.Loss++
		case res.Score.Away > res.Score.Home:
			away.Win++
			away.Points += 3
			home.Loss++
		default:
			home.Draw++
			away.Draw++
			home.Points++
			away.Points++
		}
	}
	return rows
}

func lessSeason(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDiff() != b.GoalDiff() {
		return a.GoalDiff() > b.GoalDiff()
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return compareNames(a.Name, b.Name) < 0
}

type miniRow struct {
	pts int
	gf  int
	ga  int
}

func sortGroupHeadToHead(group []Row, results []Result) {
	ids := make(map[string]*miniRow, len(group))
	for _, r := range group {
		ids[r.ID] = &miniRow{}
	}

	for _, res := range results {
		home, away := ids[res.Home], ids[res.Away]
		if home == nil || away == nil {
			continue
		}
		home.gf += res.Score.Home
		home.ga += res.Score.Away
		away.gf += res.Score.Away
		away.ga += res.Score.Home
		switch {
		case res.Score.Home > res.Score.Away:
			home.pts += 3
		case res.Score.Away > res.Score.Home:
			away.pts += 3
		default:
			home.pts++
			away.pts++
		}
	}

	sort.Slice(group, func(i, j int) bool {
		a, b := group[i], group[j]
		ma, mb := ids[a.ID], ids[b.ID]
		if ma.pts != mb.pts {
			return ma.pts > mb.pts
		}
		if gd := (ma.gf - ma.ga) - (mb.gf - mb.ga); gd != 0 {
			return gd > 0
		}
		if ma.gf != mb.gf {
			return ma.gf > mb.gf
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return compareNames(a.Name, b.Name) < 0
	})
}
