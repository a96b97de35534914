// Package matcher finds catalog players by approximate display name.
package matcher

import (
	"sort"
	"strings"

	"fplthreats/internal/player"
)

const (
	DefaultThreshold = 80
	DefaultLimit     = 10
)

// Match is one catalog row whose name scored above the threshold.
type Match struct {
	Name   string
	ID     int
	TeamID int
	Score  int
}

// Options bound the search.
type Options struct {
	Threshold int
	Limit     int
}

type scoredName struct {
	name  string
	score int
}

// Find ranks every distinct lowercase display name against query, keeps the
// best Limit names scoring at least Threshold, and expands each to all
// catalog rows carrying that name.
func Find(catalog []player.Player, query string, opts Options) []Match {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	byName := make(map[string][]player.Player)
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		if p.WebName == "" {
			continue
		}
		key := strings.ToLower(p.WebName)
		if _, seen := byName[key]; !seen {
			names = append(names, key)
		}
		byName[key] = append(byName[key], p)
	}

	scored := make([]scoredName, 0, len(names))
	for _, n := range names {
		scored = append(scored, scoredName{name: n, score: Similarity(needle, n)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].name < scored[j].name
	})
	if len(scored) > opts.Limit {
		scored = scored[:opts.Limit]
	}

	var matches []Match
	for _, s := range scored {
		if s.score < opts.Threshold {
			continue
		}
		rows := byName[s.name]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
		for _, p := range rows {
			matches = append(matches, Match{Name: p.WebName, ID: p.ID, TeamID: p.TeamID, Score: s.score})
		}
	}
	return matches
}
