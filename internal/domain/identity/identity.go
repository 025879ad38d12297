// Package identity maps raw franchise names, including relocated and
// renamed ones, to the canonical current-era team name.
package identity

import (
	"sort"
	"strings"
)

// canonicalTeams is the closed set of current-era franchises.
var canonicalTeams = []string{ //nolint:gochecknoglobals // static lookup table
	"Atlanta Hawks", "Boston Celtics", "Brooklyn Nets", "Charlotte Hornets",
	"Chicago Bulls", "Cleveland Cavaliers", "Dallas Mavericks", "Denver Nuggets",
	"Detroit Pistons", "Golden State Warriors", "Houston Rockets", "Indiana Pacers",
	"Los Angeles Clippers", "Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat",
	"Milwaukee Bucks", "Minnesota Timberwolves", "New Orleans Pelicans", "New York Knicks",
	"Oklahoma City Thunder", "Orlando Magic", "Philadelphia 76ers", "Phoenix Suns",
	"Portland Trail Blazers", "Sacramento Kings", "San Antonio Spurs", "Toronto Raptors",
	"Utah Jazz", "Washington Wizards",
}

// aliases maps a historical or defunct name to its canonical team.
var aliases = map[string]string{ //nolint:gochecknoglobals // static lookup table
	"Charlotte Bobcats":                 "Charlotte Hornets",
	"New Orleans Hornets":               "New Orleans Pelicans",
	"New Orleans/Oklahoma City Hornets": "New Orleans Pelicans",
	"New Orleans/OKC Hornets":           "New Orleans Pelicans",
	"New Jersey Americans":              "Brooklyn Nets",
	"New York Nets":                     "Brooklyn Nets",
	"New Jersey Nets":                   "Brooklyn Nets",
	"Seattle SuperSonics":               "Oklahoma City Thunder",
	"Vancouver Grizzlies":               "Memphis Grizzlies",
	"Washington Bullets":                "Washington Wizards",
	"Chicago Zephyrs":                   "Washington Wizards",
	"Capital Bullets":                   "Washington Wizards",
	"Baltimore Bullets":                 "Washington Wizards",
	"Chicago Packers":                   "Washington Wizards",
	"Philadelphia Warriors":             "Golden State Warriors",
	"San Francisco Warriors":            "Golden State Warriors",
	"Fort Wayne Pistons":                "Detroit Pistons",
	"Minneapolis Lakers":                "Los Angeles Lakers",
	"Syracuse Nationals":                "Philadelphia 76ers",
	"Tri-Cities Blackhawks":             "Atlanta Hawks",
	"St. Louis Hawks":                   "Atlanta Hawks",
	"Milwaukee Hawks":                   "Atlanta Hawks",
	"Buffalo Braves":                    "Los Angeles Clippers",
	"San Diego Clippers":                "Los Angeles Clippers",
	"Rochester Royals":                  "Sacramento Kings",
	"Cincinnati Royals":                 "Sacramento Kings",
	"Kansas City-Omaha Kings":           "Sacramento Kings",
	"Kansas City Kings":                 "Sacramento Kings",
	"Denver Rockets":                    "Denver Nuggets",
	"San Diego Rockets":                 "Houston Rockets",
	"Dallas Chaparrals":                 "San Antonio Spurs",
	"Texas Chapparals":                  "San Antonio Spurs",
	"New Orleans Jazz":                  "Utah Jazz",
}

var canonicalSet = func() map[string]struct{} { //nolint:gochecknoglobals // derived from canonicalTeams
	set := make(map[string]struct{}, len(canonicalTeams))
	for _, t := range canonicalTeams {
		set[t] = struct{}{}
	}
	return set
}()

// Resolve returns the canonical name for raw. Names missing from the alias
// table are returned unchanged (after trimming) and are assumed canonical;
// callers decide whether an unrecognized result is an error.
func Resolve(raw string) string {
	name := strings.TrimSpace(raw)
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// IsCanonical reports whether name is one of the current-era teams.
func IsCanonical(name string) bool {
	_, ok := canonicalSet[name]
	return ok
}

// Teams returns the canonical team names in alphabetical order.
func Teams() []string {
	out := make([]string, len(canonicalTeams))
	copy(out, canonicalTeams)
	sort.Strings(out)
	return out
}

// Aliases returns the historical names that fold into canonical, sorted.
func Aliases(canonical string) []string {
	var out []string
	for old, current := range aliases {
		if current == canonical {
			out = append(out, old)
		}
	}
	sort.Strings(out)
	return out
}
