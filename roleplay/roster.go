package roleplay

import "strings"

// RosterEntry describes one discoverable role.
type RosterEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// rosterAliases lists the searchable aliases per preset role. The first
// alias seeds the entry id.
var rosterAliases = map[string][]string{
	"苏格拉底": {"socrates", "苏格拉底"},
	"孔子":   {"confucius", "孔子"},
	"林黛玉":  {"lin dai yu", "lin_daiyu", "林黛玉"},
	"孙悟空":  {"sun wukong", "齐天大圣", "孙悟空", "孙行者"},
	"莎士比亚": {"shakespeare", "莎士比亚"},
	"福尔摩斯": {"sherlock", "sherlock holmes", "福尔摩斯"},
	"牛顿":   {"newton", "isaac newton", "牛顿"},
	"哈利波特": {"harry potter", "哈利·波特", "哈利波特", "harry_potter"},
}

// Roster returns the discoverable roles in preset order.
func Roster() []RosterEntry {
	names := PresetRoleNames()
	entries := make([]RosterEntry, 0, len(names))
	for _, name := range names {
		aliases := rosterAliases[name]
		if len(aliases) == 0 {
			aliases = []string{name}
		}
		entries = append(entries, RosterEntry{
			ID:      NormalizeRoleName(aliases[0]),
			Name:    name,
			Aliases: aliases,
		})
	}
	return entries
}

// SearchRoster matches a free-form query against role names and aliases,
// tolerating mixed Chinese/English input and separators. An empty result
// set falls back to the first five roster entries so clients always have
// something to show.
func SearchRoster(query string) []RosterEntry {
	key := NormalizeRoleName(query)
	roster := Roster()
	var hits []RosterEntry
	if key != "" {
		for _, entry := range roster {
			if rosterMatches(entry, key) {
				hits = append(hits, entry)
			}
		}
	}
	if len(hits) == 0 {
		n := 5
		if len(roster) < n {
			n = len(roster)
		}
		hits = roster[:n]
	}
	return hits
}

func rosterMatches(entry RosterEntry, key string) bool {
	hay := make([]string, 0, len(entry.Aliases)+1)
	hay = append(hay, NormalizeRoleName(entry.Name))
	for _, alias := range entry.Aliases {
		hay = append(hay, NormalizeRoleName(alias))
	}
	for _, h := range hay {
		if strings.Contains(h, key) || strings.Contains(key, h) {
			return true
		}
	}
	return false
}
