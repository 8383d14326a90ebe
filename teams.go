package rink

import (
	"cmp"
	"slices"
	"strings"
)

// Team describes an NHL club whose badge ships with the module.
type Team struct {
	Tricode  string
	Name     string
	FullName string
}

var nhlTeams = map[string]Team{
	"ANA": {"ANA", "Ducks", "Anaheim Ducks"},
	"BOS": {"BOS", "Bruins", "Boston Bruins"},
	"BUF": {"BUF", "Sabres", "Buffalo Sabres"},
	"CAR": {"CAR", "Hurricanes", "Carolina Hurricanes"},
	"CBJ": {"CBJ", "Blue Jackets", "Columbus Blue Jackets"},
	"CGY": {"CGY", "Flames", "Calgary Flames"},
	"CHI": {"CHI", "Blackhawks", "Chicago Blackhawks"},
	"COL": {"COL", "Avalanche", "Colorado Avalanche"},
	"DAL": {"DAL", "Stars", "Dallas Stars"},
	"DET": {"DET", "Red Wings", "Detroit Red Wings"},
	"EDM": {"EDM", "Oilers", "Edmonton Oilers"},
	"FLA": {"FLA", "Panthers", "Florida Panthers"},
	"LAK": {"LAK", "Kings", "Los Angeles Kings"},
	"MIN": {"MIN", "Wild", "Minnesota Wild"},
	"MTL": {"MTL", "Canadiens", "Montréal Canadiens"},
	"NJD": {"NJD", "Devils", "New Jersey Devils"},
	"NSH": {"NSH", "Predators", "Nashville Predators"},
	"NYI": {"NYI", "Islanders", "New York Islanders"},
	"NYR": {"NYR", "Rangers", "New York Rangers"},
	"OTT": {"OTT", "Senators", "Ottawa Senators"},
	"PHI": {"PHI", "Flyers", "Philadelphia Flyers"},
	"PIT": {"PIT", "Penguins", "Pittsburgh Penguins"},
	"SEA": {"SEA", "Kraken", "Seattle Kraken"},
	"SJS": {"SJS", "Sharks", "San Jose Sharks"},
	"STL": {"STL", "Blues", "St. Louis Blues"},
	"TBL": {"TBL", "Lightning", "Tampa Bay Lightning"},
	"TOR": {"TOR", "Maple Leafs", "Toronto Maple Leafs"},
	"UTA": {"UTA", "Mammoth", "Utah Mammoth"},
	"VAN": {"VAN", "Canucks", "Vancouver Canucks"},
	"VGK": {"VGK", "Golden Knights", "Vegas Golden Knights"},
	"WPG": {"WPG", "Jets", "Winnipeg Jets"},
	"WSH": {"WSH", "Capitals", "Washington Capitals"},
}

// LookupTeam returns the team for a tricode, ignoring case.
func LookupTeam(tricode string) (Team, bool) {
	t, ok := nhlTeams[strings.ToUpper(strings.TrimSpace(tricode))]
	return t, ok
}

// Teams returns every known team sorted by tricode.
func Teams() []Team {
	out := make([]Team, 0, len(nhlTeams))
	for _, t := range nhlTeams {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Team) int { return cmp.Compare(a.Tricode, b.Tricode) })
	return out
}
