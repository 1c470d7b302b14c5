package chatbot

import (
	"fmt"
	"strings"
)

// TodayLabel is the date label random samples are filed under.
const TodayLabel = "today"

// ExportFileName names the document produced by /save.
const ExportFileName = "Football.txt"

// SamplePlayers are the well-known players /random_player picks from.
var SamplePlayers = []PlayerEntry{
	{Name: "Erling Haaland", Goals: 36, Assists: 8},
	{Name: "Giovanni Di Lorenzo", Goals: 2, Assists: 5, CleanSheets: 12},
	{Name: "Kylian Mbappé", Goals: 44, Assists: 10},
	{Name: "Lionel Messi", Goals: 20, Assists: 15},
	{Name: "Cristiano Ronaldo", Goals: 35, Assists: 3},
	{Name: "Virgil van Dijk", Goals: 1, Assists: 2, CleanSheets: 20},
	{Name: "Kevin De Bruyne", Goals: 10, Assists: 16},
	{Name: "Robert Lewandowski", Goals: 48, Assists: 9},
}

// SampleClubs are the well-known clubs /random_club picks from.
var SampleClubs = []ClubEntry{
	{Name: "Manchester City", SuperCups: 1, Cups: 2, Championships: 2, ChampionsLeagues: 1},
	{Name: "Real Madrid", SuperCups: 1, Cups: 2, Championships: 1, ChampionsLeagues: 1},
	{Name: "Bayern Munich", SuperCups: 1, Cups: 1},
	{Name: "Paris Saint-Germain", SuperCups: 1, Cups: 1, Championships: 1},
	{Name: "Liverpool"},
	{Name: "Juventus", SuperCups: 2, Cups: 1, Championships: 2, ChampionsLeagues: 1},
	{Name: "Chelsea", SuperCups: 2, Cups: 2, Championships: 2, ChampionsLeagues: 2},
	{Name: "Barcelona", SuperCups: 1, Championships: 1},
}

const welcomeText = `Welcome to the Football bot!
This bot collects votes for the Golden Ball award.
It keeps track of footballer and club statistics: goals, assists and clean sheets for players, and super cups, cups, championships and Champions League titles for clubs, each filed under a date.
You can add data by hand or with random samples of famous players and clubs, list everything or a single date, save it all to a file, and open the web app to keep registering data there.
Use the menu buttons!`

const helpText = `Available actions (use the buttons):
- Add player /add_player: step by step with the button or a bare /add_player, or /add_player <date> <player_name> <goals> <assists> <clean_sheets>
- Add club /add_club: step by step with the button or a bare /add_club, or /add_club <date> <club_name> <super_cups> <cups> <championships> <champions_leagues>
- Random player /random_player
- Random club /random_club
- Show players /print_player [<date>]
- Show clubs /print_club [<date>]
- Save to file /save
- Open app /open_app`

func (e PlayerEntry) line() string {
	return fmt.Sprintf("%s: %d goals, %d assists, %d clean sheets", e.Name, e.Goals, e.Assists, e.CleanSheets)
}

func (e ClubEntry) line() string {
	return fmt.Sprintf("%s: %d super cups, %d cups, %d championships, %d Champions League titles",
		e.Name, e.SuperCups, e.Cups, e.Championships, e.ChampionsLeagues)
}

// dated is satisfied by both entry kinds so listings share one layout.
type dated interface {
	date() string
	line() string
}

func (e PlayerEntry) date() string { return e.Date }
func (e ClubEntry) date() string   { return e.Date }

// writeByDate writes entries grouped under "\n<date>:\n" headers. Entries
// must already be ordered by date.
func writeByDate[T dated](b *strings.Builder, entries []T) {
	current := ""
	for i, e := range entries {
		if i == 0 || e.date() != current {
			current = e.date()
			fmt.Fprintf(b, "\n%s:\n", current)
		}
		fmt.Fprintf(b, " - %s\n", e.line())
	}
}

func formatAll[T dated](title, empty string, entries []T) string {
	if len(entries) == 0 {
		return empty
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	writeByDate(&b, entries)
	return strings.TrimRight(b.String(), "\n")
}

func formatOnDate[T dated](title, date string, entries []T) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s on %s:\n", title, date)
	for _, e := range entries {
		fmt.Fprintf(&b, " - %s\n", e.line())
	}
	return strings.TrimRight(b.String(), "\n")
}

// Export renders every entry as the text document produced by /save.
func Export(players []PlayerEntry, clubs []ClubEntry) []byte {
	var b strings.Builder
	b.WriteString("=== Players ===\n")
	writeByDate(&b, players)
	b.WriteString("\n=== Clubs ===\n")
	writeByDate(&b, clubs)
	return []byte(b.String())
}
